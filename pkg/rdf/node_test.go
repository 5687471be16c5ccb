package rdf

import (
	"errors"
	"math"
	"testing"

	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/stdterms"
)

func TestIRI_Equal(t *testing.T) {
	a, _ := NewIRI(stdterms.MinUserNsId, "blah")
	b, _ := NewIRI(stdterms.MinUserNsId, "blah")
	c, _ := NewIRI(stdterms.MinUserNsId+1, "blah")

	if !a.Equal(b) {
		t.Error("expected IRI nodes with the same (ns, name) to be equal")
	}
	if a.Equal(c) {
		t.Error("expected IRI nodes with different namespaces to be unequal")
	}
}

func TestIRI_BlankNamespaceRejected(t *testing.T) {
	_, err := NewIRI(stdterms.BlankNs, "blah")
	if !errors.Is(err, ErrBadIri) {
		t.Fatalf("expected ErrBadIri, got %v", err)
	}
}

func TestBlank_Equal(t *testing.T) {
	a := NewBlank(1, 7)
	b := NewBlank(1, 7)
	c := NewBlank(1, 8)

	if !a.Equal(b) {
		t.Error("expected blank nodes with the same (n, doc) to be equal")
	}
	if a.Equal(c) {
		t.Error("expected blank nodes from different documents to be unequal")
	}
}

func TestLiteralDouble_EqualityByBits(t *testing.T) {
	nan1 := LiteralDouble{V: math.NaN(), Datatype: stdterms.XsdDouble}
	nan2 := LiteralDouble{V: math.NaN(), Datatype: stdterms.XsdDouble}

	if nan1.V == nan2.V {
		t.Fatal("test setup invalid: Go's NaN == NaN should be false")
	}
	if !nan1.Equal(nan2) {
		t.Error("expected bit-identical NaN literals to be equal by canonical key")
	}
}

func TestHashBytes_DistinctForDistinctVariants(t *testing.T) {
	iri, _ := NewIRI(stdterms.MinUserNsId, "x")
	blank := NewBlank(0, ids.DocId(stdterms.MinUserNsId))

	if string(HashBytes(iri)) == string(HashBytes(blank)) {
		t.Error("expected different variants to hash to different byte keys in this case")
	}
}
