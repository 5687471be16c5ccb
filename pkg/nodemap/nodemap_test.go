package nodemap

import (
	"errors"
	"testing"

	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/rdf"
	"github.com/owlstore/owlstore/pkg/stdterms"
)

func TestInsertIRI_Idempotent(t *testing.T) {
	m := New()
	a, err := m.InsertIRI(stdterms.MinUserNsId, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := m.InsertIRI(stdterms.MinUserNsId, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("expected interning to be idempotent, got %v and %v", a, b)
	}
}

func TestInsertIRI_RejectsBlankNamespace(t *testing.T) {
	if _, err := New().InsertIRI(stdterms.BlankNs, "x"); !errors.Is(err, rdf.ErrBadIri) {
		t.Fatalf("expected rdf.ErrBadIri, got %v", err)
	}
}

func TestStandardNodesLayered(t *testing.T) {
	m := New()
	if !m.Valid(stdterms.RdfType) {
		t.Fatal("expected a standard node id to be valid without any insert")
	}
	id, err := m.InsertIRI(stdterms.RdfNs, "type")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != stdterms.RdfType {
		t.Fatalf("expected interning the rdf:type IRI to yield its fixed standard id, got %v", id)
	}
}

func TestInsertBlank_DistinctAcrossDocs(t *testing.T) {
	m := New()
	a := m.InsertBlank(1, 1)
	b := m.InsertBlank(1, 2)
	if a == b {
		t.Fatal("expected blank node ids to be scoped by document")
	}
}

func TestInsertLiteral_InternsByParsedValue(t *testing.T) {
	m := New()
	a, err := m.InsertLiteral("42", stdterms.XsdInt, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := m.InsertLiteral("42", stdterms.XsdInt, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("expected equal lexical/datatype pairs to intern to the same id, got %v and %v", a, b)
	}

	if _, err := m.InsertLiteral("not-a-number", stdterms.XsdInt, ""); !errors.Is(err, rdf.ErrBadLiteral) {
		t.Fatalf("expected rdf.ErrBadLiteral, got %v", err)
	}
}

func TestFind_DistinctVariantsDoNotCollide(t *testing.T) {
	m := New()
	iri, err := m.InsertIRI(stdterms.MinUserNsId, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blank := m.InsertBlank(0, ids.DocId(stdterms.MinUserNsId))

	if iri == blank {
		t.Fatal("expected IRI and blank interning to produce distinct ids")
	}
	if _, ok := m.FindBlank(0, ids.DocId(stdterms.MinUserNsId+1)); ok {
		t.Fatal("expected a blank node from a different document not to be found")
	}
}

func TestRemove_ReleasesAndReusesId(t *testing.T) {
	m := New()
	a, _ := m.InsertIRI(stdterms.MinUserNsId, "a")
	if _, err := m.Remove(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.FindIRI(stdterms.MinUserNsId, "a"); ok {
		t.Fatal("expected removed node to no longer be found")
	}
	b, _ := m.InsertIRI(stdterms.MinUserNsId, "c")
	if b != a {
		t.Fatalf("expected released id %v to be reused, got %v", a, b)
	}
}

func TestRemove_RejectsStandardNode(t *testing.T) {
	m := New()
	if _, err := m.Remove(stdterms.RdfType); !errors.Is(err, ids.ErrInvalidID) {
		t.Fatalf("expected ids.ErrInvalidID for a standard node, got %v", err)
	}
}

func TestInsertAt_RejectsConflict(t *testing.T) {
	m := New()
	a, _ := m.InsertIRI(stdterms.MinUserNsId, "a")
	n, _ := rdf.NewIRI(stdterms.MinUserNsId, "a")
	if err := m.InsertAt(a, n); err != nil {
		t.Fatalf("expected inserting the same value at its own id to be a no-op, got %v", err)
	}
	other, _ := rdf.NewIRI(stdterms.MinUserNsId, "different")
	if err := m.InsertAt(a, other); !errors.Is(err, ids.ErrIDConflict) {
		t.Fatalf("expected ids.ErrIDConflict, got %v", err)
	}
}

func TestInsertAt_RejectsDuplicateValueUnderNewId(t *testing.T) {
	m := New()
	a, _ := m.InsertIRI(stdterms.MinUserNsId, "a")
	n, _ := rdf.NewIRI(stdterms.MinUserNsId, "a")
	if err := m.InsertAt(a+1000, n); !errors.Is(err, ids.ErrIDConflict) {
		t.Fatalf("expected ids.ErrIDConflict for re-interning an existing value under a new id, got %v", err)
	}
}
