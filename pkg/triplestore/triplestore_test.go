package triplestore

import (
	"testing"

	"github.com/owlstore/owlstore/pkg/quadindex"
	"github.com/owlstore/owlstore/pkg/stdterms"
)

func TestInsertQuad_RejectsUnknownIdentifiers(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.InsertQuad(9999, 9999, 9999, 9999); err == nil {
		t.Fatal("expected InsertQuad to reject identifiers not live in this store")
	}
}

func TestInsertQuad_AndQueryRoundTrip(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ns, _ := s.Nodes.InsertIRI(stdterms.MinUserNsId, "subj")
	pred, _ := s.Nodes.InsertIRI(stdterms.MinUserNsId, "pred")
	obj, _ := s.Nodes.InsertIRI(stdterms.MinUserNsId, "obj")
	doc, _ := s.Docs.Insert(0, 0, "mem")

	if _, err := s.InsertQuad(ns, pred, obj, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := 0
	it := s.Query(quadindex.Pattern{})
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		n++
	}
	if n != 1 {
		t.Fatalf("expected 1 quad, got %d", n)
	}
}

func TestClear_ResetsAllCatalogs(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, _ := s.Nodes.InsertIRI(stdterms.MinUserNsId, "x")
	doc, _ := s.Docs.Insert(0, 0, "mem")
	s.InsertQuad(id, id, id, doc)

	s.Clear()

	if s.Nodes.Len() != 0 {
		t.Fatal("expected node catalog to be empty after Clear")
	}
	if s.Docs.Len() != 0 {
		t.Fatal("expected document catalog to be empty after Clear")
	}
	if s.Quads.Len() != 0 {
		t.Fatal("expected quad index to be empty after Clear")
	}
}

func TestCopyNamespacesAndNodes(t *testing.T) {
	src, _ := New()
	dst, _ := New()

	ns := src.Namespaces.Insert("http://example.org/")
	src.Namespaces.SetPrefix(ns, "ex")
	nodeID, _ := src.Nodes.InsertIRI(ns, "thing")

	nsRemap := src.CopyNamespaces(dst)
	nodeRemap := src.CopyNodes(dst, nsRemap)

	newNs, ok := dst.Namespaces.FindIRI("http://example.org/")
	if !ok {
		t.Fatal("expected copied namespace to be found in destination store")
	}
	if prefix, ok := dst.Namespaces.PrefixOf(newNs); !ok || prefix != "ex" {
		t.Fatalf("expected copied namespace to carry its prefix, got %q, %v", prefix, ok)
	}

	newNodeID, ok := nodeRemap[nodeID]
	if !ok {
		t.Fatal("expected node remap table to include the copied node")
	}
	if _, ok := dst.Nodes.FindIRI(newNs, "thing"); !ok {
		t.Fatal("expected copied node to be found under the remapped namespace")
	}
	_ = newNodeID
}

func TestCopyNamespaces_PreservesIdWhenNoConflict(t *testing.T) {
	src, _ := New()
	dst, _ := New()

	ns := src.Namespaces.Insert("http://example.org/a")
	remap := src.CopyNamespaces(dst)
	if remap[ns] != ns {
		t.Fatalf("expected non-conflicting copy to preserve the source id, got %v -> %v", ns, remap[ns])
	}
}
