package docmap

import (
	"errors"
	"testing"

	"github.com/owlstore/owlstore/pkg/ids"
)

func TestInsert_DedupsByOntology(t *testing.T) {
	m := New()
	a, inserted := m.Insert(10, 11, "http://a/ontology")
	if !inserted {
		t.Fatal("expected first insert to be new")
	}
	b, inserted := m.Insert(10, 99, "http://a/ontology-mirror")
	if inserted {
		t.Fatal("expected re-inserting the same ontology id to be a dedup hit")
	}
	if a != b {
		t.Fatalf("expected dedup hit to return the existing id, got %v and %v", a, b)
	}
}

func TestInsert_AnonymousDocumentsNeverDedup(t *testing.T) {
	m := New()
	a, _ := m.Insert(0, 0, "inline-data-1")
	b, _ := m.Insert(0, 0, "inline-data-2")
	if a == b {
		t.Fatal("expected documents with no ontology id to never dedup")
	}
}

func TestRemove_ReleasesAndReusesId(t *testing.T) {
	m := New()
	a, _ := m.Insert(10, 11, "http://a/")
	if _, err := m.Remove(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.FindOntology(10); ok {
		t.Fatal("expected removed document's ontology binding to be gone")
	}
	b, _ := m.Insert(20, 21, "http://b/")
	if b != a {
		t.Fatalf("expected released id %v to be reused, got %v", a, b)
	}
}

func TestInsertAt_RejectsConflict(t *testing.T) {
	m := New()
	a, _ := m.Insert(10, 11, "http://a/")
	if err := m.InsertAt(a, 10, 11, "http://a/"); err != nil {
		t.Fatalf("expected inserting identical metadata at its own id to be a no-op, got %v", err)
	}
	if err := m.InsertAt(a, 10, 12, "http://a/"); !errors.Is(err, ids.ErrIDConflict) {
		t.Fatalf("expected ids.ErrIDConflict, got %v", err)
	}
}

func TestInsertAt_RejectsOntologyAlreadyRecorded(t *testing.T) {
	m := New()
	a, _ := m.Insert(10, 11, "http://a/")
	if err := m.InsertAt(a+1, 10, 11, "http://a/"); !errors.Is(err, ids.ErrIDConflict) {
		t.Fatalf("expected ids.ErrIDConflict for re-recording an ontology under a new id, got %v", err)
	}
}
