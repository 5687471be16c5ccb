package nsmap

import (
	"errors"
	"testing"

	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/stdterms"
)

func TestInsert_Idempotent(t *testing.T) {
	m := New()
	a := m.Insert("http://a/")
	b := m.Insert("http://a/")
	if a != b {
		t.Fatalf("expected idempotent insert, got %v and %v", a, b)
	}
	c := m.Insert("http://b/")
	if c == a {
		t.Fatalf("expected distinct IRIs to get distinct ids")
	}
}

func TestStandardTermsLayered(t *testing.T) {
	m := New()
	id, ok := m.FindIRI("http://www.w3.org/2002/07/owl#")
	if !ok || id != stdterms.OwlNs {
		t.Fatalf("expected standard owl namespace without any insert, got %v, %v", id, ok)
	}
}

func TestSetPrefix_ConflictAndNoop(t *testing.T) {
	m := New()
	a := m.Insert("http://a/")
	b := m.Insert("http://b/")

	if err := m.SetPrefix(a, "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.SetPrefix(b, "x"); !errors.Is(err, ErrPrefixConflict) {
		t.Fatalf("expected ErrPrefixConflict, got %v", err)
	}
	if err := m.SetPrefix(a, "x"); err != nil {
		t.Fatalf("expected re-assigning the same prefix to the same id to be a no-op, got %v", err)
	}
}

func TestRemove_StandardIdsIgnored(t *testing.T) {
	m := New()
	m.Remove(stdterms.OwlNs)
	if _, ok := m.IRIOf(stdterms.OwlNs); !ok {
		t.Fatal("expected standard namespace to survive Remove")
	}
}

func TestRemove_ReleasesUserId(t *testing.T) {
	m := New()
	a := m.Insert("http://a/")
	m.Remove(a)
	if _, ok := m.IRIOf(a); ok {
		t.Fatal("expected removed namespace to be gone")
	}
	b := m.Insert("http://c/")
	if b != a {
		t.Fatalf("expected released id %v to be reused, got %v", a, b)
	}
}

func TestInsertAt_RejectsConflict(t *testing.T) {
	m := New()
	a := m.Insert("http://a/")
	if err := m.InsertAt(a, "http://a/"); err != nil {
		t.Fatalf("expected inserting the same value at its own id to be a no-op, got %v", err)
	}
	if err := m.InsertAt(a, "http://different/"); !errors.Is(err, ids.ErrIDConflict) {
		t.Fatalf("expected ids.ErrIDConflict, got %v", err)
	}
}
