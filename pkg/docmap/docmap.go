// Package docmap implements the document catalog: a table of
// source-document metadata keyed by DocId, with dedup on ontology IRI so
// re-ingesting the same ontology resolves to the document already on
// file rather than minting a duplicate. The ontology-IRI node is the
// document's dedup key, and documents with no ontology IRI at all
// (anonymous imports, inline data) are tolerated and never dedup.
package docmap

import (
	"fmt"

	"github.com/owlstore/owlstore/pkg/ids"
)

// Entry is one document catalog row.
type Entry struct {
	Id       ids.DocId
	Ontology ids.NodeId
	Version  ids.NodeId
	Location string
}

// DocMap is the document catalog. The zero value is not usable; use New.
type DocMap struct {
	alloc      *ids.Allocator[ids.DocId]
	byID       map[ids.DocId]Entry
	byOntology map[ids.NodeId]ids.DocId
}

// New creates an empty document catalog.
func New() *DocMap {
	return &DocMap{
		alloc:      ids.NewAllocator[ids.DocId](0),
		byID:       make(map[ids.DocId]Entry),
		byOntology: make(map[ids.NodeId]ids.DocId),
	}
}

// Insert records a document. If ontology is non-zero and a document
// already carries that ontology id, its existing DocId is returned with
// inserted=false; otherwise a fresh DocId is allocated and inserted is
// true. A zero ontology id is never deduplicated: every anonymous
// document gets its own entry.
func (m *DocMap) Insert(ontology, version ids.NodeId, location string) (id ids.DocId, inserted bool) {
	if ontology != 0 {
		if existing, ok := m.byOntology[ontology]; ok {
			return existing, false
		}
	}
	id = m.alloc.Next()
	// Skip ids that InsertAt has already made live.
	for _, taken := m.byID[id]; taken; _, taken = m.byID[id] {
		id = m.alloc.Next()
	}
	m.byID[id] = Entry{Id: id, Ontology: ontology, Version: version, Location: location}
	if ontology != 0 {
		m.byOntology[ontology] = id
	}
	return id, true
}

// InsertAt records a document at a caller-chosen id, used when copying a
// document catalog from one store into another. It fails
// with ids.ErrIDConflict if id is already live with different metadata,
// and is a no-op if id already names an equal entry.
func (m *DocMap) InsertAt(id ids.DocId, ontology, version ids.NodeId, location string) error {
	if e, ok := m.byID[id]; ok {
		if e.Ontology == ontology && e.Version == version && e.Location == location {
			return nil
		}
		return fmt.Errorf("%w: doc%d already holds different metadata", ids.ErrIDConflict, id)
	}
	if ontology != 0 {
		if existing, ok := m.byOntology[ontology]; ok {
			return fmt.Errorf("%w: ontology node%d already recorded under doc%d", ids.ErrIDConflict, ontology, existing)
		}
	}
	m.byID[id] = Entry{Id: id, Ontology: ontology, Version: version, Location: location}
	if ontology != 0 {
		m.byOntology[ontology] = id
	}
	return nil
}

// FindOntology returns the DocId already recording ontology, if any.
func (m *DocMap) FindOntology(ontology ids.NodeId) (ids.DocId, bool) {
	if ontology == 0 {
		return 0, false
	}
	id, ok := m.byOntology[ontology]
	return id, ok
}

// At returns the entry stored at id.
func (m *DocMap) At(id ids.DocId) (Entry, error) {
	e, ok := m.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: doc%d", ids.ErrInvalidID, id)
	}
	return e, nil
}

// Remove removes id, returning the removed entry and releasing id to the
// allocator.
func (m *DocMap) Remove(id ids.DocId) (Entry, error) {
	e, ok := m.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: doc%d", ids.ErrInvalidID, id)
	}
	delete(m.byID, id)
	if e.Ontology != 0 {
		delete(m.byOntology, e.Ontology)
	}
	m.alloc.Release(id)
	return e, nil
}

// Len returns the number of live documents.
func (m *DocMap) Len() int { return len(m.byID) }
