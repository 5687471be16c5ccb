// Package nsmap implements the namespace catalog: an interned table of
// namespace IRIs and their optional prefixes, layered over the
// process-wide standard-terms table. User entries are consulted first,
// the standard table second, and a prefix may only ever be reassigned to
// the namespace it already names.
package nsmap

import (
	"errors"
	"fmt"

	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/stdterms"
)

// ErrPrefixConflict is returned by SetPrefix when prefix is already bound
// to a different namespace id.
var ErrPrefixConflict = errors.New("nsmap: prefix already bound to a different namespace")

// IriMap is the namespace catalog. The zero value is not usable; use New.
type IriMap struct {
	alloc    *ids.Allocator[ids.NsId]
	byID     map[ids.NsId]stdterms.NsEntry
	byIRI    map[string]ids.NsId
	byPrefix map[string]ids.NsId
}

// New creates an empty namespace catalog layered over the standard table.
func New() *IriMap {
	return &IriMap{
		alloc:    ids.NewAllocator(stdterms.MinUserNsId),
		byID:     make(map[ids.NsId]stdterms.NsEntry),
		byIRI:    make(map[string]ids.NsId),
		byPrefix: make(map[string]ids.NsId),
	}
}

// Insert interns iri, returning its existing id (standard or user) if
// already present, or allocating a fresh one otherwise.
func (m *IriMap) Insert(iri string) ids.NsId {
	if id, ok := m.FindIRI(iri); ok {
		return id
	}
	id := m.alloc.Next()
	// Skip ids that InsertAt has already made live.
	for _, taken := m.byID[id]; taken; _, taken = m.byID[id] {
		id = m.alloc.Next()
	}
	m.byID[id] = stdterms.NsEntry{Id: id, IRI: iri}
	m.byIRI[iri] = id
	return id
}

// InsertAt interns iri at a caller-chosen id, used when copying a
// namespace catalog from one store into another. It fails with
// ids.ErrIDConflict if id is already live with a different IRI, and is a
// no-op if id already names iri.
func (m *IriMap) InsertAt(id ids.NsId, iri string) error {
	if e, ok := m.lookup(id); ok {
		if e.IRI == iri {
			return nil
		}
		return fmt.Errorf("%w: ns%d already names %q", ids.ErrIDConflict, id, e.IRI)
	}
	if existing, ok := m.FindIRI(iri); ok {
		return fmt.Errorf("%w: %q already interned as ns%d", ids.ErrIDConflict, iri, existing)
	}
	m.byID[id] = stdterms.NsEntry{Id: id, IRI: iri}
	m.byIRI[iri] = id
	return nil
}

// FindIRI returns the id for iri, consulting user entries before the
// standard table.
func (m *IriMap) FindIRI(iri string) (ids.NsId, bool) {
	if id, ok := m.byIRI[iri]; ok {
		return id, true
	}
	return stdterms.FindNsByIRI(iri)
}

// FindPrefix returns the id bound to prefix, consulting user entries
// before the standard table.
func (m *IriMap) FindPrefix(prefix string) (ids.NsId, bool) {
	if prefix == "" {
		return 0, false
	}
	if id, ok := m.byPrefix[prefix]; ok {
		return id, true
	}
	return stdterms.FindNsByPrefix(prefix)
}

// SetPrefix binds prefix to id. It fails with ErrPrefixConflict if prefix
// is already bound to a different id, and is a silent no-op if already
// bound to id.
func (m *IriMap) SetPrefix(id ids.NsId, prefix string) error {
	if prefix == "" {
		return nil
	}
	if existing, ok := m.FindPrefix(prefix); ok {
		if existing == id {
			return nil
		}
		return fmt.Errorf("%w: prefix %q is bound to ns%d, not ns%d", ErrPrefixConflict, prefix, existing, id)
	}
	e, ok := m.lookup(id)
	if !ok {
		return fmt.Errorf("%w: ns%d", ids.ErrInvalidID, id)
	}
	if old, ok := m.byID[id]; ok && old.Prefix != "" {
		delete(m.byPrefix, old.Prefix)
	}
	e.Prefix = prefix
	m.byID[id] = e
	m.byPrefix[prefix] = id
	return nil
}

// IRIOf returns the IRI string for id.
func (m *IriMap) IRIOf(id ids.NsId) (string, bool) {
	e, ok := m.lookup(id)
	if !ok {
		return "", false
	}
	return e.IRI, true
}

// PrefixOf returns the prefix bound to id, preferring a user-defined
// binding over the standard one.
func (m *IriMap) PrefixOf(id ids.NsId) (string, bool) {
	if e, ok := m.byID[id]; ok && e.Prefix != "" {
		return e.Prefix, true
	}
	for _, e := range stdterms.Namespaces {
		if e.Id == id {
			return e.Prefix, e.Prefix != ""
		}
	}
	return "", false
}

// Remove drops id from the catalog and returns its identifier to the
// allocator. Standard ids are not removable and the call is a silent
// no-op for them.
func (m *IriMap) Remove(id ids.NsId) {
	if id < stdterms.MinUserNsId {
		return
	}
	e, ok := m.byID[id]
	if !ok {
		return
	}
	delete(m.byID, id)
	delete(m.byIRI, e.IRI)
	if e.Prefix != "" {
		delete(m.byPrefix, e.Prefix)
	}
	m.alloc.Release(id)
}

// UserIDs returns every user-inserted namespace id currently live, in no
// particular order. Standard ids are never included.
func (m *IriMap) UserIDs() []ids.NsId {
	out := make([]ids.NsId, 0, len(m.byID))
	for id := range m.byID {
		if id >= stdterms.MinUserNsId {
			out = append(out, id)
		}
	}
	return out
}

// lookup returns the entry for id, checking the standard table for ids
// below MinUserNsId and the user table otherwise.
func (m *IriMap) lookup(id ids.NsId) (stdterms.NsEntry, bool) {
	if id < stdterms.MinUserNsId {
		for _, e := range stdterms.Namespaces {
			if e.Id == id {
				return e, true
			}
		}
		return stdterms.NsEntry{}, false
	}
	e, ok := m.byID[id]
	return e, ok
}
