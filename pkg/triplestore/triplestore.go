// Package triplestore implements TripleStore, the facade composing the
// namespace, node, document, and quad catalogs into the single
// in-memory RDF store a caller ingests quads into and queries against.
// It has no on-disk or serialization surface of its own; those concerns
// belong to callers.
package triplestore

import (
	"fmt"

	"github.com/owlstore/owlstore/pkg/docmap"
	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/nodemap"
	"github.com/owlstore/owlstore/pkg/nsmap"
	"github.com/owlstore/owlstore/pkg/quadindex"
	"github.com/owlstore/owlstore/pkg/rdf"
)

// TripleStore composes the four catalogs (namespaces, nodes, documents,
// quads) into one store and enforces the cross-map invariant that every
// inserted quad refers to identifiers live in this same store.
type TripleStore struct {
	Namespaces *nsmap.IriMap
	Nodes      *nodemap.NodeMap
	Docs       *docmap.DocMap
	Quads      *quadindex.TripleMap
}

// New creates an empty store. specs configures the quad index's
// secondary indices; pass none for DefaultConfig.
func New(specs ...quadindex.IndexSpec) (*TripleStore, error) {
	s := &TripleStore{
		Namespaces: nsmap.New(),
		Nodes:      nodemap.New(),
		Docs:       docmap.New(),
	}
	quads, err := quadindex.New(s, specs...)
	if err != nil {
		return nil, err
	}
	s.Quads = quads
	return s, nil
}

// NodeLive implements quadindex.Validator.
func (s *TripleStore) NodeLive(id ids.NodeId) bool { return s.Nodes.Valid(id) }

// DocLive implements quadindex.Validator.
func (s *TripleStore) DocLive(id ids.DocId) bool {
	_, err := s.Docs.At(id)
	return err == nil
}

// InsertQuad validates that s, p, o, and d are live in this store, then
// delegates to the quad index. Preconditions are checked here
// unconditionally (independent of quadindex.DebugChecks) since the
// facade is the natural boundary for catching a caller's mistaken
// identifier before it reaches the index.
func (s *TripleStore) InsertQuad(subject, predicate, object ids.NodeId, doc ids.DocId) (ids.TripleId, error) {
	if !s.Nodes.Valid(subject) {
		return 0, fmt.Errorf("%w: subject %v", ids.ErrInvalidID, subject)
	}
	if !s.Nodes.Valid(predicate) {
		return 0, fmt.Errorf("%w: predicate %v", ids.ErrInvalidID, predicate)
	}
	if !s.Nodes.Valid(object) {
		return 0, fmt.Errorf("%w: object %v", ids.ErrInvalidID, object)
	}
	if !s.DocLive(doc) {
		return 0, fmt.Errorf("%w: doc %v", ids.ErrInvalidID, doc)
	}
	return s.Quads.Insert(subject, predicate, object, doc), nil
}

// Query is a pass-through to the quad index.
func (s *TripleStore) Query(p quadindex.Pattern) *quadindex.Iterator {
	return s.Quads.Query(p)
}

// Clear tears down all four catalogs, returning the store to an empty
// state equivalent to a freshly constructed one.
func (s *TripleStore) Clear() {
	s.Namespaces = nsmap.New()
	s.Nodes = nodemap.New()
	s.Docs = docmap.New()
	s.Quads.Clear()
}

// CopyNamespaces copies every namespace entry of s into dst, preserving
// ids where dst does not already have a conflicting entry and remapping
// otherwise, and returns the old-to-new NsId table the caller uses to
// rewrite node references before copying nodes and quads.
func (s *TripleStore) CopyNamespaces(dst *TripleStore) map[ids.NsId]ids.NsId {
	remap := make(map[ids.NsId]ids.NsId)
	for _, id := range s.Namespaces.UserIDs() {
		iri, ok := s.Namespaces.IRIOf(id)
		if !ok {
			continue
		}
		if err := dst.Namespaces.InsertAt(id, iri); err == nil {
			remap[id] = id
		} else {
			remap[id] = dst.Namespaces.Insert(iri)
		}
		if prefix, ok := s.Namespaces.PrefixOf(id); ok {
			dst.Namespaces.SetPrefix(remap[id], prefix)
		}
	}
	return remap
}

// CopyNodes copies every user-inserted node of s into dst, remapping IRI
// nodes' namespace ids through nsRemap, and returns the old-to-new
// NodeId table for the caller to rewrite quads before copying them
// across with InsertQuad.
func (s *TripleStore) CopyNodes(dst *TripleStore, nsRemap map[ids.NsId]ids.NsId) map[ids.NodeId]ids.NodeId {
	remap := make(map[ids.NodeId]ids.NodeId)
	for _, id := range s.Nodes.UserIDs() {
		n, err := s.Nodes.At(id)
		if err != nil {
			continue
		}
		remapped := remapNode(n, nsRemap)
		if err := dst.Nodes.InsertAt(id, remapped); err == nil {
			remap[id] = id
			continue
		}
		newID, err := dst.Nodes.InsertNode(remapped)
		if err != nil {
			continue
		}
		remap[id] = newID
	}
	return remap
}

func remapNode(n rdf.Node, nsRemap map[ids.NsId]ids.NsId) rdf.Node {
	iri, ok := n.(rdf.IRI)
	if !ok {
		return n
	}
	if newNs, ok := nsRemap[iri.Ns]; ok {
		iri.Ns = newNs
	}
	return iri
}
