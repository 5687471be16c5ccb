// Package nodemap implements the node catalog: interning of polymorphic
// RDF nodes with identifier assignment. Nodes live in a dense, nullable
// slice indexed by id, with a reverse xxh3-bucketed hash map for
// by-value lookup during interning.
package nodemap

import (
	"fmt"

	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/rdf"
	"github.com/owlstore/owlstore/pkg/stdterms"
	"github.com/zeebo/xxh3"
)

// NodeMap is the node catalog. The zero value is not usable; use New.
type NodeMap struct {
	alloc *ids.Allocator[ids.NodeId]
	// slots is a dense array indexed by id-MinUserNodeId; a nil entry
	// marks a removed (or never-issued, for an id returned out of order
	// by InsertAt) slot. The array never shrinks: node ids participate in
	// quad indices, so their slots must stay stable once allocated.
	slots []rdf.Node
	// byHash buckets live node ids by the xxh3 hash of their canonical
	// key, for reverse (value -> id) lookup during interning.
	byHash map[uint64][]ids.NodeId
}

// New creates an empty node catalog.
func New() *NodeMap {
	return &NodeMap{
		alloc:  ids.NewAllocator(stdterms.MinUserNodeId),
		byHash: make(map[uint64][]ids.NodeId),
	}
}

func bucketKey(n rdf.Node) uint64 {
	h := xxh3.Hash128(rdf.HashBytes(n))
	return h.Hi ^ h.Lo
}

func (m *NodeMap) index(id ids.NodeId) int { return int(id - stdterms.MinUserNodeId) }

// standardNode reconstructs the fixed IRI node for a standard-table id,
// mirroring nsmap's layering of user entries over stdterms.Namespaces.
func standardNode(id ids.NodeId) (rdf.Node, bool) {
	if id >= stdterms.MinUserNodeId {
		return nil, false
	}
	e := stdterms.Nodes[id]
	return rdf.IRI{Ns: e.Ns, Name: e.Name}, true
}

func (m *NodeMap) slot(id ids.NodeId) (rdf.Node, bool) {
	if id < stdterms.MinUserNodeId {
		return standardNode(id)
	}
	i := m.index(id)
	if i < 0 || i >= len(m.slots) {
		return nil, false
	}
	return m.slots[i], m.slots[i] != nil
}

// Valid reports whether id currently names a live node.
func (m *NodeMap) Valid(id ids.NodeId) bool {
	_, ok := m.slot(id)
	return ok
}

// At returns the node stored at id.
func (m *NodeMap) At(id ids.NodeId) (rdf.Node, error) {
	n, ok := m.slot(id)
	if !ok {
		return nil, fmt.Errorf("%w: node%d", ids.ErrInvalidID, id)
	}
	return n, nil
}

// Find returns the id interned for node, if any. IRI nodes are checked
// against the standard table before the user-inserted set, so e.g.
// interning rdf:type always yields its fixed standard id.
func (m *NodeMap) Find(node rdf.Node) (ids.NodeId, bool) {
	if iri, ok := node.(rdf.IRI); ok {
		if id, ok := stdterms.FindNodeByIRI(iri.Ns, iri.Name); ok {
			return id, true
		}
	}
	for _, id := range m.byHash[bucketKey(node)] {
		if existing, ok := m.slot(id); ok && existing.Equal(node) {
			return id, true
		}
	}
	return 0, false
}

// FindIRI is the IRI-specialized form of Find.
func (m *NodeMap) FindIRI(ns ids.NsId, name string) (ids.NodeId, bool) {
	return m.Find(rdf.IRI{Ns: ns, Name: name})
}

// FindBlank is the blank-node-specialized form of Find.
func (m *NodeMap) FindBlank(n uint32, doc ids.DocId) (ids.NodeId, bool) {
	return m.Find(rdf.Blank{N: n, Doc: doc})
}

// FindLiteral is the literal-specialized form of Find: it selects the
// internal variant from dt exactly as InsertLiteral does, so a lookup by
// lexical form only succeeds if that lexical form would itself parse.
func (m *NodeMap) FindLiteral(lexical string, dt ids.NodeId, lang string) (ids.NodeId, bool, error) {
	n, err := rdf.NewLiteral(lexical, dt, lang)
	if err != nil {
		return 0, false, err
	}
	id, ok := m.Find(n)
	return id, ok, nil
}

// intern interns node, returning its existing id if already present.
func (m *NodeMap) intern(node rdf.Node) ids.NodeId {
	if id, ok := m.Find(node); ok {
		return id
	}
	id := m.alloc.Next()
	// Skip ids that InsertAt has already made live.
	for m.Valid(id) {
		id = m.alloc.Next()
	}
	i := m.index(id)
	for i >= len(m.slots) {
		m.slots = append(m.slots, nil)
	}
	m.slots[i] = node
	key := bucketKey(node)
	m.byHash[key] = append(m.byHash[key], id)
	return id
}

// InsertIRI interns an IRI node. It fails with rdf.ErrBadIri if ns is the
// reserved blank namespace.
func (m *NodeMap) InsertIRI(ns ids.NsId, name string) (ids.NodeId, error) {
	n, err := rdf.NewIRI(ns, name)
	if err != nil {
		return 0, err
	}
	return m.intern(n), nil
}

// InsertBlank interns a blank node scoped to doc.
func (m *NodeMap) InsertBlank(n uint32, doc ids.DocId) ids.NodeId {
	return m.intern(rdf.NewBlank(n, doc))
}

// InsertLiteral parses lexical into the internal representation selected
// by dt and interns the resulting literal node. It fails with
// rdf.ErrBadLiteral if lexical does not parse.
func (m *NodeMap) InsertLiteral(lexical string, dt ids.NodeId, lang string) (ids.NodeId, error) {
	n, err := rdf.NewLiteral(lexical, dt, lang)
	if err != nil {
		return 0, err
	}
	return m.intern(n), nil
}

// InsertAt interns node at a caller-chosen id, used when copying a node
// catalog from one store into another. It fails with ids.ErrIDConflict
// if id is already live with a different node, and is a no-op if id
// already names an equal node.
func (m *NodeMap) InsertAt(id ids.NodeId, node rdf.Node) error {
	if existing, ok := m.slot(id); ok {
		if existing.Equal(node) {
			return nil
		}
		return fmt.Errorf("%w: node%d already holds %v", ids.ErrIDConflict, id, existing)
	}
	if _, ok := m.Find(node); ok {
		return fmt.Errorf("%w: value already interned under a different id", ids.ErrIDConflict)
	}
	i := m.index(id)
	for i >= len(m.slots) {
		m.slots = append(m.slots, nil)
	}
	m.slots[i] = node
	key := bucketKey(node)
	m.byHash[key] = append(m.byHash[key], id)
	return nil
}

// Remove removes id if present, returning the removed node and releasing
// id to the allocator. The reserved standard-id range is not removable.
func (m *NodeMap) Remove(id ids.NodeId) (rdf.Node, error) {
	if id < stdterms.MinUserNodeId {
		return nil, fmt.Errorf("%w: node%d is a standard node", ids.ErrInvalidID, id)
	}
	n, ok := m.slot(id)
	if !ok {
		return nil, fmt.Errorf("%w: node%d", ids.ErrInvalidID, id)
	}
	i := m.index(id)
	m.slots[i] = nil
	key := bucketKey(n)
	bucket := m.byHash[key]
	for j, bid := range bucket {
		if bid == id {
			bucket[j] = bucket[len(bucket)-1]
			m.byHash[key] = bucket[:len(bucket)-1]
			break
		}
	}
	m.alloc.Release(id)
	return n, nil
}

// InsertNode interns node without regard to its concrete variant. It is
// the entry point copy helpers use when the caller already holds a
// constructed rdf.Node (e.g. one read back from another store) instead
// of raw lexical fields.
func (m *NodeMap) InsertNode(node rdf.Node) (ids.NodeId, error) {
	if iri, ok := node.(rdf.IRI); ok && iri.Ns == stdterms.BlankNs {
		return 0, fmt.Errorf("%w: IRI node may not use the blank namespace", rdf.ErrBadIri)
	}
	return m.intern(node), nil
}

// UserIDs returns every live node id currently interned, in no
// particular order.
func (m *NodeMap) UserIDs() []ids.NodeId {
	out := make([]ids.NodeId, 0, len(m.slots))
	for i, s := range m.slots {
		if s != nil {
			out = append(out, ids.NodeId(i)+stdterms.MinUserNodeId)
		}
	}
	return out
}

// Len returns the number of live, user-inserted nodes.
func (m *NodeMap) Len() int {
	n := 0
	for _, s := range m.slots {
		if s != nil {
			n++
		}
	}
	return n
}
