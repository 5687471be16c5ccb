// Package quadindex implements the multi-index quad container, the
// principal subsystem of the store: a primary, insertion-ordered quad
// store plus a configurable set of secondary indices that a query
// dispatches to by selectivity, picked at query time by the same
// S>P>O>D priority the index set is configured with.
package quadindex

import (
	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/rdf"
)

// DebugChecks gates the precondition check in Insert that every
// identifier is live in the owning store. A violation is a programming
// error, not a recoverable failure, so the check is off by default;
// enable it in tests or development.
var DebugChecks = false

// Validator answers liveness questions Insert consults when DebugChecks
// is enabled. A TripleStore facade satisfies this with its node and
// document catalogs.
type Validator interface {
	NodeLive(id ids.NodeId) bool
	DocLive(id ids.DocId) bool
}

// Pattern is a query pattern: each field is either a concrete identifier
// or nil for ANY.
type Pattern struct {
	S *ids.NodeId
	P *ids.NodeId
	O *ids.NodeId
	D *ids.DocId
}

func concrete(p Pattern, r Role) bool {
	switch r {
	case RoleS:
		return p.S != nil
	case RoleP:
		return p.P != nil
	case RoleO:
		return p.O != nil
	default:
		return p.D != nil
	}
}

func patternValue(p Pattern, r Role) (uint64, bool) {
	switch r {
	case RoleS:
		if p.S != nil {
			return uint64(*p.S), true
		}
	case RoleP:
		if p.P != nil {
			return uint64(*p.P), true
		}
	case RoleO:
		if p.O != nil {
			return uint64(*p.O), true
		}
	default:
		if p.D != nil {
			return uint64(*p.D), true
		}
	}
	return 0, false
}

func roleValue(q rdf.Quad, r Role) uint64 {
	switch r {
	case RoleS:
		return uint64(q.Subject)
	case RoleP:
		return uint64(q.Predicate)
	case RoleO:
		return uint64(q.Object)
	default:
		return uint64(q.Doc)
	}
}

func matches(q rdf.Quad, p Pattern) bool {
	if p.S != nil && q.Subject != *p.S {
		return false
	}
	if p.P != nil && q.Predicate != *p.P {
		return false
	}
	if p.O != nil && q.Object != *p.O {
		return false
	}
	if p.D != nil && q.Doc != *p.D {
		return false
	}
	return true
}

type secondaryIndex struct {
	spec  IndexSpec
	frags map[uint64]fragment
}

// TripleMap is the multi-index quad container. The zero value is not
// usable; use New.
type TripleMap struct {
	validator Validator
	indices   []secondaryIndex
	primary   []rdf.Quad
	live      []bool
	gen       uint64
}

// New creates a quad container configured with specs, or DefaultConfig
// if none are given. It fails with ErrInvalidIndexSpec if any spec's
// Roles is not a permutation of S, P, O, D. v may be nil; it is only
// consulted when DebugChecks is enabled.
func New(v Validator, specs ...IndexSpec) (*TripleMap, error) {
	if len(specs) == 0 {
		specs = DefaultConfig()
	}
	indices := make([]secondaryIndex, len(specs))
	for i, s := range specs {
		if err := s.validate(); err != nil {
			return nil, err
		}
		indices[i] = secondaryIndex{spec: s, frags: make(map[uint64]fragment)}
	}
	return &TripleMap{validator: v, indices: indices}, nil
}

// Insert appends (s, p, o, d) to the primary store and every secondary
// index's fragment for its leading-key value, returning the new quad's
// TripleId. Duplicates are permitted. When DebugChecks is enabled and a
// Validator was supplied, Insert panics if any identifier is not live in
// the owning store; this is a documented precondition violation, not a
// recoverable error.
func (tm *TripleMap) Insert(s, p, o ids.NodeId, d ids.DocId) ids.TripleId {
	if DebugChecks && tm.validator != nil {
		if !tm.validator.NodeLive(s) || !tm.validator.NodeLive(p) || !tm.validator.NodeLive(o) || !tm.validator.DocLive(d) {
			panic("quadindex: insert with a non-live identifier")
		}
	}
	id := ids.TripleId(len(tm.primary))
	q := rdf.Quad{Subject: s, Predicate: p, Object: o, Doc: d}
	tm.primary = append(tm.primary, q)
	tm.live = append(tm.live, true)
	for i := range tm.indices {
		idx := &tm.indices[i]
		key := roleValue(q, idx.spec.Roles[0])
		f, ok := idx.frags[key]
		if !ok {
			f = newFragment(idx.spec.Kind)
			idx.frags[key] = f
		}
		f.insert(fragEntry{
			t1: roleValue(q, idx.spec.Roles[1]),
			t2: roleValue(q, idx.spec.Roles[2]),
			t3: roleValue(q, idx.spec.Roles[3]),
			id: id,
		})
	}
	tm.gen++
	return id
}

// At returns the quad stored at id, or false if id has been removed.
func (tm *TripleMap) At(id ids.TripleId) (rdf.Quad, bool) {
	if int(id) >= len(tm.primary) || !tm.live[id] {
		return rdf.Quad{}, false
	}
	return tm.primary[id], true
}

// selectIndex returns the applicable secondary index with the highest
// selection priority (S > P > O > D, ties by configuration order), or -1
// if no secondary index is applicable.
func (tm *TripleMap) selectIndex(p Pattern) int {
	best, bestRank := -1, 4
	for i := range tm.indices {
		lead := tm.indices[i].spec.Roles[0]
		if !concrete(p, lead) {
			continue
		}
		if rank := priority[lead]; rank < bestRank {
			best, bestRank = i, rank
		}
	}
	return best
}

// Query returns a lazy iterator over quads matching p. Mutating the
// container invalidates any outstanding iterator: Next begins returning
// false once a mutation has occurred.
func (tm *TripleMap) Query(p Pattern) *Iterator {
	i := tm.selectIndex(p)
	if i < 0 {
		return &Iterator{tm: tm, gen: tm.gen, pattern: p, primary: true}
	}
	idx := &tm.indices[i]
	key, _ := patternValue(p, idx.spec.Roles[0])
	f, ok := idx.frags[key]
	if !ok {
		return &Iterator{tm: tm, gen: tm.gen, pattern: p}
	}
	entries := boundRange(f.sorted(), idx.spec, p)
	return &Iterator{tm: tm, gen: tm.gen, pattern: p, source: entries}
}

// RemoveDoc removes every quad with document id d and returns how many
// were removed. Implemented as a linear primary-store scan with
// tombstoning: secondary index fragments keep stale references, which
// iterators filter out via liveness, avoiding per-fragment removal.
func (tm *TripleMap) RemoveDoc(d ids.DocId) int {
	n := 0
	for id := range tm.primary {
		if tm.live[id] && tm.primary[id].Doc == d {
			tm.live[id] = false
			n++
		}
	}
	if n > 0 {
		tm.gen++
	}
	return n
}

// Clear removes every quad and resets all secondary indices.
func (tm *TripleMap) Clear() {
	tm.primary = tm.primary[:0]
	tm.live = tm.live[:0]
	for i := range tm.indices {
		tm.indices[i].frags = make(map[uint64]fragment)
	}
	tm.gen++
}

// Len returns the number of live quads.
func (tm *TripleMap) Len() int {
	n := 0
	for _, alive := range tm.live {
		if alive {
			n++
		}
	}
	return n
}
