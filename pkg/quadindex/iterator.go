package quadindex

import "github.com/owlstore/owlstore/pkg/rdf"

// Iterator is a lazy, single-pass sequence of quads matching a Pattern.
// It advances one candidate at a time rather than precomputing the full
// result set, and stops (Next returns false) once the container it was
// created from has been mutated.
type Iterator struct {
	tm      *TripleMap
	gen     uint64
	pattern Pattern
	primary bool
	source  []fragEntry
	pos     int
}

// Next advances the iterator and returns the next matching quad, or
// false if the sequence is exhausted or the container has since mutated.
func (it *Iterator) Next() (rdf.Quad, bool) {
	if it.gen != it.tm.gen {
		return rdf.Quad{}, false
	}
	if it.primary {
		for it.pos < len(it.tm.primary) {
			i := it.pos
			it.pos++
			if !it.tm.live[i] {
				continue
			}
			if q := it.tm.primary[i]; matches(q, it.pattern) {
				return q, true
			}
		}
		return rdf.Quad{}, false
	}
	for it.pos < len(it.source) {
		e := it.source[it.pos]
		it.pos++
		if int(e.id) >= len(it.tm.live) || !it.tm.live[e.id] {
			continue
		}
		if q := it.tm.primary[e.id]; matches(q, it.pattern) {
			return q, true
		}
	}
	return rdf.Quad{}, false
}
