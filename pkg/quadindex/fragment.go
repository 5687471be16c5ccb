package quadindex

import (
	"sort"

	"github.com/owlstore/owlstore/pkg/ids"
)

// fragEntry is one secondary-index entry: the referenced quad's TripleId
// plus the role values used to order it within its fragment.
type fragEntry struct {
	t1, t2, t3 uint64
	id         ids.TripleId
}

func entryLess(a, b fragEntry) bool {
	if a.t1 != b.t1 {
		return a.t1 < b.t1
	}
	if a.t2 != b.t2 {
		return a.t2 < b.t2
	}
	return a.t3 < b.t3
}

// fragment is a container of references to quads sharing a secondary
// index's leading-key value, ordered lexicographically by (T1, T2, T3).
type fragment interface {
	insert(e fragEntry)
	sorted() []fragEntry
}

func newFragment(kind FragmentKind) fragment {
	if kind == OrderedFragmentKind {
		return &orderedFragment{}
	}
	return &vectorFragment{}
}

// vectorFragment appends unconditionally and re-sorts lazily on the next
// read, if insertions have occurred since the last read.
type vectorFragment struct {
	entries []fragEntry
	dirty   bool
}

func (f *vectorFragment) insert(e fragEntry) {
	f.entries = append(f.entries, e)
	f.dirty = true
}

func (f *vectorFragment) sorted() []fragEntry {
	if f.dirty {
		sort.Slice(f.entries, func(i, j int) bool { return entryLess(f.entries[i], f.entries[j]) })
		f.dirty = false
	}
	return f.entries
}

// orderedFragment maintains the sort invariant on every insert.
type orderedFragment struct {
	entries []fragEntry
}

func (f *orderedFragment) insert(e fragEntry) {
	i := sort.Search(len(f.entries), func(i int) bool { return !entryLess(f.entries[i], e) })
	f.entries = append(f.entries, fragEntry{})
	copy(f.entries[i+1:], f.entries[i:])
	f.entries[i] = e
}

func (f *orderedFragment) sorted() []fragEntry { return f.entries }

// boundRange narrows entries (already lexicographically sorted) to the
// contiguous sub-range matching the concrete positions among
// spec.Roles[1:]: bound on T1 first, then recursively on T2 and T3 only
// if the preceding role is also concrete.
func boundRange(entries []fragEntry, spec IndexSpec, p Pattern) []fragEntry {
	cur := entries
	v1, ok := patternValue(p, spec.Roles[1])
	if !ok {
		return cur
	}
	cur = boundOne(cur, v1, func(e fragEntry) uint64 { return e.t1 })

	v2, ok := patternValue(p, spec.Roles[2])
	if !ok {
		return cur
	}
	cur = boundOne(cur, v2, func(e fragEntry) uint64 { return e.t2 })

	v3, ok := patternValue(p, spec.Roles[3])
	if !ok {
		return cur
	}
	return boundOne(cur, v3, func(e fragEntry) uint64 { return e.t3 })
}

func boundOne(entries []fragEntry, v uint64, key func(fragEntry) uint64) []fragEntry {
	lo := sort.Search(len(entries), func(i int) bool { return key(entries[i]) >= v })
	hi := sort.Search(len(entries), func(i int) bool { return key(entries[i]) > v })
	return entries[lo:hi]
}
