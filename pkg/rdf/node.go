// Package rdf defines the data model shared by every catalog in the
// store: the polymorphic Node tagged union, namespace and document
// entries, and the Quad type. RDF terms are modeled as an interface
// implemented by value-receiver structs (IRI, Blank, the literal
// variants), closed to exactly seven kinds: no quoted triples, no
// default-graph term, no RDF 1.2 extensions.
package rdf

import (
	"fmt"
	"math"

	"github.com/owlstore/owlstore/pkg/ids"
)

// NodeKind discriminates the closed set of Node variants.
type NodeKind byte

const (
	KindIRI NodeKind = iota
	KindBlank
	KindLiteralString
	KindLiteralBool
	KindLiteralInt
	KindLiteralUnsigned
	KindLiteralDouble
)

func (k NodeKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteralString:
		return "literal-string"
	case KindLiteralBool:
		return "literal-bool"
	case KindLiteralInt:
		return "literal-int"
	case KindLiteralUnsigned:
		return "literal-unsigned"
	case KindLiteralDouble:
		return "literal-double"
	default:
		return "unknown"
	}
}

// Node is an RDF node: an IRI, a blank node, or one of the typed literal
// variants. The interface is implemented only by the value types in this
// file; callers type-switch or type-assert to recover the variant.
type Node interface {
	Kind() NodeKind
	String() string
	// Equal reports whether other is the same node: same variant, same
	// equality key.
	Equal(other Node) bool
	// hashBytes returns a canonical byte encoding of the node's equality
	// key, used by the node catalog to bucket nodes for interning. It is
	// unexported so the variant set stays closed to this package.
	hashBytes() []byte
}

// IRI is a named node: a namespace id plus a local name.
type IRI struct {
	Ns   ids.NsId
	Name string
}

func (n IRI) Kind() NodeKind { return KindIRI }
func (n IRI) String() string { return fmt.Sprintf("iri(ns%d,%s)", n.Ns, n.Name) }
func (n IRI) Equal(other Node) bool {
	o, ok := other.(IRI)
	return ok && o.Ns == n.Ns && o.Name == n.Name
}
func (n IRI) hashBytes() []byte {
	b := make([]byte, 0, 4+len(n.Name))
	b = appendUint32(b, uint32(n.Ns))
	return append(b, n.Name...)
}

// Blank is a blank node: an existentially-scoped index, scoped to the
// document it was minted in.
type Blank struct {
	N   uint32
	Doc ids.DocId
}

func (n Blank) Kind() NodeKind { return KindBlank }
func (n Blank) String() string { return fmt.Sprintf("_:b%d@doc%d", n.N, n.Doc) }
func (n Blank) Equal(other Node) bool {
	o, ok := other.(Blank)
	return ok && o.N == n.N && o.Doc == n.Doc
}
func (n Blank) hashBytes() []byte {
	b := appendUint32(nil, n.N)
	return appendUint32(b, uint32(n.Doc))
}

// LiteralString is a literal whose datatype maps to the string kind (any
// datatype outside the boolean and numeric XSD types), optionally
// language-tagged.
type LiteralString struct {
	Value    string
	Datatype ids.NodeId
	Lang     string
}

func (n LiteralString) Kind() NodeKind { return KindLiteralString }
func (n LiteralString) String() string { return fmt.Sprintf("%q@%s^^node%d", n.Value, n.Lang, n.Datatype) }
func (n LiteralString) Equal(other Node) bool {
	o, ok := other.(LiteralString)
	return ok && o.Value == n.Value && o.Datatype == n.Datatype && o.Lang == n.Lang
}
func (n LiteralString) hashBytes() []byte {
	b := appendUint32(nil, uint32(n.Datatype))
	b = append(b, 0)
	b = append(b, n.Lang...)
	b = append(b, 0)
	return append(b, n.Value...)
}

// LiteralBool is a literal whose datatype selects the boolean internal
// representation.
type LiteralBool struct {
	V        bool
	Datatype ids.NodeId
}

func (n LiteralBool) Kind() NodeKind { return KindLiteralBool }
func (n LiteralBool) String() string { return fmt.Sprintf("%t^^node%d", n.V, n.Datatype) }
func (n LiteralBool) Equal(other Node) bool {
	o, ok := other.(LiteralBool)
	return ok && o.V == n.V && o.Datatype == n.Datatype
}
func (n LiteralBool) hashBytes() []byte {
	b := appendUint32(nil, uint32(n.Datatype))
	if n.V {
		return append(b, 1)
	}
	return append(b, 0)
}

// LiteralInt is a literal whose datatype selects the signed-integer
// internal representation.
type LiteralInt struct {
	V        int64
	Datatype ids.NodeId
}

func (n LiteralInt) Kind() NodeKind { return KindLiteralInt }
func (n LiteralInt) String() string { return fmt.Sprintf("%d^^node%d", n.V, n.Datatype) }
func (n LiteralInt) Equal(other Node) bool {
	o, ok := other.(LiteralInt)
	return ok && o.V == n.V && o.Datatype == n.Datatype
}
func (n LiteralInt) hashBytes() []byte {
	b := appendUint32(nil, uint32(n.Datatype))
	return appendUint64(b, uint64(n.V))
}

// LiteralUnsigned is a literal whose datatype selects the unsigned-integer
// internal representation.
type LiteralUnsigned struct {
	V        uint64
	Datatype ids.NodeId
}

func (n LiteralUnsigned) Kind() NodeKind { return KindLiteralUnsigned }
func (n LiteralUnsigned) String() string { return fmt.Sprintf("%d^^node%d", n.V, n.Datatype) }
func (n LiteralUnsigned) Equal(other Node) bool {
	o, ok := other.(LiteralUnsigned)
	return ok && o.V == n.V && o.Datatype == n.Datatype
}
func (n LiteralUnsigned) hashBytes() []byte {
	b := appendUint32(nil, uint32(n.Datatype))
	return appendUint64(b, n.V)
}

// LiteralDouble is a literal whose datatype selects the floating-point
// internal representation. Equality and hashing compare the IEEE-754 bit
// pattern, so two NaN literals with the same bit pattern intern to the
// same node even though NaN != NaN under Go's == .
type LiteralDouble struct {
	V        float64
	Datatype ids.NodeId
}

func (n LiteralDouble) Kind() NodeKind { return KindLiteralDouble }
func (n LiteralDouble) String() string { return fmt.Sprintf("%g^^node%d", n.V, n.Datatype) }
func (n LiteralDouble) Equal(other Node) bool {
	o, ok := other.(LiteralDouble)
	return ok && math.Float64bits(o.V) == math.Float64bits(n.V) && o.Datatype == n.Datatype
}
func (n LiteralDouble) hashBytes() []byte {
	b := appendUint32(nil, uint32(n.Datatype))
	return appendUint64(b, math.Float64bits(n.V))
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendUint64(b []byte, v uint64) []byte {
	return append(b,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// HashBytes exposes a node's canonical equality-key encoding to the node
// catalog package, which cannot see the unexported hashBytes method
// directly since it lives in a different package.
func HashBytes(n Node) []byte { return n.hashBytes() }
