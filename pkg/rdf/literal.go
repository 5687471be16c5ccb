package rdf

import (
	"fmt"
	"strconv"

	"github.com/owlstore/owlstore/pkg/ids"
	"github.com/owlstore/owlstore/pkg/stdterms"
)

// NewIRI constructs an IRI node. It fails with ErrBadIri if ns is the
// reserved blank namespace: the blank variant's namespace is never
// shared with any IRI node.
func NewIRI(ns ids.NsId, name string) (Node, error) {
	if ns == stdterms.BlankNs {
		return nil, fmt.Errorf("%w: namespace ns%d is reserved for blank nodes", ErrBadIri, ns)
	}
	return IRI{Ns: ns, Name: name}, nil
}

// NewBlank constructs a blank node scoped to doc. Blank nodes always
// carry the reserved blank namespace implicitly; there is no way to
// construct one with any other namespace.
func NewBlank(n uint32, doc ids.DocId) Node {
	return Blank{N: n, Doc: doc}
}

// NewLiteral parses lexical into the internal representation selected by
// datatype's fixed datatype-to-kind mapping and returns the corresponding
// literal node. It fails with ErrBadLiteral if lexical cannot be parsed
// into that representation.
func NewLiteral(lexical string, datatype ids.NodeId, lang string) (Node, error) {
	switch stdterms.DatatypeKind(datatype) {
	case stdterms.KindBool:
		v, err := strconv.ParseBool(lexical)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean: %v", ErrBadLiteral, lexical, err)
		}
		return LiteralBool{V: v, Datatype: datatype}, nil
	case stdterms.KindInt:
		v, err := strconv.ParseInt(lexical, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer: %v", ErrBadLiteral, lexical, err)
		}
		return LiteralInt{V: v, Datatype: datatype}, nil
	case stdterms.KindUnsigned:
		v, err := strconv.ParseUint(lexical, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an unsigned integer: %v", ErrBadLiteral, lexical, err)
		}
		return LiteralUnsigned{V: v, Datatype: datatype}, nil
	case stdterms.KindDouble:
		v, err := strconv.ParseFloat(lexical, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a double: %v", ErrBadLiteral, lexical, err)
		}
		return LiteralDouble{V: v, Datatype: datatype}, nil
	default:
		return LiteralString{Value: lexical, Datatype: datatype, Lang: lang}, nil
	}
}
