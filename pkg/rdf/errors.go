package rdf

import "errors"

// ErrBadIri is returned when an IRI node is constructed with the reserved
// blank namespace.
var ErrBadIri = errors.New("rdf: bad IRI node")

// ErrBadLiteral is returned when a literal's lexical form does not parse
// into the internal representation selected by its datatype, or parses
// but is out of range for that representation.
var ErrBadLiteral = errors.New("rdf: bad literal")
