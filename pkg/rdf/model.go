package rdf

import "github.com/owlstore/owlstore/pkg/ids"

// Namespace is one entry of the namespace catalog: an interned IRI string
// with an optional, unique prefix.
type Namespace struct {
	Id     ids.NsId
	IRI    string
	Prefix string
}

// Document is one entry of the document catalog: the metadata associated
// with a source document that quads can be attributed to.
type Document struct {
	Id       ids.DocId
	Ontology ids.NodeId
	Version  ids.NodeId
	Location string
}

// Quad is an RDF statement plus the id of the document it was read from.
// The quad set is a multiset: the store does not deduplicate quads on
// insertion.
type Quad struct {
	Subject   ids.NodeId
	Predicate ids.NodeId
	Object    ids.NodeId
	Doc       ids.DocId
}
