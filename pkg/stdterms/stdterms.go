// Package stdterms holds the built-in RDF/RDFS/OWL/XSD vocabulary with
// fixed, process-wide identifiers. The table is assembled once, in an
// init function, and never mutated afterward; every store instance layers
// its own catalogs on top of it by reference.
package stdterms

import "github.com/owlstore/owlstore/pkg/ids"

// LiteralKind is the internal representation selected for a literal node
// by its datatype, per the fixed datatype-to-kind mapping below.
type LiteralKind byte

const (
	KindString LiteralKind = iota
	KindBool
	KindInt
	KindUnsigned
	KindDouble
)

// Reserved namespace identifiers. BlankNs is never a real IRI namespace;
// it exists only so blank nodes can carry a NsId that is guaranteed
// distinct from every IRI namespace's id.
const (
	BlankNs ids.NsId = iota
	RdfNs
	RdfsNs
	OwlNs
	XsdNs

	// MinUserNsId is the first namespace identifier a store's allocator
	// may vend; everything below it is a standard namespace.
	MinUserNsId
)

// NsEntry is one row of the standard namespace table.
type NsEntry struct {
	Id     ids.NsId
	IRI    string
	Prefix string
}

// Namespaces is the fixed standard namespace table, indexed by NsId.
var Namespaces = []NsEntry{
	{BlankNs, "_:blank", ""},
	{RdfNs, "http://www.w3.org/1999/02/22-rdf-syntax-ns#", "rdf"},
	{RdfsNs, "http://www.w3.org/2000/01/rdf-schema#", "rdfs"},
	{OwlNs, "http://www.w3.org/2002/07/owl#", "owl"},
	{XsdNs, "http://www.w3.org/2001/XMLSchema#", "xsd"},
}

// NodeEntry is one row of the standard node table: a fixed IRI node made
// of a standard namespace plus a local name.
type NodeEntry struct {
	Id   ids.NodeId
	Ns   ids.NsId
	Name string
}

// Standard node identifiers, assigned in table order below. Grouped by
// vocabulary for readability; the numeric values are an implementation
// detail callers should not depend on beyond their stability within a
// process.
const (
	RdfType ids.NodeId = iota
	RdfProperty
	RdfStatement
	RdfSubject
	RdfPredicate
	RdfObject
	RdfFirst
	RdfRest
	RdfNil
	RdfLangString
	RdfBag
	RdfSeq
	RdfAlt
	RdfValue
	RdfList
	RdfXMLLiteral
	RdfHTML
	RdfPlainLiteral

	RdfsResource
	RdfsClass
	RdfsSubClassOf
	RdfsSubPropertyOf
	RdfsDomain
	RdfsRange
	RdfsLabel
	RdfsComment
	RdfsSeeAlso
	RdfsIsDefinedBy
	RdfsLiteral
	RdfsDatatype
	RdfsContainer
	RdfsMember

	OwlThing
	OwlNothing
	OwlClass
	OwlObjectProperty
	OwlDatatypeProperty
	OwlAnnotationProperty
	OwlFunctionalProperty
	OwlInverseFunctionalProperty
	OwlTransitiveProperty
	OwlSymmetricProperty
	OwlSameAs
	OwlDifferentFrom
	OwlEquivalentClass
	OwlEquivalentProperty
	OwlDisjointWith
	OwlAllValuesFrom
	OwlSomeValuesFrom
	OwlHasValue
	OwlOnProperty
	OwlIntersectionOf
	OwlUnionOf
	OwlComplementOf
	OwlOneOf
	OwlRestriction
	OwlOntology
	OwlImports
	OwlVersionInfo
	OwlInverseOf
	OwlMinCardinality
	OwlMaxCardinality
	OwlCardinality
	OwlDeprecatedClass
	OwlDeprecatedProperty

	XsdString
	XsdBoolean
	XsdDecimal
	XsdFloat
	XsdDouble
	XsdDuration
	XsdDateTime
	XsdTime
	XsdDate
	XsdAnyURI
	XsdNormalizedString
	XsdToken
	XsdInteger
	XsdNonPositiveInteger
	XsdNegativeInteger
	XsdLong
	XsdInt
	XsdShort
	XsdByte
	XsdNonNegativeInteger
	XsdUnsignedLong
	XsdUnsignedInt
	XsdUnsignedShort
	XsdUnsignedByte
	XsdPositiveInteger

	// MinUserNodeId is the first node identifier a store's allocator may
	// vend; everything below it is a standard node.
	MinUserNodeId
)

// Nodes is the fixed standard node table, indexed by NodeId.
var Nodes = make([]NodeEntry, MinUserNodeId)

func reg(id ids.NodeId, ns ids.NsId, name string) {
	Nodes[id] = NodeEntry{Id: id, Ns: ns, Name: name}
}

func init() {
	reg(RdfType, RdfNs, "type")
	reg(RdfProperty, RdfNs, "Property")
	reg(RdfStatement, RdfNs, "Statement")
	reg(RdfSubject, RdfNs, "subject")
	reg(RdfPredicate, RdfNs, "predicate")
	reg(RdfObject, RdfNs, "object")
	reg(RdfFirst, RdfNs, "first")
	reg(RdfRest, RdfNs, "rest")
	reg(RdfNil, RdfNs, "nil")
	reg(RdfLangString, RdfNs, "langString")
	reg(RdfBag, RdfNs, "Bag")
	reg(RdfSeq, RdfNs, "Seq")
	reg(RdfAlt, RdfNs, "Alt")
	reg(RdfValue, RdfNs, "value")
	reg(RdfList, RdfNs, "List")
	reg(RdfXMLLiteral, RdfNs, "XMLLiteral")
	reg(RdfHTML, RdfNs, "HTML")
	reg(RdfPlainLiteral, RdfNs, "PlainLiteral")

	reg(RdfsResource, RdfsNs, "Resource")
	reg(RdfsClass, RdfsNs, "Class")
	reg(RdfsSubClassOf, RdfsNs, "subClassOf")
	reg(RdfsSubPropertyOf, RdfsNs, "subPropertyOf")
	reg(RdfsDomain, RdfsNs, "domain")
	reg(RdfsRange, RdfsNs, "range")
	reg(RdfsLabel, RdfsNs, "label")
	reg(RdfsComment, RdfsNs, "comment")
	reg(RdfsSeeAlso, RdfsNs, "seeAlso")
	reg(RdfsIsDefinedBy, RdfsNs, "isDefinedBy")
	reg(RdfsLiteral, RdfsNs, "Literal")
	reg(RdfsDatatype, RdfsNs, "Datatype")
	reg(RdfsContainer, RdfsNs, "Container")
	reg(RdfsMember, RdfsNs, "member")

	reg(OwlThing, OwlNs, "Thing")
	reg(OwlNothing, OwlNs, "Nothing")
	reg(OwlClass, OwlNs, "Class")
	reg(OwlObjectProperty, OwlNs, "ObjectProperty")
	reg(OwlDatatypeProperty, OwlNs, "DatatypeProperty")
	reg(OwlAnnotationProperty, OwlNs, "AnnotationProperty")
	reg(OwlFunctionalProperty, OwlNs, "FunctionalProperty")
	reg(OwlInverseFunctionalProperty, OwlNs, "InverseFunctionalProperty")
	reg(OwlTransitiveProperty, OwlNs, "TransitiveProperty")
	reg(OwlSymmetricProperty, OwlNs, "SymmetricProperty")
	reg(OwlSameAs, OwlNs, "sameAs")
	reg(OwlDifferentFrom, OwlNs, "differentFrom")
	reg(OwlEquivalentClass, OwlNs, "equivalentClass")
	reg(OwlEquivalentProperty, OwlNs, "equivalentProperty")
	reg(OwlDisjointWith, OwlNs, "disjointWith")
	reg(OwlAllValuesFrom, OwlNs, "allValuesFrom")
	reg(OwlSomeValuesFrom, OwlNs, "someValuesFrom")
	reg(OwlHasValue, OwlNs, "hasValue")
	reg(OwlOnProperty, OwlNs, "onProperty")
	reg(OwlIntersectionOf, OwlNs, "intersectionOf")
	reg(OwlUnionOf, OwlNs, "unionOf")
	reg(OwlComplementOf, OwlNs, "complementOf")
	reg(OwlOneOf, OwlNs, "oneOf")
	reg(OwlRestriction, OwlNs, "Restriction")
	reg(OwlOntology, OwlNs, "Ontology")
	reg(OwlImports, OwlNs, "imports")
	reg(OwlVersionInfo, OwlNs, "versionInfo")
	reg(OwlInverseOf, OwlNs, "inverseOf")
	reg(OwlMinCardinality, OwlNs, "minCardinality")
	reg(OwlMaxCardinality, OwlNs, "maxCardinality")
	reg(OwlCardinality, OwlNs, "cardinality")
	reg(OwlDeprecatedClass, OwlNs, "DeprecatedClass")
	reg(OwlDeprecatedProperty, OwlNs, "DeprecatedProperty")

	reg(XsdString, XsdNs, "string")
	reg(XsdBoolean, XsdNs, "boolean")
	reg(XsdDecimal, XsdNs, "decimal")
	reg(XsdFloat, XsdNs, "float")
	reg(XsdDouble, XsdNs, "double")
	reg(XsdDuration, XsdNs, "duration")
	reg(XsdDateTime, XsdNs, "dateTime")
	reg(XsdTime, XsdNs, "time")
	reg(XsdDate, XsdNs, "date")
	reg(XsdAnyURI, XsdNs, "anyURI")
	reg(XsdNormalizedString, XsdNs, "normalizedString")
	reg(XsdToken, XsdNs, "token")
	reg(XsdInteger, XsdNs, "integer")
	reg(XsdNonPositiveInteger, XsdNs, "nonPositiveInteger")
	reg(XsdNegativeInteger, XsdNs, "negativeInteger")
	reg(XsdLong, XsdNs, "long")
	reg(XsdInt, XsdNs, "int")
	reg(XsdShort, XsdNs, "short")
	reg(XsdByte, XsdNs, "byte")
	reg(XsdNonNegativeInteger, XsdNs, "nonNegativeInteger")
	reg(XsdUnsignedLong, XsdNs, "unsignedLong")
	reg(XsdUnsignedInt, XsdNs, "unsignedInt")
	reg(XsdUnsignedShort, XsdNs, "unsignedShort")
	reg(XsdUnsignedByte, XsdNs, "unsignedByte")
	reg(XsdPositiveInteger, XsdNs, "positiveInteger")
}

// datatypeKind maps the boolean and numeric XSD datatypes of the table
// above to the internal literal representation they select. Anything not
// listed here - including xsd:string, rdf:langString and every
// non-standard, user-inserted datatype - falls back to the string kind.
var datatypeKind = map[ids.NodeId]LiteralKind{
	XsdBoolean: KindBool,

	XsdInteger:            KindInt,
	XsdInt:                KindInt,
	XsdLong:               KindInt,
	XsdShort:              KindInt,
	XsdByte:               KindInt,
	XsdNonPositiveInteger: KindInt,
	XsdNegativeInteger:    KindInt,

	XsdNonNegativeInteger: KindUnsigned,
	XsdUnsignedLong:       KindUnsigned,
	XsdUnsignedInt:        KindUnsigned,
	XsdUnsignedShort:      KindUnsigned,
	XsdUnsignedByte:       KindUnsigned,
	XsdPositiveInteger:    KindUnsigned,

	XsdDouble:  KindDouble,
	XsdFloat:   KindDouble,
	XsdDecimal: KindDouble,
}

// DatatypeKind returns the internal representation a literal with
// datatype dt should use. Unknown or non-numeric datatypes are string
// literals.
func DatatypeKind(dt ids.NodeId) LiteralKind {
	if k, ok := datatypeKind[dt]; ok {
		return k
	}
	return KindString
}

// FindNsByIRI returns the namespace id for iri among the standard namespaces,
// or false if iri is not a standard namespace.
func FindNsByIRI(iri string) (ids.NsId, bool) {
	for _, e := range Namespaces {
		if e.IRI == iri {
			return e.Id, true
		}
	}
	return 0, false
}

// FindNsByPrefix returns the namespace id bound to prefix among the
// standard namespaces, or false if no standard namespace uses it.
func FindNsByPrefix(prefix string) (ids.NsId, bool) {
	if prefix == "" {
		return 0, false
	}
	for _, e := range Namespaces {
		if e.Prefix == prefix {
			return e.Id, true
		}
	}
	return 0, false
}

// FindNodeByIRI returns the node id for a standard IRI node (ns, name),
// or false if it is not one of the table's entries.
func FindNodeByIRI(ns ids.NsId, name string) (ids.NodeId, bool) {
	for _, e := range Nodes {
		if e.Ns == ns && e.Name == name {
			return e.Id, true
		}
	}
	return 0, false
}
