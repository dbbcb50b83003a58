// Package vocabulary defines the standard W3C IRIs semlink emits and
// recognizes during serialization. Domain-specific terms live in
// subpackages; this package only carries cross-vocabulary constants.
package vocabulary

// RDF and RDFS core terms.
const (
	// RDFType is the rdf:type predicate linking an entity to its class.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// RDFSLabel is the generic human-readable label predicate.
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RDFSSubClassOf links a class to its superclass.
	RDFSSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
)

// SKOS label terms used by the concept mapper.
const (
	// SKOSPrefLabel is the preferred label for a concept in a language.
	SKOSPrefLabel = "http://www.w3.org/2004/02/skos/core#prefLabel"

	// SKOSAltLabel is an alternative label for a concept in a language.
	SKOSAltLabel = "http://www.w3.org/2004/02/skos/core#altLabel"
)

// XSD datatype IRIs for literal objects.
const (
	XSDString   = "http://www.w3.org/2001/XMLSchema#string"
	XSDBoolean  = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal  = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"
)
