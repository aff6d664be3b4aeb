// Package vocab holds the IRIs of the ontologies used in the generated graph.
package vocab

// Namespace IRIs registered as default prefixes.
const (
	DCT   = "http://purl.org/dc/terms/"
	FALDO = "http://biohackathon.org/resource/faldo#"
	GVO   = "http://genome-variation.org/resource#"
	HCO   = "http://identifiers.org/hco/"
	OBO   = "http://purl.obolibrary.org/obo/"
	RDF   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS  = "http://www.w3.org/2000/01/rdf-schema#"
	SIO   = "http://semanticscience.org/resource/"
	XSD   = "http://www.w3.org/2001/XMLSchema#"
)

// RDF and RDFS terms.
const (
	RDFType     = RDF + "type"
	RDFValue    = RDF + "value"
	RDFSLabel   = RDFS + "label"
	RDFSComment = RDFS + "comment"
)

// Dublin Core terms.
const (
	DCTIdentifier = DCT + "identifier"
)

// FALDO classes and properties.
const (
	// FaldoExactPosition is a position known to the base.
	FaldoExactPosition = FALDO + "ExactPosition"

	// FaldoInBetweenPosition lies between two adjacent bases.
	FaldoInBetweenPosition = FALDO + "InBetweenPosition"

	// FaldoRegion spans from a begin to an end position.
	FaldoRegion = FALDO + "Region"

	FaldoLocation  = FALDO + "location"
	FaldoPosition  = FALDO + "position"
	FaldoReference = FALDO + "reference"
	FaldoBegin     = FALDO + "begin"
	FaldoEnd       = FALDO + "end"
	FaldoAfter     = FALDO + "after"
	FaldoBefore    = FALDO + "before"
)

// Genome variation classes and properties.
const (
	// GVOVariation is the type used when alleles are not classified.
	GVOVariation = GVO + "Variation"

	GVORef    = GVO + "ref"
	GVOAlt    = GVO + "alt"
	GVOQual   = GVO + "qual"
	GVOFilter = GVO + "filter"
	GVOInfo   = GVO + "info"
)

// GVOClass returns the class IRI for a mutation class name such as "SNV".
func GVOClass(name string) string {
	return GVO + name
}

// XSD datatypes used for typed literals.
const (
	XSDString  = XSD + "string"
	XSDBoolean = XSD + "boolean"
	XSDInteger = XSD + "integer"
	XSDDecimal = XSD + "decimal"
)
