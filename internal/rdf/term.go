// Package rdf provides a small statement model and streaming RDF encoders.
package rdf

import (
	"math"
	"strconv"
	"strings"
)

// Object is the object of a property: an IRI, a Literal or a nested blank Node.
type Object interface {
	isObject()
}

// IRI is an absolute or base-relative IRI.
type IRI string

func (IRI) isObject() {}

// LiteralKind selects how a literal is serialized.
type LiteralKind int

const (
	KindString LiteralKind = iota
	KindBoolean
	KindInteger
	KindDecimal
)

// Literal is an RDF literal. Non-string kinds use the Turtle shorthand
// lexical forms and carry an explicit XSD datatype in N-Triples.
type Literal struct {
	Lexical string
	Kind    LiteralKind
}

func (Literal) isObject() {}

// String returns a plain string literal.
func String(s string) Literal {
	return Literal{Lexical: s, Kind: KindString}
}

// Boolean returns an xsd:boolean literal.
func Boolean(b bool) Literal {
	return Literal{Lexical: strconv.FormatBool(b), Kind: KindBoolean}
}

// Integer returns an xsd:integer literal.
func Integer(i int64) Literal {
	return Literal{Lexical: strconv.FormatInt(i, 10), Kind: KindInteger}
}

// Decimal returns an xsd:decimal literal for a finite float. bitSize is 32
// or 64 and controls the shortest round-trip representation.
// Non-finite values yield a string literal.
func Decimal(f float64, bitSize int) Literal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return String(strconv.FormatFloat(f, 'g', -1, bitSize))
	}
	return Literal{Lexical: FormatDecimal(f, bitSize), Kind: KindDecimal}
}

// FormatDecimal formats f without exponent and always with a fractional part.
func FormatDecimal(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Property is a predicate with its objects in output order.
type Property struct {
	Predicate IRI
	Objects   []Object
}

// Node is a set of properties. Used as an object it is an anonymous blank node.
type Node struct {
	Properties []Property
}

func (*Node) isObject() {}

// Add appends a property. Properties without objects are dropped so that no
// dangling predicate is ever written.
func (n *Node) Add(predicate IRI, objects ...Object) *Node {
	if len(objects) == 0 {
		return n
	}
	n.Properties = append(n.Properties, Property{Predicate: predicate, Objects: objects})
	return n
}

// Statement is a top-level subject with its properties.
type Statement struct {
	// Subject is empty for an anonymous blank node subject.
	Subject IRI
	Node
}
