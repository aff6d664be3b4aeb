// Package faldo maps normalized alterations to FALDO location descriptions.
package faldo

import (
	"github.com/inodb/vcf2rdf/internal/alteration"
	"github.com/inodb/vcf2rdf/internal/rdf"
	"github.com/inodb/vcf2rdf/internal/vocab"
)

// Location is a FALDO position or region.
type Location interface {
	// Node renders the location as an anonymous RDF node.
	Node() *rdf.Node
}

// ExactPosition is a single base.
type ExactPosition struct {
	Position  int64
	Reference string
}

// InBetweenPosition lies between the bases After and Before.
type InBetweenPosition struct {
	After     int64
	Before    int64
	Reference string
}

// Bound is a region end: either an ExactBound or an InBetweenPosition.
type Bound interface {
	object() rdf.Object
}

// ExactBound is a region end given as a plain base position.
type ExactBound int64

// Region spans from Begin to End.
type Region struct {
	Begin     Bound
	End       Bound
	Reference string
}

// Encode returns the location of v on the sequence identified by reference.
// ok is false when reference is empty: the location cannot be anchored and
// the allele must not be written.
func Encode(v alteration.Normalized, reference string) (loc Location, ok bool) {
	if reference == "" {
		return nil, false
	}

	begin, end := v.Span()

	switch v.Class {
	case alteration.SNV:
		return ExactPosition{Position: begin, Reference: reference}, true
	case alteration.Insertion:
		return InBetweenPosition{After: begin, Before: end, Reference: reference}, true
	case alteration.MNV:
		return Region{
			Begin:     ExactBound(begin),
			End:       ExactBound(end),
			Reference: reference,
		}, true
	default:
		// Deletion and Indel: the bounds sit just outside the changed span
		// and carry the sequence reference themselves.
		return Region{
			Begin: InBetweenPosition{After: begin - 1, Before: begin, Reference: reference},
			End:   InBetweenPosition{After: end, Before: end + 1, Reference: reference},
		}, true
	}
}

// Node implements Location.
func (p ExactPosition) Node() *rdf.Node {
	n := &rdf.Node{}
	n.Add(vocab.RDFType, rdf.IRI(vocab.FaldoExactPosition))
	n.Add(vocab.FaldoPosition, rdf.Integer(p.Position))
	addReference(n, p.Reference)
	return n
}

// Node implements Location.
func (p InBetweenPosition) Node() *rdf.Node {
	n := &rdf.Node{}
	n.Add(vocab.RDFType, rdf.IRI(vocab.FaldoInBetweenPosition))
	n.Add(vocab.FaldoAfter, rdf.Integer(p.After))
	n.Add(vocab.FaldoBefore, rdf.Integer(p.Before))
	addReference(n, p.Reference)
	return n
}

func (p InBetweenPosition) object() rdf.Object { return p.Node() }

func (b ExactBound) object() rdf.Object { return rdf.Integer(int64(b)) }

// Node implements Location.
func (r Region) Node() *rdf.Node {
	n := &rdf.Node{}
	n.Add(vocab.RDFType, rdf.IRI(vocab.FaldoRegion))
	n.Add(vocab.FaldoBegin, r.Begin.object())
	n.Add(vocab.FaldoEnd, r.End.object())
	addReference(n, r.Reference)
	return n
}

func addReference(n *rdf.Node, reference string) {
	if reference != "" {
		n.Add(vocab.FaldoReference, rdf.IRI(reference))
	}
}
