package info

import (
	"errors"
	"fmt"
	"math"

	"github.com/inodb/vcf2rdf/internal/rdf"
	"github.com/inodb/vcf2rdf/internal/vocab"
)

// ErrMissingAlleleValue means a Number=R key has no value for the reference
// or the requested alternate allele. The input metadata is inconsistent and
// conversion must stop.
var ErrMissingAlleleValue = errors.New("missing per-allele annotation value")

// Comments attached to values whose meaning is not obvious from the value list.
const (
	CommentPerAllele   = "This field contains two values, the first is the value for the reference allele and the second is the value for the alternate allele."
	CommentPerGenotype = "The field has one value for each possible genotype."
)

// Rendered is the output of Render: literals in order plus an optional comment.
type Rendered struct {
	Literals []rdf.Literal
	Comment  string
}

// Render selects and formats values for the alternate allele at alleleIndex.
func Render(values []Value, c Cardinality, alleleIndex int, isFlag bool) (Rendered, error) {
	var r Rendered

	switch c.Kind {
	case Fixed:
		n := c.N
		if isFlag {
			n = 1
		}
		for i := 0; i < n && i < len(values); i++ {
			r.Literals = append(r.Literals, literal(values[i]))
		}
	case PerAlternateAllele:
		if alleleIndex >= 0 && alleleIndex < len(values) {
			r.Literals = append(r.Literals, literal(values[alleleIndex]))
		}
	case PerAllele:
		if len(values) == 0 || alleleIndex < 0 || alleleIndex+1 >= len(values) {
			return Rendered{}, fmt.Errorf("%w: allele index %d, %d values", ErrMissingAlleleValue, alleleIndex, len(values))
		}
		pair := values[0].Text() + "," + values[alleleIndex+1].Text()
		r.Literals = append(r.Literals, rdf.String(pair))
		r.Comment = CommentPerAllele
	default:
		for _, v := range values {
			r.Literals = append(r.Literals, literal(v))
		}
		if c.Kind == PerGenotype {
			r.Comment = CommentPerGenotype
		}
	}

	return r, nil
}

func literal(v Value) rdf.Literal {
	switch v.Kind {
	case KindFlag:
		return rdf.Boolean(v.Flag)
	case KindInteger:
		return rdf.Integer(int64(v.Int))
	case KindFloat:
		f := float64(v.Float)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return rdf.String(v.Text())
		}
		return rdf.Decimal(f, 32)
	default:
		return rdf.String(Decode(v.Str))
	}
}

// Node renders the field as an anonymous node with label, values and comment.
func (f Field) Node(alleleIndex int) (*rdf.Node, error) {
	r, err := Render(f.Values, f.Cardinality, alleleIndex, f.Type == KindFlag)
	if err != nil {
		return nil, fmt.Errorf("info %s: %w", f.Key, err)
	}

	objects := make([]rdf.Object, len(r.Literals))
	for i, l := range r.Literals {
		objects[i] = l
	}

	n := &rdf.Node{}
	n.Add(vocab.RDFSLabel, rdf.String(f.Key))
	n.Add(vocab.RDFValue, objects...)
	if r.Comment != "" {
		n.Add(vocab.RDFSComment, rdf.String(r.Comment))
	}
	return n, nil
}
