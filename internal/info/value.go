// Package info renders per-record annotation (INFO) values according to
// their declared cardinality.
package info

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the primitive type of an annotation value.
type Kind int

const (
	KindFlag Kind = iota
	KindInteger
	KindFloat
	KindString
)

// ParseKind parses a VCF header Type field.
// Character and unknown types are read as strings.
func ParseKind(s string) Kind {
	switch s {
	case "Flag":
		return KindFlag
	case "Integer":
		return KindInteger
	case "Float":
		return KindFloat
	default:
		return KindString
	}
}

// String returns the VCF header name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "Flag"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	default:
		return "String"
	}
}

// Value is a single typed annotation value. Only the field matching Kind is set.
type Value struct {
	Kind  Kind
	Flag  bool
	Int   int32
	Float float32
	Str   string
}

// Flag returns a flag value.
func Flag(b bool) Value { return Value{Kind: KindFlag, Flag: b} }

// Integer returns an integer value.
func Integer(i int32) Value { return Value{Kind: KindInteger, Int: i} }

// Float returns a float value.
func Float(f float32) Value { return Value{Kind: KindFloat, Float: f} }

// String returns a string value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// ParseValue parses one raw token as kind. Tokens that do not parse as the
// declared numeric type are kept as strings so that positional indexing is
// preserved. This covers the missing marker "." and integers outside int32.
func ParseValue(kind Kind, token string) Value {
	switch kind {
	case KindFlag:
		return Flag(true)
	case KindInteger:
		if i, err := strconv.ParseInt(token, 10, 32); err == nil {
			return Integer(int32(i))
		}
	case KindFloat:
		if f, err := strconv.ParseFloat(token, 32); err == nil {
			return Float(float32(f))
		}
	}
	return String(token)
}

// Text returns the display form of the value. Strings are percent-decoded.
func (v Value) Text() string {
	switch v.Kind {
	case KindFlag:
		return strconv.FormatBool(v.Flag)
	case KindInteger:
		return strconv.FormatInt(int64(v.Int), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.Float), 'f', -1, 32)
	default:
		return Decode(v.Str)
	}
}

// CardinalityKind says how many values a key carries relative to alleles.
type CardinalityKind int

const (
	Fixed CardinalityKind = iota
	PerAlternateAllele
	PerAllele
	PerGenotype
	Other
)

// Cardinality is a VCF header Number. N is only meaningful for Fixed.
type Cardinality struct {
	Kind CardinalityKind
	N    int
}

// ParseCardinality parses a VCF header Number field.
func ParseCardinality(number string) Cardinality {
	switch number {
	case "A":
		return Cardinality{Kind: PerAlternateAllele}
	case "R":
		return Cardinality{Kind: PerAllele}
	case "G":
		return Cardinality{Kind: PerGenotype}
	}
	if n, err := strconv.Atoi(number); err == nil && n >= 0 {
		return Cardinality{Kind: Fixed, N: n}
	}
	return Cardinality{Kind: Other}
}

// String returns the VCF header form.
func (c Cardinality) String() string {
	switch c.Kind {
	case Fixed:
		return strconv.Itoa(c.N)
	case PerAlternateAllele:
		return "A"
	case PerAllele:
		return "R"
	case PerGenotype:
		return "G"
	default:
		return "."
	}
}

var percentDecoder = strings.NewReplacer(
	"%3A", ":", "%3a", ":",
	"%3B", ";", "%3b", ";",
	"%3D", "=", "%3d", "=",
	"%25", "%",
	"%2C", ",", "%2c", ",",
	"%0D", "\r", "%0d", "\r",
	"%0A", "\n", "%0a", "\n",
	"%09", "\t",
)

// Decode replaces the percent-encoded characters that VCF reserves in INFO
// values. Other percent sequences are left untouched.
func Decode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	return percentDecoder.Replace(s)
}

// Field is one annotation key with its typed values for a record.
type Field struct {
	Key         string
	Type        Kind
	Cardinality Cardinality
	Values      []Value
}

// GoString is used in log output.
func (f Field) GoString() string {
	return fmt.Sprintf("%s[%s,%s]=%d values", f.Key, f.Type, f.Cardinality, len(f.Values))
}
