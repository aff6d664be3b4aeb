// Package alteration reduces REF/ALT allele pairs to their canonical form.
package alteration

import (
	"errors"
	"fmt"
)

// ErrInvalidRefAlt is returned when both reference and alternate are empty
// after the shared prefix has been removed.
var ErrInvalidRefAlt = errors.New("both reference and alternate must not be empty")

// MutationClass classifies a normalized allele pair.
type MutationClass int

const (
	SNV MutationClass = iota
	Insertion
	Deletion
	MNV
	Indel
)

// String returns the class name as used for the gvo type IRI.
func (c MutationClass) String() string {
	switch c {
	case SNV:
		return "SNV"
	case Insertion:
		return "Insertion"
	case Deletion:
		return "Deletion"
	case MNV:
		return "MNV"
	case Indel:
		return "Indel"
	default:
		return fmt.Sprintf("MutationClass(%d)", int(c))
	}
}

// Normalized is the canonical representation of one REF/ALT pair.
type Normalized struct {
	Position  int64 // 1-based position of the first base after the shared prefix
	Reference string
	Alternate string
	Class     MutationClass
}

// Span returns the 1-based begin and end of the alteration.
//
// Insertions are anchored between the base preceding the trimmed point and
// the next base, so begin is Position-1. SNVs have begin == end.
func (n Normalized) Span() (begin, end int64) {
	switch n.Class {
	case SNV:
		return n.Position, n.Position
	case Insertion:
		return n.Position - 1, n.Position
	default:
		return n.Position, n.Position + int64(len(n.Reference)) - 1
	}
}

// Normalize removes the longest common prefix of reference and alternate,
// advances pos by its length and classifies the remainder.
// A literal "." on either side is read as the empty string.
func Normalize(pos int64, reference, alternate string) (Normalized, error) {
	if reference == "." {
		reference = ""
	}
	if alternate == "." {
		alternate = ""
	}

	n := sharedPrefixLen(reference, alternate)
	reference, alternate = reference[n:], alternate[n:]

	v := Normalized{
		Position:  pos + int64(n),
		Reference: reference,
		Alternate: alternate,
	}

	r, a := len(reference), len(alternate)
	switch {
	case r == 0 && a == 0:
		return Normalized{}, ErrInvalidRefAlt
	case r == 1 && a == 1:
		v.Class = SNV
	case r == 0:
		v.Class = Insertion
	case a == 0:
		v.Class = Deletion
	case r == a:
		v.Class = MNV
	default:
		v.Class = Indel
	}

	return v, nil
}

// sharedPrefixLen returns the byte length of the longest common prefix.
// Comparison is rune-wise so a multi-byte character is never split.
func sharedPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] != rb[i] {
			break
		}
		n += len(string(ra[i]))
	}
	return n
}
