package rdf

import (
	"fmt"
	"io"
	"strings"
)

// Encoder writes statements to an output stream. All writes are appends;
// callers must call Flush once after the last statement.
type Encoder interface {
	Encode(st *Statement) error
	Flush() error
}

// Format is an output serialization.
type Format int

const (
	FormatTurtle Format = iota
	FormatNTriples
)

// FormatNames lists the accepted format names.
var FormatNames = []string{"turtle", "n-triples"}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "n-triples", "ntriples", "nt":
		return FormatNTriples, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (expected one of %s)", s, strings.Join(FormatNames, ", "))
	}
}

// String returns the canonical format name.
func (f Format) String() string {
	if f == FormatNTriples {
		return "n-triples"
	}
	return "turtle"
}

// NewEncoder creates an encoder for the given format.
func NewEncoder(w io.Writer, f Format, ns *Namespace) (Encoder, error) {
	switch f {
	case FormatTurtle:
		return NewTurtleEncoder(w, ns), nil
	case FormatNTriples:
		return NewNTriplesEncoder(w, ns)
	default:
		return nil, fmt.Errorf("unsupported format %d", int(f))
	}
}
