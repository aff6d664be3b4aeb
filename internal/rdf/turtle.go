package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vcf2rdf/internal/vocab"
)

const indentStep = "  "

// TurtleEncoder writes statements as Turtle blocks separated by blank lines.
// The namespace preamble is written once, before the first statement.
type TurtleEncoder struct {
	w             *bufio.Writer
	ns            *Namespace
	headerWritten bool
}

// NewTurtleEncoder creates a Turtle encoder. ns may be nil, in which case
// all IRIs are written in full and no preamble is emitted.
func NewTurtleEncoder(w io.Writer, ns *Namespace) *TurtleEncoder {
	return &TurtleEncoder{
		w:  bufio.NewWriterSize(w, 64*1024),
		ns: ns,
	}
}

// HeaderWritten reports whether the preamble has been emitted.
func (e *TurtleEncoder) HeaderWritten() bool {
	return e.headerWritten
}

// Encode writes one statement.
func (e *TurtleEncoder) Encode(st *Statement) error {
	if !e.headerWritten {
		if _, err := e.w.WriteString(e.header()); err != nil {
			return fmt.Errorf("write turtle header: %w", err)
		}
		e.headerWritten = true
	}

	if _, err := e.w.WriteString(e.statement(st)); err != nil {
		return fmt.Errorf("write turtle statement: %w", err)
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (e *TurtleEncoder) Flush() error {
	return e.w.Flush()
}

// header renders @base and @prefix lines with prefix names right-aligned
// to the longest one.
func (e *TurtleEncoder) header() string {
	if e.ns == nil {
		return ""
	}

	prefixes := e.ns.Prefixes()
	width := 0
	for _, p := range prefixes {
		if len(p.Name) > width {
			width = len(p.Name)
		}
	}

	var b strings.Builder
	if e.ns.Base != "" {
		fmt.Fprintf(&b, "@base %*s%s .\n", width+4, "", bracketIRI(e.ns.Base))
	}
	for _, p := range prefixes {
		fmt.Fprintf(&b, "@prefix %*s: %s .\n", width, p.Name, bracketIRI(p.IRI))
	}
	b.WriteString("\n")
	return b.String()
}

func (e *TurtleEncoder) statement(st *Statement) string {
	var b strings.Builder
	b.Grow(1024)

	if st.Subject == "" {
		b.WriteString("[]")
	} else {
		b.WriteString(bracketIRI(string(st.Subject)))
	}

	for i, p := range st.Properties {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(" ;\n")
			b.WriteString(indentStep)
		}
		e.property(&b, p, indentStep)
	}

	b.WriteString(" .\n\n")
	return b.String()
}

func (e *TurtleEncoder) property(b *strings.Builder, p Property, indent string) {
	if p.Predicate == vocab.RDFType {
		b.WriteString("a")
	} else {
		b.WriteString(e.iri(p.Predicate))
	}
	b.WriteString(" ")

	for i, o := range p.Objects {
		if i != 0 {
			b.WriteString(", ")
		}
		e.object(b, o, indent)
	}
}

func (e *TurtleEncoder) object(b *strings.Builder, o Object, indent string) {
	switch v := o.(type) {
	case IRI:
		b.WriteString(e.iri(v))
	case Literal:
		if v.Kind == KindString {
			b.WriteString(quoteLiteral(v.Lexical))
		} else {
			b.WriteString(v.Lexical)
		}
	case *Node:
		if len(v.Properties) == 0 {
			b.WriteString("[]")
			return
		}
		inner := indent + indentStep
		b.WriteString("[")
		for i, p := range v.Properties {
			if i != 0 {
				b.WriteString(" ;")
			}
			b.WriteString("\n")
			b.WriteString(inner)
			e.property(b, p, inner)
		}
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString("]")
	}
}

func (e *TurtleEncoder) iri(v IRI) string {
	if e.ns != nil {
		if s, ok := e.ns.Compact(string(v)); ok {
			return s
		}
	}
	return bracketIRI(string(v))
}
