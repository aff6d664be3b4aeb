package rdf

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/inodb/vcf2rdf/internal/vocab"
)

// NTriplesEncoder flattens statements into one triple per line.
// Nested nodes get blank node labels that are unique for the encoder's lifetime.
type NTriplesEncoder struct {
	w     *bufio.Writer
	base  *url.URL
	blank int
}

// NewNTriplesEncoder creates an N-Triples encoder. Relative IRIs are
// resolved against the namespace base when one is configured.
func NewNTriplesEncoder(w io.Writer, ns *Namespace) (*NTriplesEncoder, error) {
	e := &NTriplesEncoder{w: bufio.NewWriterSize(w, 64*1024)}
	if ns != nil && ns.Base != "" {
		u, err := url.Parse(ns.Base)
		if err != nil {
			return nil, fmt.Errorf("parse base iri: %w", err)
		}
		e.base = u
	}
	return e, nil
}

// Encode writes every triple of one statement.
func (e *NTriplesEncoder) Encode(st *Statement) error {
	var b strings.Builder
	b.Grow(2048)

	subject := ""
	if st.Subject == "" {
		subject = e.newBlank()
	} else {
		subject = e.iri(st.Subject)
	}
	e.node(&b, subject, &st.Node)

	if _, err := e.w.WriteString(b.String()); err != nil {
		return fmt.Errorf("write n-triples statement: %w", err)
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (e *NTriplesEncoder) Flush() error {
	return e.w.Flush()
}

func (e *NTriplesEncoder) node(b *strings.Builder, subject string, n *Node) {
	for _, p := range n.Properties {
		predicate := e.iri(p.Predicate)
		for _, o := range p.Objects {
			var child *Node
			var object string

			switch v := o.(type) {
			case IRI:
				object = e.iri(v)
			case Literal:
				object = typedLiteral(v)
			case *Node:
				object = e.newBlank()
				child = v
			}

			b.WriteString(subject)
			b.WriteString(" ")
			b.WriteString(predicate)
			b.WriteString(" ")
			b.WriteString(object)
			b.WriteString(" .\n")

			if child != nil {
				e.node(b, object, child)
			}
		}
	}
}

func (e *NTriplesEncoder) newBlank() string {
	e.blank++
	return fmt.Sprintf("_:b%d", e.blank)
}

func (e *NTriplesEncoder) iri(v IRI) string {
	s := EscapeIRI(string(v))
	if e.base != nil {
		if u, err := url.Parse(s); err == nil && !u.IsAbs() {
			s = e.base.ResolveReference(u).String()
		}
	}
	return "<" + s + ">"
}

func typedLiteral(l Literal) string {
	switch l.Kind {
	case KindBoolean:
		return quoteLiteral(l.Lexical) + "^^<" + vocab.XSDBoolean + ">"
	case KindInteger:
		return quoteLiteral(l.Lexical) + "^^<" + vocab.XSDInteger + ">"
	case KindDecimal:
		return quoteLiteral(l.Lexical) + "^^<" + vocab.XSDDecimal + ">"
	default:
		return quoteLiteral(l.Lexical)
	}
}
