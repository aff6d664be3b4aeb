package rdf

import (
	"sort"
	"strings"

	"github.com/inodb/vcf2rdf/internal/vocab"
)

// Prefix binds a prefix name to a namespace IRI.
type Prefix struct {
	Name string
	IRI  string
}

// Namespace is the prefix table written in the document preamble.
// It is built once before conversion and only read afterwards.
type Namespace struct {
	Base     string
	prefixes map[string]string
}

// DefaultNamespace returns the built-in prefix table.
func DefaultNamespace() *Namespace {
	return &Namespace{
		prefixes: map[string]string{
			"dct":   vocab.DCT,
			"faldo": vocab.FALDO,
			"gvo":   vocab.GVO,
			"hco":   vocab.HCO,
			"obo":   vocab.OBO,
			"rdf":   vocab.RDF,
			"rdfs":  vocab.RDFS,
			"sio":   vocab.SIO,
		},
	}
}

// Set adds or replaces a prefix.
func (ns *Namespace) Set(name, iri string) {
	if ns.prefixes == nil {
		ns.prefixes = make(map[string]string)
	}
	ns.prefixes[name] = iri
}

// Merge adds every prefix in m, replacing existing ones.
func (ns *Namespace) Merge(m map[string]string) {
	for k, v := range m {
		ns.Set(k, v)
	}
}

// Lookup returns the namespace IRI bound to name.
func (ns *Namespace) Lookup(name string) (string, bool) {
	iri, ok := ns.prefixes[name]
	return iri, ok
}

// Prefixes returns all prefixes ordered by name.
func (ns *Namespace) Prefixes() []Prefix {
	out := make([]Prefix, 0, len(ns.prefixes))
	for k, v := range ns.prefixes {
		out = append(out, Prefix{Name: k, IRI: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Compact returns iri as a prefixed name when a namespace covers it and the
// remainder is a valid local name. The longest namespace IRI wins; ties are
// broken by prefix name.
func (ns *Namespace) Compact(iri string) (string, bool) {
	best := ""
	bestNS := ""
	for name, nsIRI := range ns.prefixes {
		if nsIRI == "" || !strings.HasPrefix(iri, nsIRI) {
			continue
		}
		if !isLocalName(iri[len(nsIRI):]) {
			continue
		}
		if len(nsIRI) > len(bestNS) || (len(nsIRI) == len(bestNS) && name < best) {
			best, bestNS = name, nsIRI
		}
	}
	if bestNS == "" {
		return "", false
	}
	return best + ":" + iri[len(bestNS):], true
}

// isLocalName reports whether s can be written unescaped after a prefix.
// This is a conservative subset of PN_LOCAL.
func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		case c == '-' || c == '.':
			if i == 0 || (c == '.' && i == len(s)-1) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
