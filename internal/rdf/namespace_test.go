package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace_Compact(t *testing.T) {
	ns := DefaultNamespace()

	tests := []struct {
		iri  string
		want string
		ok   bool
	}{
		{"http://biohackathon.org/resource/faldo#ExactPosition", "faldo:ExactPosition", true},
		{"http://genome-variation.org/resource#SNV", "gvo:SNV", true},
		{"http://identifiers.org/hco/1", "hco:1", true},
		{"http://identifiers.org/hco/1/GRCh38", "", false},
		{"http://example.org/unknown", "", false},
		{"http://genome-variation.org/resource#", "", false},
	}

	for _, tt := range tests {
		got, ok := ns.Compact(tt.iri)
		assert.Equal(t, tt.ok, ok, tt.iri)
		assert.Equal(t, tt.want, got, tt.iri)
	}
}

func TestNamespace_CompactPrefersLongestNamespace(t *testing.T) {
	ns := &Namespace{}
	ns.Set("ex", "http://example.org/")
	ns.Set("exv", "http://example.org/variant/")

	got, ok := ns.Compact("http://example.org/variant/x1")
	assert.True(t, ok)
	assert.Equal(t, "exv:x1", got)
}

func TestNamespace_MergeOverrides(t *testing.T) {
	ns := DefaultNamespace()
	ns.Merge(map[string]string{"gvo": "http://example.org/gvo#", "ex": "http://example.org/"})

	iri, ok := ns.Lookup("gvo")
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/gvo#", iri)

	names := []string{}
	for _, p := range ns.Prefixes() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"dct", "ex", "faldo", "gvo", "hco", "obo", "rdf", "rdfs", "sio"}, names)
}

func TestIsLocalName(t *testing.T) {
	assert.True(t, isLocalName("SNV"))
	assert.True(t, isLocalName("a.b-c_1"))
	assert.False(t, isLocalName(""))
	assert.False(t, isLocalName("-a"))
	assert.False(t, isLocalName("a."))
	assert.False(t, isLocalName("a/b"))
	assert.False(t, isLocalName("a#b"))
}
