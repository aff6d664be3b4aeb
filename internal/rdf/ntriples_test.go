package rdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNTriplesEncoder_Statement(t *testing.T) {
	var buf bytes.Buffer
	e, err := NewNTriplesEncoder(&buf, DefaultNamespace())
	require.NoError(t, err)

	require.NoError(t, e.Encode(sampleStatement()))
	require.NoError(t, e.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		`<rs1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://genome-variation.org/resource#SNV> .`,
		`<rs1> <http://purl.org/dc/terms/identifier> "rs1" .`,
		`<rs1> <http://biohackathon.org/resource/faldo#location> _:b1 .`,
		`_:b1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://biohackathon.org/resource/faldo#ExactPosition> .`,
		`_:b1 <http://biohackathon.org/resource/faldo#position> "100"^^<http://www.w3.org/2001/XMLSchema#integer> .`,
		`_:b1 <http://biohackathon.org/resource/faldo#reference> <http://identifiers.org/hco/1/GRCh38> .`,
		`<rs1> <http://genome-variation.org/resource#ref> "T" .`,
		`<rs1> <http://genome-variation.org/resource#alt> "C" .`,
		`<rs1> <http://genome-variation.org/resource#qual> "50.0"^^<http://www.w3.org/2001/XMLSchema#decimal> .`,
		`<rs1> <http://genome-variation.org/resource#filter> "PASS" .`,
		`<rs1> <http://genome-variation.org/resource#filter> "q10" .`,
		`<rs1> <http://genome-variation.org/resource#info> _:b2 .`,
		`_:b2 <http://www.w3.org/2000/01/rdf-schema#label> "AF" .`,
		`_:b2 <http://www.w3.org/1999/02/22-rdf-syntax-ns#value> "0.5"^^<http://www.w3.org/2001/XMLSchema#decimal> .`,
		`<rs1> <http://genome-variation.org/resource#info> _:b3 .`,
		`_:b3 <http://www.w3.org/2000/01/rdf-schema#label> "DB" .`,
		`_:b3 <http://www.w3.org/1999/02/22-rdf-syntax-ns#value> "true"^^<http://www.w3.org/2001/XMLSchema#boolean> .`,
	}
	assert.Equal(t, want, lines)
}

func TestNTriplesEncoder_BlankSubjectsAreUnique(t *testing.T) {
	var buf bytes.Buffer
	e, err := NewNTriplesEncoder(&buf, nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		st := &Statement{}
		st.Add("http://example.org/p", String("x"))
		require.NoError(t, e.Encode(st))
	}
	require.NoError(t, e.Flush())

	assert.Equal(t,
		"_:b1 <http://example.org/p> \"x\" .\n_:b2 <http://example.org/p> \"x\" .\n",
		buf.String())
}

func TestNTriplesEncoder_ResolvesAgainstBase(t *testing.T) {
	ns := DefaultNamespace()
	ns.Base = "http://example.org/variant/"

	var buf bytes.Buffer
	e, err := NewNTriplesEncoder(&buf, ns)
	require.NoError(t, err)

	st := &Statement{Subject: "rs123"}
	st.Add("http://example.org/p", IRI("http://other.org/abs"))
	require.NoError(t, e.Encode(st))
	require.NoError(t, e.Flush())

	assert.Equal(t, "<http://example.org/variant/rs123> <http://example.org/p> <http://other.org/abs> .\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"turtle", "TTL", "Turtle"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, FormatTurtle, f)
	}
	for _, s := range []string{"n-triples", "NT", "ntriples"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, FormatNTriples, f)
	}

	_, err := ParseFormat("rdfxml")
	assert.Error(t, err)
}

func TestNewEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, FormatTurtle, DefaultNamespace())
	require.NoError(t, err)
	assert.IsType(t, &TurtleEncoder{}, enc)

	enc, err = NewEncoder(&buf, FormatNTriples, DefaultNamespace())
	require.NoError(t, err)
	assert.IsType(t, &NTriplesEncoder{}, enc)
}
