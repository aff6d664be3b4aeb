package convert

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/inodb/vcf2rdf/internal/alteration"
	"github.com/inodb/vcf2rdf/internal/config"
	"github.com/inodb/vcf2rdf/internal/info"
	"github.com/inodb/vcf2rdf/internal/rdf"
	"github.com/inodb/vcf2rdf/internal/vcf"
	"github.com/inodb/vcf2rdf/internal/vocab"
)

const header = "##fileformat=VCFv4.2\n" +
	"##FILTER=<ID=PASS,Description=\"All filters passed\">\n" +
	"##INFO=<ID=DP,Number=1,Type=Integer,Description=\"Depth\">\n" +
	"##INFO=<ID=AF,Number=A,Type=Float,Description=\"Allele frequency\">\n" +
	"##INFO=<ID=AD,Number=R,Type=Integer,Description=\"Allelic depths\">\n" +
	"##INFO=<ID=DB,Number=0,Type=Flag,Description=\"dbSNP\">\n" +
	"##INFO=<ID=NOTE,Number=1,Type=String,Description=\"Note\">\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n"

const sequences = `
reference:
  "1":
    name: chr1
    reference: http://identifiers.org/hco/1/GRCh38
  "2":
    name: chr2
`

const grch38 = "http://identifiers.org/hco/1/GRCh38"

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse(strings.NewReader(sequences))
	require.NoError(t, err)
	return cfg
}

func parser(t *testing.T, lines ...string) *vcf.Parser {
	t.Helper()
	body := header
	for _, l := range lines {
		body += strings.ReplaceAll(l, " ", "\t") + "\n"
	}
	p, err := vcf.NewParserFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return p
}

func records(t *testing.T, lines ...string) []*vcf.Record {
	t.Helper()
	p := parser(t, lines...)
	var out []*vcf.Record
	for {
		r, err := p.Next()
		require.NoError(t, err)
		if r == nil {
			return out
		}
		out = append(out, r)
	}
}

func objects(st *rdf.Statement, predicate string) []rdf.Object {
	for _, p := range st.Properties {
		if string(p.Predicate) == predicate {
			return p.Objects
		}
	}
	return nil
}

func TestConvertAll_Turtle(t *testing.T) {
	opts := DefaultOptions()
	opts.InfoKeys = []string{"DP", "AF", "NOTE"}
	c := New(loadConfig(t), opts)

	var buf bytes.Buffer
	enc := rdf.NewTurtleEncoder(&buf, rdf.DefaultNamespace())
	require.NoError(t, c.ConvertAll(parser(t, "1 1000 rs1 T C 50 PASS DP=14;AF=0.5;AD=7,7;DB;NOTE=A%3BB"), enc))

	want := "" +
		"@prefix   dct: <http://purl.org/dc/terms/> .\n" +
		"@prefix faldo: <http://biohackathon.org/resource/faldo#> .\n" +
		"@prefix   gvo: <http://genome-variation.org/resource#> .\n" +
		"@prefix   hco: <http://identifiers.org/hco/> .\n" +
		"@prefix   obo: <http://purl.obolibrary.org/obo/> .\n" +
		"@prefix   rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .\n" +
		"@prefix  rdfs: <http://www.w3.org/2000/01/rdf-schema#> .\n" +
		"@prefix   sio: <http://semanticscience.org/resource/> .\n" +
		"\n" +
		"[] a gvo:SNV ;\n" +
		"  dct:identifier \"rs1\" ;\n" +
		"  faldo:location [\n" +
		"    a faldo:ExactPosition ;\n" +
		"    faldo:position 1000 ;\n" +
		"    faldo:reference <" + grch38 + ">\n" +
		"  ] ;\n" +
		"  gvo:ref \"T\" ;\n" +
		"  gvo:alt \"C\" ;\n" +
		"  gvo:qual 50.0 ;\n" +
		"  gvo:filter \"PASS\" ;\n" +
		"  gvo:info [\n" +
		"    rdfs:label \"DP\" ;\n" +
		"    rdf:value 14\n" +
		"  ], [\n" +
		"    rdfs:label \"AF\" ;\n" +
		"    rdf:value 0.5\n" +
		"  ], [\n" +
		"    rdfs:label \"NOTE\" ;\n" +
		"    rdf:value \"A;B\"\n" +
		"  ] .\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestConvert_MultiAllelic(t *testing.T) {
	opts := DefaultOptions()
	opts.InfoKeys = []string{"AF", "AD"}
	c := New(loadConfig(t), opts)

	statements, err := c.Convert(records(t, "1 2000 . C CACA,CACG . . AF=0.25,0.75;AD=3,1,2")[0])
	require.NoError(t, err)
	require.Len(t, statements, 2)

	for i, alt := range []string{"ACA", "ACG"} {
		st := statements[i]
		assert.Equal(t, []rdf.Object{rdf.IRI(vocab.GVOClass("Insertion"))}, objects(st, vocab.RDFType))
		assert.Equal(t, []rdf.Object{rdf.String("")}, objects(st, vocab.GVORef))
		assert.Equal(t, []rdf.Object{rdf.String(alt)}, objects(st, vocab.GVOAlt))
		assert.Nil(t, objects(st, vocab.GVOQual))
		assert.Nil(t, objects(st, vocab.GVOFilter))
		assert.Nil(t, objects(st, vocab.DCTIdentifier))

		loc := objects(st, vocab.FaldoLocation)
		require.Len(t, loc, 1)
		assert.Equal(t, faldoInBetween(2000, 2001), loc[0])
	}

	af := objects(statements[1], vocab.GVOInfo)
	require.Len(t, af, 2)
	assert.Equal(t, []rdf.Object{rdf.Literal{Lexical: "0.75", Kind: rdf.KindDecimal}}, af[0].(*rdf.Node).Properties[1].Objects)
	assert.Equal(t, []rdf.Object{rdf.String("3,2")}, af[1].(*rdf.Node).Properties[1].Objects)

	stats := c.Stats()
	assert.Equal(t, 1, stats.Records)
	assert.Equal(t, 2, stats.Alleles)
	assert.Equal(t, 2, stats.Statements)
	assert.Equal(t, 2, stats.Classes[alteration.Insertion])
}

func faldoInBetween(after, before int64) *rdf.Node {
	n := &rdf.Node{}
	n.Add(vocab.RDFType, rdf.IRI(vocab.FaldoInBetweenPosition))
	n.Add(vocab.FaldoAfter, rdf.Integer(after))
	n.Add(vocab.FaldoBefore, rdf.Integer(before))
	n.Add(vocab.FaldoReference, rdf.IRI(grch38))
	return n
}

func TestConvert_Subject(t *testing.T) {
	tests := []struct {
		subject Subject
		line    string
		want    rdf.IRI
	}{
		{SubjectNone, "1 1000 rs1 AT AC . . .", ""},
		{SubjectID, "1 1000 rs1 AT AC . . .", "rs1"},
		{SubjectID, "1 1000 . AT AC . . .", ""},
		{SubjectLocation, "1 1000 rs1 AT AC . . .", "chr1-1000-AT-AC"},
		{SubjectReference, "1 1000 rs1 AT AC . . .", grch38 + "#1000-AT-AC"},
		{SubjectNormalizedLocation, "1 1000 rs1 AT AC . . .", "chr1-1001-T-C"},
		{SubjectNormalizedReference, "1 1000 rs1 AT AC . . .", grch38 + "#1001-T-C"},
	}

	for _, tt := range tests {
		t.Run(tt.subject.String(), func(t *testing.T) {
			c := New(loadConfig(t), Options{Subject: tt.subject, Classify: true})
			statements, err := c.Convert(records(t, tt.line)[0])
			require.NoError(t, err)
			require.Len(t, statements, 1)
			assert.Equal(t, tt.want, statements[0].Subject)
		})
	}
}

func TestParseSubject(t *testing.T) {
	for i, name := range SubjectNames() {
		s, err := ParseSubject(name)
		require.NoError(t, err)
		assert.Equal(t, Subject(i), s)
		assert.Equal(t, name, s.String())
	}

	s, err := ParseSubject("ID")
	require.NoError(t, err)
	assert.Equal(t, SubjectID, s)

	s, err = ParseSubject("")
	require.NoError(t, err)
	assert.Equal(t, SubjectNone, s)

	_, err = ParseSubject("hash")
	assert.ErrorContains(t, err, "unknown subject")
}

func TestConvert_SkipsInvalidBases(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := New(loadConfig(t), DefaultOptions())
	c.SetLogger(zap.New(core))

	for _, r := range records(t,
		"1 10 . a g . . .",
		"1 11 . A X . . .",
		"1 12 . N- A . . .",
		"1 13 . A . . . .",
		"1 14 . A A,G . . .",
	) {
		statements, err := c.Convert(r)
		require.NoError(t, err)
		if r.Pos == 14 {
			require.Len(t, statements, 1)
			assert.Equal(t, []rdf.Object{rdf.String("G")}, objects(statements[0], vocab.GVOAlt))
			continue
		}
		assert.Empty(t, statements, r.Pos)
	}

	stats := c.Stats()
	assert.Equal(t, 2, stats.Skipped[SkipInvalidReference])
	assert.Equal(t, 1, stats.Skipped[SkipInvalidAlternate])
	assert.Equal(t, 1, stats.Skipped[SkipEmptyAlternate])
	assert.Equal(t, 1, stats.Skipped[SkipUnnormalizable])
	assert.Equal(t, 5, stats.TotalSkipped())

	skips := logs.FilterMessage("skipping allele")
	assert.Equal(t, 5, skips.Len())
	first := skips.All()[0].ContextMap()
	assert.Equal(t, "1", first["chrom"])
	assert.Equal(t, int64(10), first["pos"])
	assert.Equal(t, string(SkipInvalidReference), first["reason"])
}

func TestConvert_MissingSequenceReference(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := New(loadConfig(t), DefaultOptions())
	c.SetLogger(zap.New(core))

	for _, r := range records(t, "2 10 . A G . . .", "2 20 . C T . . .", "3 5 . G A . . .") {
		statements, err := c.Convert(r)
		require.NoError(t, err)
		assert.Empty(t, statements)
	}

	assert.Equal(t, 3, c.Stats().Skipped[SkipMissingReference])
	assert.Equal(t, 2, logs.FilterMessage("no sequence reference, skipping records on chromosome").Len())
}

func TestConvert_MissingPerAlleleValue(t *testing.T) {
	opts := DefaultOptions()
	opts.InfoKeys = []string{"AD"}
	c := New(loadConfig(t), opts)

	_, err := c.Convert(records(t, "1 10 . A G,T . . AD=5,1")[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, info.ErrMissingAlleleValue))
	assert.Contains(t, err.Error(), "1:10")

	var buf bytes.Buffer
	err = New(loadConfig(t), opts).ConvertAll(parser(t, "1 10 . A G,T . . AD=5,1"), rdf.NewTurtleEncoder(&buf, rdf.DefaultNamespace()))
	assert.ErrorIs(t, err, info.ErrMissingAlleleValue)
}

func TestConvert_NoClassify(t *testing.T) {
	c := New(loadConfig(t), Options{})

	statements, err := c.Convert(records(t, "1 10 . AC GT . . .")[0])
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, []rdf.Object{rdf.IRI(vocab.GVOVariation)}, objects(statements[0], vocab.RDFType))
}

func TestConvert_OmitsEmptyInfo(t *testing.T) {
	opts := DefaultOptions()
	opts.InfoKeys = []string{"DP"}
	c := New(loadConfig(t), opts)

	statements, err := c.Convert(records(t, "1 10 . A G . . .")[0])
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Nil(t, objects(statements[0], vocab.GVOInfo))
}

func TestConvert_FlagAlwaysRendered(t *testing.T) {
	opts := DefaultOptions()
	opts.InfoKeys = []string{"DB"}
	c := New(loadConfig(t), opts)

	statements, err := c.Convert(records(t, "1 10 . A G . . .")[0])
	require.NoError(t, err)
	nodes := objects(statements[0], vocab.GVOInfo)
	require.Len(t, nodes, 1)
	assert.Equal(t, []rdf.Object{rdf.Boolean(false)}, nodes[0].(*rdf.Node).Properties[1].Objects)
}

func TestConvertAll_Deterministic(t *testing.T) {
	lines := []string{
		"1 1000 rs1 T C 50 PASS DP=14;AF=0.5;AD=7,7;DB",
		"1 2000 . C CACA,CACG . . AF=0.25,0.75",
		"1 3000 rs3 ACGT ACATA 12.5 . DP=3",
		"2 10 . A G . . .",
	}
	cfg := loadConfig(t)
	ns := cfg.Namespace()
	ns.Set("ex", "http://example.org/")

	run := func() string {
		opts := DefaultOptions()
		opts.InfoKeys = []string{"DP", "AF", "AD", "DB"}
		var buf bytes.Buffer
		require.NoError(t, New(cfg, opts).ConvertAll(parser(t, lines...), rdf.NewTurtleEncoder(&buf, ns)))
		return buf.String()
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Equal(t, 4, strings.Count(first, " .\n\n"))
}

func TestConvertAll_Rehearsal(t *testing.T) {
	opts := DefaultOptions()
	opts.Rehearsal = true
	c := New(loadConfig(t), opts)

	var buf bytes.Buffer
	require.NoError(t, c.ConvertAll(parser(t,
		"1 2000 . C CACA,CACG . . .",
		"1 3000 . A G . . .",
	), rdf.NewTurtleEncoder(&buf, nil)))

	assert.Equal(t, 1, c.Stats().Records)
	assert.Equal(t, 2, strings.Count(buf.String(), " .\n\n"))
	assert.NotContains(t, buf.String(), "3000")
}

func TestConvertAll_NoStatementsNoHeader(t *testing.T) {
	var buf bytes.Buffer
	c := New(loadConfig(t), DefaultOptions())
	require.NoError(t, c.ConvertAll(parser(t, "2 10 . A G . . ."), rdf.NewTurtleEncoder(&buf, rdf.DefaultNamespace())))
	assert.Empty(t, buf.String())
}

func TestConvertAll_NTriples(t *testing.T) {
	var buf bytes.Buffer
	enc, err := rdf.NewNTriplesEncoder(&buf, rdf.DefaultNamespace())
	require.NoError(t, err)

	c := New(loadConfig(t), Options{Subject: SubjectID, Classify: true})
	require.NoError(t, c.ConvertAll(parser(t, "1 1000 http://example.org/rs1 T C 50 PASS ."), enc))

	out := buf.String()
	assert.Contains(t, out, "<http://example.org/rs1> <"+vocab.RDFType+"> <"+vocab.GVO+"SNV> .\n")
	assert.Contains(t, out, "<"+vocab.FaldoPosition+"> \"1000\"^^<"+vocab.XSDInteger+"> .\n")
	assert.Contains(t, out, "_:b")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConvertAll_WriteError(t *testing.T) {
	c := New(loadConfig(t), DefaultOptions())
	err := c.ConvertAll(parser(t, "1 10 . A G . . ."), rdf.NewTurtleEncoder(failingWriter{}, nil))
	assert.ErrorContains(t, err, "disk full")
}
