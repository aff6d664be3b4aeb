package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vcf2rdf/internal/assembly"
	"github.com/inodb/vcf2rdf/internal/vcf"
)

const sample = `
base: http://example.org/
namespaces:
  ex: http://example.org/ns#
  Ex: http://example.org/upper#
info: [DP, AF]
reference:
  "1":
    name: chr1
    reference: http://identifiers.org/hco/1/GRCh38
  "2":
    name: chr2
  MT: null
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "http://example.org/", cfg.Base)
	assert.Equal(t, []string{"DP", "AF"}, cfg.Info)
	assert.Len(t, cfg.Namespaces, 2)

	s, ok := cfg.Sequence("1")
	require.True(t, ok)
	assert.Equal(t, Sequence{Name: "chr1", Reference: "http://identifiers.org/hco/1/GRCh38"}, s)

	_, ok = cfg.Sequence("MT")
	assert.False(t, ok)
	_, ok = cfg.Sequence("X")
	assert.False(t, ok)

	assert.Equal(t, []string{"2", "MT"}, cfg.MissingReferences())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse(strings.NewReader("bse: http://example.org/\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Reference)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/", cfg.Base)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open config")
}

func TestConfig_Namespace(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	ns := cfg.Namespace()
	assert.Equal(t, "http://example.org/", ns.Base)

	iri, ok := ns.Lookup("Ex")
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/upper#", iri)

	_, ok = ns.Lookup("faldo")
	assert.True(t, ok)
}

func TestConfig_InfoKeys(t *testing.T) {
	declared := []string{"DP", "AF", "AC"}

	assert.Equal(t, []string{"AC", "AF", "DP"}, (&Config{}).InfoKeys(declared))
	assert.Equal(t, []string{"AF"}, (&Config{Info: []string{"AF"}}).InfoKeys(declared))
	assert.Empty(t, (&Config{Info: []string{}}).InfoKeys(declared))
	assert.Equal(t, []string{"DP", "AF", "AC"}, declared)
}

const header = "##fileformat=VCFv4.2\n" +
	"##INFO=<ID=DP,Number=1,Type=Integer,Description=\"Depth\">\n" +
	"##INFO=<ID=AF,Number=A,Type=Float,Description=\"Frequency\">\n" +
	"##contig=<ID=chr1,length=248956422>\n" +
	"##contig=<ID=2,length=242193529>\n" +
	"##contig=<ID=chrUn_x,length=10>\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n"

func parseHeader(t *testing.T) *vcf.Header {
	t.Helper()
	p, err := vcf.NewParserFromReader(strings.NewReader(header))
	require.NoError(t, err)
	return p.Header()
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, parseHeader(t), nil))

	out := buf.String()
	assert.Contains(t, out, "# Set base IRI if needed.\nbase: null\n")
	assert.Contains(t, out, "# Remove unnecessary keys to convert.\ninfo:\n")
	assert.Less(t, strings.Index(out, "- AF"), strings.Index(out, "- DP"))
	assert.Contains(t, out, "chr1:\n    name: chr1\n")

	cfg, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"AF", "DP"}, cfg.Info)
	assert.Equal(t, []string{"2", "chr1", "chrUn_x"}, cfg.MissingReferences())
	assert.Empty(t, cfg.Base)
}

func TestGenerate_WithAssembly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, parseHeader(t), assembly.GRCh38))

	cfg, err := Parse(&buf)
	require.NoError(t, err)

	s, ok := cfg.Sequence("chr1")
	require.True(t, ok)
	assert.Equal(t, Sequence{Name: "1", Reference: "http://identifiers.org/hco/1/GRCh38"}, s)

	s, ok = cfg.Sequence("2")
	require.True(t, ok)
	assert.Equal(t, "http://identifiers.org/hco/2/GRCh38", s.Reference)

	_, ok = cfg.Sequence("chrUn_x")
	assert.False(t, ok)
	assert.Equal(t, []string{"chrUn_x"}, cfg.MissingReferences())
}
