package vcf

import (
	"math"
	"strings"

	"github.com/inodb/vcf2rdf/internal/info"
)

// Record is one VCF data line.
type Record struct {
	Chrom   string   // Chromosome name (e.g., "12", "chr12")
	Pos     int64    // 1-based position of the first reference base
	ID      string   // Record identifier, "." when absent
	Alleles []string // Reference first, then alternates
	Qual    float64  // NaN when missing
	Filters []string // Empty when missing
	Info    string   // Raw INFO column

	header *Header
	info   map[string]string
}

// Reference returns the reference allele.
func (r *Record) Reference() string {
	if len(r.Alleles) == 0 {
		return ""
	}
	return r.Alleles[0]
}

// Alternates returns the alternate alleles.
func (r *Record) Alternates() []string {
	if len(r.Alleles) < 2 {
		return nil
	}
	return r.Alleles[1:]
}

// HasQual reports whether the quality column is set to a finite value.
func (r *Record) HasQual() bool {
	return !math.IsNaN(r.Qual) && !math.IsInf(r.Qual, 0)
}

// HasID reports whether the record carries an identifier.
func (r *Record) HasID() bool {
	return r.ID != "" && r.ID != "."
}

// InfoValue returns the raw value of key. Flags have an empty value.
func (r *Record) InfoValue(key string) (string, bool) {
	if r.info == nil {
		r.info = parseInfo(r.Info)
	}
	v, ok := r.info[key]
	return v, ok
}

// Fields returns typed INFO fields for keys, in the order given. Keys that the
// header does not declare are skipped. Declared flags are always returned,
// false when absent; other absent keys are skipped.
func (r *Record) Fields(keys []string) []info.Field {
	if r.header == nil {
		return nil
	}

	var fields []info.Field
	for _, key := range keys {
		def, ok := r.header.Info[key]
		if !ok {
			continue
		}
		raw, present := r.InfoValue(key)

		f := info.Field{Key: key, Type: def.Type, Cardinality: def.Number}
		if def.Type == info.KindFlag {
			f.Values = []info.Value{info.Flag(present)}
			fields = append(fields, f)
			continue
		}
		if !present {
			continue
		}
		for _, tok := range strings.Split(raw, ",") {
			f.Values = append(f.Values, info.ParseValue(def.Type, tok))
		}
		fields = append(fields, f)
	}
	return fields
}

func parseInfo(s string) map[string]string {
	result := make(map[string]string)
	if s == "" || s == "." {
		return result
	}
	for _, kv := range strings.Split(s, ";") {
		if kv == "" {
			continue
		}
		key, value, _ := strings.Cut(kv, "=")
		result[key] = value
	}
	return result
}
