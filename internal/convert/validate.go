package convert

import "github.com/inodb/vcf2rdf/internal/alteration"

// SkipReason says why an allele produced no statement.
type SkipReason string

const (
	SkipEmptyReference   SkipReason = "empty reference bases"
	SkipEmptyAlternate   SkipReason = "empty alternate bases"
	SkipInvalidReference SkipReason = "reference bases contain non-nucleotide characters"
	SkipInvalidAlternate SkipReason = "alternate bases contain non-nucleotide characters"
	SkipUnnormalizable   SkipReason = "reference and alternate cannot be normalized"
	SkipMissingReference SkipReason = "no sequence reference for chromosome"
)

// nucleotide marks the IUPAC nucleotide codes. Lowercase is not accepted.
var nucleotide = func() (t [256]bool) {
	for _, c := range "ACGTURYKMSWBDHVN" {
		t[c] = true
	}
	return
}()

func isNucleotides(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !nucleotide[s[i]] {
			return false
		}
	}
	return true
}

// validate checks the raw bases of pair. "." counts as empty.
func validate(pair alteration.AllelePair) SkipReason {
	ref, alt := pair.Reference, pair.Alternate
	switch {
	case ref == "" || ref == ".":
		return SkipEmptyReference
	case alt == "" || alt == ".":
		return SkipEmptyAlternate
	case !isNucleotides(ref):
		return SkipInvalidReference
	case !isNucleotides(alt):
		return SkipInvalidAlternate
	}
	return ""
}
