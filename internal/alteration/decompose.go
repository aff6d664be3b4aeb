package alteration

// AllelePair is one reference/alternate combination taken from a record.
type AllelePair struct {
	Position    int64 // 1-based record position
	Reference   string
	Alternate   string
	AlleleIndex int // zero-based index among the alternate alleles
}

// Normalize normalizes the pair.
func (p AllelePair) Normalize() (Normalized, error) {
	return Normalize(p.Position, p.Reference, p.Alternate)
}

// Decompose splits an allele list (index 0 = reference) into one pair per
// alternate allele, in allele order. A list holding only the reference
// yields a single pair whose alternate is ".".
func Decompose(pos int64, alleles []string) []AllelePair {
	if len(alleles) == 0 {
		return nil
	}

	ref := alleles[0]
	alts := alleles[1:]
	if len(alts) == 0 {
		alts = []string{"."}
	}

	pairs := make([]AllelePair, len(alts))
	for i, alt := range alts {
		pairs[i] = AllelePair{
			Position:    pos,
			Reference:   ref,
			Alternate:   alt,
			AlleleIndex: i,
		}
	}
	return pairs
}
