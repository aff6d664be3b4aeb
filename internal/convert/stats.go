package convert

import (
	"maps"

	"github.com/inodb/vcf2rdf/internal/alteration"
)

// Stats counts the work done by a Converter.
type Stats struct {
	Records    int
	Alleles    int
	Statements int
	Classes    map[alteration.MutationClass]int
	Skipped    map[SkipReason]int
}

func newStats() Stats {
	return Stats{
		Classes: make(map[alteration.MutationClass]int),
		Skipped: make(map[SkipReason]int),
	}
}

func (s Stats) clone() Stats {
	s.Classes = maps.Clone(s.Classes)
	s.Skipped = maps.Clone(s.Skipped)
	return s
}

// TotalSkipped returns the number of skipped alleles.
func (s Stats) TotalSkipped() int {
	n := 0
	for _, v := range s.Skipped {
		n += v
	}
	return n
}
