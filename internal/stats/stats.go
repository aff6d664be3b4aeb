// Package stats summarizes the records and alleles of a VCF stream.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/inodb/vcf2rdf/internal/alteration"
	"github.com/inodb/vcf2rdf/internal/duckdb"
	"github.com/inodb/vcf2rdf/internal/vcf"
)

// Unclassified names alleles that could not be normalized.
const Unclassified = "unclassified"

// maxLengthChange bounds the histogram of alternate minus reference length.
const maxLengthChange = 20

// batchSize is the number of allele rows buffered before a store write.
const batchSize = 10000

// Count returns the number of records in r.
func Count(r vcf.RecordReader) (int64, error) {
	var n int64
	for {
		rec, err := r.Next()
		if err != nil {
			return n, fmt.Errorf("read record: %w", err)
		}
		if rec == nil {
			return n, nil
		}
		n++
	}
}

// Summary describes a VCF stream. Chromosome and quality figures are taken
// over alleles, so a multi-allelic record counts once per alternate.
type Summary struct {
	Records     int64
	Alleles     int64
	Classes     map[string]int64
	Chromosomes map[string]int64
	QualCount   int64
	QualMean    float64
	QualStdDev  float64

	// LengthChanges[i] counts alleles whose alternate is i-maxLengthChange
	// bases longer than the reference, clamped to the histogram range.
	LengthChanges []float64
}

// Collector accumulates a Summary record by record.
type Collector struct {
	summary Summary
	quals   []float64

	store  *duckdb.Store
	source string
	rows   []duckdb.AlleleRow

	logger *zap.Logger
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		summary: Summary{
			Classes:       make(map[string]int64),
			Chromosomes:   make(map[string]int64),
			LengthChanges: make([]float64, 2*maxLengthChange+1),
		},
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for progress messages.
func (c *Collector) SetLogger(l *zap.Logger) {
	c.logger = l
}

// SetStore persists every allele to s under source.
func (c *Collector) SetStore(s *duckdb.Store, source string) {
	c.store = s
	c.source = source
}

// Add accounts for one record.
func (c *Collector) Add(r *vcf.Record) error {
	c.summary.Records++

	for _, pair := range alteration.Decompose(r.Pos, r.Alleles) {
		c.summary.Alleles++
		c.summary.Chromosomes[r.Chrom]++
		if r.HasQual() {
			c.quals = append(c.quals, r.Qual)
		}

		class := Unclassified
		if pair.Alternate != "." {
			if norm, err := pair.Normalize(); err == nil {
				class = norm.Class.String()
				delta := len(norm.Alternate) - len(norm.Reference)
				delta = min(max(delta, -maxLengthChange), maxLengthChange)
				c.summary.LengthChanges[delta+maxLengthChange]++
			}
		}
		c.summary.Classes[class]++

		if c.store != nil {
			row := duckdb.AlleleRow{
				Chrom: r.Chrom,
				Pos:   pair.Position,
				Ref:   pair.Reference,
				Alt:   pair.Alternate,
				Qual:  r.Qual,
			}
			if class != Unclassified {
				row.Class = class
			}
			c.rows = append(c.rows, row)
			if len(c.rows) >= batchSize {
				if err := c.flush(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (c *Collector) flush() error {
	if err := c.store.WriteAlleles(c.source, c.rows); err != nil {
		return fmt.Errorf("write alleles: %w", err)
	}
	c.logger.Debug("flushed alleles", zap.Int("rows", len(c.rows)))
	c.rows = c.rows[:0]
	return nil
}

// AddAll reads every record of r.
func (c *Collector) AddAll(r vcf.RecordReader) error {
	for {
		rec, err := r.Next()
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		if rec == nil {
			return nil
		}
		if err := c.Add(rec); err != nil {
			return err
		}
	}
}

// Summary flushes pending rows and returns the summary so far.
func (c *Collector) Summary() (Summary, error) {
	if c.store != nil && len(c.rows) > 0 {
		if err := c.flush(); err != nil {
			return Summary{}, err
		}
	}

	s := c.summary
	s.QualCount = int64(len(c.quals))
	switch len(c.quals) {
	case 0:
	case 1:
		s.QualMean = c.quals[0]
	default:
		s.QualMean, s.QualStdDev = stat.MeanStdDev(c.quals, nil)
	}
	return s, nil
}

// Write prints the summary as aligned text.
func (s Summary) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "records\t%d\n", s.Records)
	fmt.Fprintf(&b, "alleles\t%d\n", s.Alleles)

	for _, k := range sortedKeys(s.Classes) {
		fmt.Fprintf(&b, "class.%s\t%d\n", k, s.Classes[k])
	}
	for _, k := range sortedKeys(s.Chromosomes) {
		fmt.Fprintf(&b, "chrom.%s\t%d\n", k, s.Chromosomes[k])
	}

	fmt.Fprintf(&b, "qual.count\t%d\n", s.QualCount)
	if s.QualCount > 0 {
		fmt.Fprintf(&b, "qual.mean\t%.4f\n", s.QualMean)
		fmt.Fprintf(&b, "qual.stddev\t%.4f\n", s.QualStdDev)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Plot renders the allele length change histogram. It returns "" when no
// allele was classified.
func (s Summary) Plot() string {
	lo, hi := -1, -1
	for i, v := range s.LengthChanges {
		if v > 0 {
			if lo < 0 {
				lo = i
			}
			hi = i
		}
	}
	if lo < 0 {
		return ""
	}

	// asciigraph needs at least two points to draw a line.
	data := s.LengthChanges[lo : hi+1]
	if len(data) == 1 {
		data = append([]float64{0}, data...)
		lo--
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("alleles by length change (%+d to %+d bases)",
			lo-maxLengthChange, hi-maxLengthChange)))
}

// FromStore rebuilds a summary of source from rows persisted by a previous
// run. Length changes are not stored and are left empty.
func FromStore(store *duckdb.Store, source string, records int64) (Summary, error) {
	s := Summary{
		Records:     records,
		Classes:     make(map[string]int64),
		Chromosomes: make(map[string]int64),
	}

	classes, err := store.ClassCounts(source)
	if err != nil {
		return Summary{}, err
	}
	for _, c := range classes {
		s.Classes[c.Key] = c.Count
		s.Alleles += c.Count
	}

	chroms, err := store.ChromCounts(source)
	if err != nil {
		return Summary{}, err
	}
	for _, c := range chroms {
		s.Chromosomes[c.Key] = c.Count
	}

	s.QualCount, s.QualMean, s.QualStdDev, err = store.QualStats(source)
	if err != nil {
		return Summary{}, err
	}
	return s, nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
