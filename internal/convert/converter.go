// Package convert turns VCF records into RDF statements, one per alternate
// allele, describing each allele as a located genomic alteration.
package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vcf2rdf/internal/alteration"
	"github.com/inodb/vcf2rdf/internal/config"
	"github.com/inodb/vcf2rdf/internal/faldo"
	"github.com/inodb/vcf2rdf/internal/info"
	"github.com/inodb/vcf2rdf/internal/rdf"
	"github.com/inodb/vcf2rdf/internal/vcf"
	"github.com/inodb/vcf2rdf/internal/vocab"
)

// SequenceLookup resolves a chromosome to its sequence reference.
// *config.Config implements it.
type SequenceLookup interface {
	Sequence(chrom string) (config.Sequence, bool)
}

// Options control statement content.
type Options struct {
	Subject Subject
	// Classify types statements by mutation class instead of gvo:Variation.
	Classify bool
	// InfoKeys are the INFO keys rendered as gvo:info nodes, in order.
	InfoKeys []string
	// Rehearsal stops after the first record.
	Rehearsal bool
}

// DefaultOptions returns options with classification enabled and blank subjects.
func DefaultOptions() Options {
	return Options{Classify: true}
}

// Converter converts records to statements.
type Converter struct {
	seqs    SequenceLookup
	opts    Options
	logger  *zap.Logger
	stats   Stats
	unknown map[string]bool
}

// New creates a converter.
func New(seqs SequenceLookup, opts Options) *Converter {
	return &Converter{
		seqs:    seqs,
		opts:    opts,
		logger:  zap.NewNop(),
		stats:   newStats(),
		unknown: make(map[string]bool),
	}
}

// SetLogger sets the logger for skip warnings and statistics.
func (c *Converter) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Stats returns the counters accumulated so far.
func (c *Converter) Stats() Stats {
	return c.stats.clone()
}

// Convert returns the statements for every convertible allele of r.
// Alleles that cannot be converted are logged and skipped. The only error is
// an inconsistent per-allele INFO value list.
func (c *Converter) Convert(r *vcf.Record) ([]*rdf.Statement, error) {
	c.stats.Records++

	seq, hasSeq := c.seqs.Sequence(r.Chrom)
	fields := r.Fields(c.opts.InfoKeys)

	var statements []*rdf.Statement
	for _, pair := range alteration.Decompose(r.Pos, r.Alleles) {
		c.stats.Alleles++

		if reason := validate(pair); reason != "" {
			c.skip(r, pair, reason)
			continue
		}

		norm, err := pair.Normalize()
		if err != nil {
			c.skip(r, pair, SkipUnnormalizable)
			continue
		}

		loc, ok := faldo.Encode(norm, seq.Reference)
		if !hasSeq || !ok {
			c.skipSequence(r, pair)
			continue
		}

		st, err := c.statement(r, pair, norm, loc, seq, fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", r.Chrom, r.Pos, err)
		}
		c.stats.Statements++
		c.stats.Classes[norm.Class]++
		statements = append(statements, st)
	}
	return statements, nil
}

// ConvertAll converts every record from reader and writes the statements to
// enc. It stops after the first record in rehearsal mode.
func (c *Converter) ConvertAll(reader vcf.RecordReader, enc rdf.Encoder) error {
	for {
		r, err := reader.Next()
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		if r == nil {
			break
		}

		statements, err := c.Convert(r)
		if err != nil {
			return err
		}
		for _, st := range statements {
			if err := enc.Encode(st); err != nil {
				return err
			}
		}

		if c.opts.Rehearsal {
			break
		}
	}

	if err := enc.Flush(); err != nil {
		return err
	}

	c.logger.Info("conversion finished",
		zap.Int("records", c.stats.Records),
		zap.Int("alleles", c.stats.Alleles),
		zap.Int("statements", c.stats.Statements),
		zap.Int("skipped", c.stats.TotalSkipped()))
	return nil
}

func (c *Converter) statement(r *vcf.Record, pair alteration.AllelePair, norm alteration.Normalized,
	loc faldo.Location, seq config.Sequence, fields []info.Field) (*rdf.Statement, error) {
	st := &rdf.Statement{Subject: c.opts.Subject.subject(r, pair, norm, seq)}

	class := vocab.GVOVariation
	if c.opts.Classify {
		class = vocab.GVOClass(norm.Class.String())
	}
	st.Add(vocab.RDFType, rdf.IRI(class))

	if r.HasID() {
		st.Add(vocab.DCTIdentifier, rdf.String(r.ID))
	}
	st.Add(vocab.FaldoLocation, loc.Node())
	st.Add(vocab.GVORef, rdf.String(norm.Reference))
	st.Add(vocab.GVOAlt, rdf.String(norm.Alternate))

	if r.HasQual() {
		st.Add(vocab.GVOQual, rdf.Decimal(r.Qual, 64))
	}

	filters := make([]rdf.Object, len(r.Filters))
	for i, f := range r.Filters {
		filters[i] = rdf.String(f)
	}
	st.Add(vocab.GVOFilter, filters...)

	var nodes []rdf.Object
	for _, f := range fields {
		n, err := f.Node(pair.AlleleIndex)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	st.Add(vocab.GVOInfo, nodes...)

	return st, nil
}

func (c *Converter) skip(r *vcf.Record, pair alteration.AllelePair, reason SkipReason) {
	c.stats.Skipped[reason]++
	c.logger.Warn("skipping allele",
		zap.String("chrom", r.Chrom),
		zap.Int64("pos", r.Pos),
		zap.String("ref", pair.Reference),
		zap.String("alt", pair.Alternate),
		zap.String("reason", string(reason)))
}

// skipSequence counts an allele on a chromosome without a reference IRI and
// warns once per chromosome.
func (c *Converter) skipSequence(r *vcf.Record, pair alteration.AllelePair) {
	c.stats.Skipped[SkipMissingReference]++
	if c.unknown[r.Chrom] {
		return
	}
	c.unknown[r.Chrom] = true
	c.logger.Warn("no sequence reference, skipping records on chromosome",
		zap.String("chrom", r.Chrom),
		zap.Int64("pos", r.Pos),
		zap.String("ref", pair.Reference),
		zap.String("alt", pair.Alternate),
		zap.String("reason", string(SkipMissingReference)))
}
