package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vcf2rdf/internal/duckdb"
	"github.com/inodb/vcf2rdf/internal/stats"
	"github.com/inodb/vcf2rdf/internal/vcf"
)

func newStatCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Obtain VCF statistics",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newStatCountCmd())
	cmd.AddCommand(newStatSummaryCmd(g))
	return cmd
}

func newStatCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <input-file>",
		Short: "Count records",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := vcf.NewParser(args[0])
			if err != nil {
				return err
			}
			defer parser.Close()

			n, err := stats.Count(parser)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

type summaryOptions struct {
	db   string
	plot bool
}

func newStatSummaryCmd(g *globalOptions) *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary [flags] <input-file>",
		Short: "Summarize records, mutation classes and quality",
		Long: `Summarize a VCF file. With --db, alleles are stored in a DuckDB database
and a later run on the unchanged file reads the summary from it.`,
		Example: `  vcf2rdf stat summary input.vcf
  vcf2rdf stat summary --db stats.duckdb --plot input.vcf.gz`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.OutOrStdout(), g.logger, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.db, "db", "", "DuckDB database for allele statistics")
	cmd.Flags().BoolVar(&opts.plot, "plot", false, "plot the allele length change histogram")
	return cmd
}

func runSummary(w io.Writer, logger *zap.Logger, opts *summaryOptions, input string) error {
	var store *duckdb.Store
	var fp duckdb.FileFingerprint

	if opts.db != "" && input != "-" {
		var err error
		if fp, err = duckdb.StatFile(input); err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
		if store, err = duckdb.Open(opts.db); err != nil {
			return err
		}
		defer store.Close()

		if records, ok, err := store.SourceValid(fp); err != nil {
			return err
		} else if ok && !opts.plot {
			logger.Info("using stored statistics", zap.String("db", opts.db), zap.String("source", input))
			s, err := stats.FromStore(store, input, records)
			if err != nil {
				return err
			}
			return s.Write(w)
		}
		if err := store.ClearSource(input); err != nil {
			return err
		}
	}

	parser, err := vcf.NewParser(input)
	if err != nil {
		return err
	}
	defer parser.Close()

	c := stats.NewCollector()
	c.SetLogger(logger)
	if store != nil {
		c.SetStore(store, input)
	}
	if err := c.AddAll(parser); err != nil {
		return err
	}
	s, err := c.Summary()
	if err != nil {
		return err
	}

	if store != nil {
		if err := store.WriteSource(fp, s.Records); err != nil {
			return err
		}
	}

	if err := s.Write(w); err != nil {
		return err
	}
	if opts.plot {
		if p := s.Plot(); p != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, p)
		}
	}
	return nil
}
