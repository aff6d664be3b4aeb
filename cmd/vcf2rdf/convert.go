package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vcf2rdf/internal/config"
	"github.com/inodb/vcf2rdf/internal/convert"
	"github.com/inodb/vcf2rdf/internal/rdf"
	"github.com/inodb/vcf2rdf/internal/vcf"
)

type convertOptions struct {
	config     string
	format     string
	subject    string
	output     string
	rehearsal  bool
	noClassify bool
}

func newConvertCmd(g *globalOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [flags] <input-file>",
		Short: "Convert a VCF file to RDF",
		Long: `Convert every alternate allele of a VCF file (plain or gzip, '-' for stdin)
into an RDF statement. Records on chromosomes without a reference sequence IRI
in the configuration are skipped.`,
		Example: `  vcf2rdf convert -c config.yaml input.vcf.gz > out.ttl
  vcf2rdf convert -c config.yaml -f n-triples -s id -o out.nt input.vcf
  vcf2rdf convert -c config.yaml --rehearsal input.vcf`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = stringPref(cmd, "format", opts.format)
			opts.subject = stringPref(cmd, "subject", opts.subject)
			return runConvert(cmd.OutOrStdout(), g.logger, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "conversion config file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "turtle",
		"output format: "+strings.Join(rdf.FormatNames, ", "))
	cmd.Flags().StringVarP(&opts.subject, "subject", "s", "",
		"subject strategy: "+strings.Join(convert.SubjectNames(), ", ")+" (default: blank node)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.rehearsal, "rehearsal", false, "stop after the first record")
	cmd.Flags().BoolVar(&opts.noClassify, "no-classify", false, "type every allele as gvo:Variation")
	cmd.MarkFlagRequired("config")

	return cmd
}

// stringPref returns the flag value when set on the command line, else the
// user preference, else the flag default.
func stringPref(cmd *cobra.Command, key, value string) string {
	if !cmd.Flags().Changed(key) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return value
}

func runConvert(stdout io.Writer, logger *zap.Logger, opts *convertOptions, input string) error {
	format, err := rdf.ParseFormat(opts.format)
	if err != nil {
		return usage("%v", err)
	}
	subject, err := convert.ParseSubject(opts.subject)
	if err != nil {
		return usage("%v", err)
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if missing := cfg.MissingReferences(); len(missing) > 0 {
		logger.Warn("some sequences have no reference; records on these chromosomes are ignored",
			zap.Strings("chroms", missing))
	}

	parser, err := vcf.NewParser(input)
	if err != nil {
		return err
	}
	defer parser.Close()

	header := parser.Header()
	keys := cfg.InfoKeys(header.InfoKeys())
	for _, k := range keys {
		if _, ok := header.Info[k]; !ok {
			logger.Warn("info key not declared in header, ignored", zap.String("key", k))
		}
	}

	out := stdout
	var file *os.File
	if opts.output != "" {
		file, err = os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	enc, err := rdf.NewEncoder(out, format, cfg.Namespace())
	if err != nil {
		return err
	}

	conv := convert.New(cfg, convert.Options{
		Subject:   subject,
		Classify:  !opts.noClassify,
		InfoKeys:  keys,
		Rehearsal: opts.rehearsal,
	})
	conv.SetLogger(logger)

	if err := conv.ConvertAll(parser, enc); err != nil {
		return err
	}

	stats := conv.Stats()
	for _, reason := range slices.Sorted(maps.Keys(stats.Skipped)) {
		logger.Info("skipped alleles", zap.String("reason", string(reason)), zap.Int("count", stats.Skipped[reason]))
	}
	for _, class := range slices.Sorted(maps.Keys(stats.Classes)) {
		logger.Debug("converted alleles", zap.Stringer("class", class), zap.Int("count", stats.Classes[class]))
	}

	if file != nil {
		if err := file.Close(); err != nil {
			return fmt.Errorf("close output file: %w", err)
		}
	}
	return nil
}
