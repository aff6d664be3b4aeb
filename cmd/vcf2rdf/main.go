// Package main provides the vcf2rdf command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var ue *usageError
	if errors.As(err, &ue) || isCobraUsageError(err) {
		return ExitUsage
	}
	return ExitError
}

// isCobraUsageError matches the usage errors cobra reports as plain errors.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "required flag")
}

// usageError marks invalid command-line usage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usage(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

type globalOptions struct {
	verbose int
	logDev  string
	logger  *zap.Logger
	closer  func() error
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "vcf2rdf",
		Short: "Convert VCF to RDF",
		Long: `vcf2rdf converts genomic variant records (VCF) into an RDF graph.

Each alternate allele is normalized, classified and described with a FALDO
location. Output is Turtle or N-Triples.

User preferences are read from ~/.vcf2rdf.yaml and VCF2RDF_* environment
variables.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			if !cmd.Flags().Changed("verbose") && viper.IsSet("verbose") {
				opts.verbose = viper.GetInt("verbose")
			}
			logger, closer, err := newLogger(opts.verbose, opts.logDev)
			if err != nil {
				return err
			}
			opts.logger = logger
			opts.closer = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger.Sync()
			if opts.closer != nil {
				return opts.closer()
			}
			return nil
		},
	}

	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v",
		"verbose mode (-v statistics, -vv warnings, -vvv debug)")
	cmd.PersistentFlags().StringVar(&opts.logDev, "log-dev", "", "log device (default: stderr)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newStatCmd(opts))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vcf2rdf version %s (%s) built %s\n", version, commit, date)
		},
	}
}

// initConfig reads ~/.vcf2rdf.yaml and VCF2RDF_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".vcf2rdf.yaml"))
	}
	viper.SetEnvPrefix("VCF2RDF")
	viper.AutomaticEnv()

	// A missing preferences file is not an error.
	_ = viper.ReadInConfig()
}
