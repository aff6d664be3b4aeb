package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/inodb/vcf2rdf/internal/assembly"
	"github.com/inodb/vcf2rdf/internal/config"
	"github.com/inodb/vcf2rdf/internal/vcf"
)

func newGenerateCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate files for conversion",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newGenerateConfigCmd(g))
	return cmd
}

func newGenerateConfigCmd(g *globalOptions) *cobra.Command {
	var asm string

	cmd := &cobra.Command{
		Use:   "config [flags] <input-file>",
		Short: "Generate a conversion config template from a VCF header",
		Example: `  vcf2rdf generate config input.vcf > config.yaml
  vcf2rdf generate config --assembly GRCh38 input.vcf.gz > config.yaml`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var a *assembly.Assembly
			if asm != "" {
				var err error
				if a, err = assembly.Lookup(asm); err != nil {
					return usage("%v", err)
				}
			}
			return runGenerateConfig(cmd.OutOrStdout(), args[0], a)
		},
	}

	cmd.Flags().StringVar(&asm, "assembly", "", "resolve contigs against an assembly: GRCh37, GRCh38, GRCm38, GRCm39")
	return cmd
}

func runGenerateConfig(w io.Writer, input string, a *assembly.Assembly) error {
	parser, err := vcf.NewParser(input)
	if err != nil {
		return err
	}
	defer parser.Close()

	return config.Generate(w, parser.Header(), a)
}
