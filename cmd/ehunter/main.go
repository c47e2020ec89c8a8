// Package main provides the entry point for the ehunter CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Archieyoung/ExpansionHunter/cmd/ehunter/commands"
	"github.com/Archieyoung/ExpansionHunter/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ehunter",
		Short: "Tandem repeat genotyper for aligned short reads",
		Long: `Ehunter estimates the number of repeat unit copies at catalog loci
from streams of graph-aligned read pairs.

Commands:
  genotype  Genotype repeat loci from aligned reads
  validate  Validate a variant catalog against its schema
  plot      Render allele support histograms from a findings report`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewGenotypeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "ehunter %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
