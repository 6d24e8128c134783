package main

import (
	"github.com/spf13/cobra"

	"github.com/openintro/soltex/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "soltex",
	Short: "Convert a LaTeX solutions manual to a PreTeXt appendix",
	Long: `Soltex converts the book's end-of-chapter-exercise solutions manual
from LaTeX to a single PreTeXt appendix file.

The converter:
  - Splits the manual into chapters at \eocesolch markers
  - Extracts each "% N" exercise annotation and its \eocesol block,
    matching nested braces
  - Rewrites LaTeX markup (math, emphasis, quotes, figures) as PreTeXt tags
  - Writes one appendix-solutions file with a section per chapter`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./soltex.yaml)",
	)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
