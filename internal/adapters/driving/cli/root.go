// Package cli wires the cobra command tree for the sheetrange tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkbabb/sheetrange/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sheetrange",
	Short: "Google Sheets range addressing and batched writes",
	Long: `sheetrange translates slice-style indexing expressions and A1 range
strings into normalised sheet ranges, and batches value writes against the
Google Sheets API within its rate limits.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
