package cmd

import (
	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/internal/outwriter"
	"github.com/spf13/cobra"
)

// metricsCmd prints the metric catalog.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List the SEO metric catalog.",
	Long: `Print every metric in the fixed catalog: its category, the crawl
columns it reads, the rule it applies per row, and the alert threshold
below which it is reported as a weakness.

Examples:
  # Human-readable catalog table
  crawlscore metrics

  # Machine-readable catalog
  crawlscore metrics --output json`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		ow := outwriter.NewOutWriter()
		if err := ow.WriteMetrics(cfg); err != nil {
			contract.LogFatal("Cannot write metric catalog", err)
		}
	},
}
