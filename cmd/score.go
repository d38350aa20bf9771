package cmd

import (
	"github.com/crawlscore/crawlscore/core"
	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/internal/loader"
	"github.com/crawlscore/crawlscore/internal/outwriter"
	"github.com/crawlscore/crawlscore/schema"
	"github.com/spf13/cobra"
)

// scoreCmd scores a single crawl export.
var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score one crawl export against the SEO metric catalog.",
	Long: `Evaluate a single crawl export (CSV or TSV) against the fixed SEO metric
catalog and report weighted category scores, an overall score, a letter
grade, a status bucket and detected weaknesses.

Metrics whose columns are absent from the export score 0 without failing
the run; sparse exports are the expected common case.

Examples:
  # Score a Screaming Frog export
  crawlscore score internal_html.csv

  # Include per-metric rows
  crawlscore score internal_html.csv --detail

  # Export the result as JSON
  crawlscore score internal_html.csv --output json --output-file result.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		path := args[0]
		ds, err := loader.LoadFile(path, cfg.MaxRows)
		if err != nil {
			contract.LogFatal("Cannot load crawl export", err)
		}
		result, err := core.ScoreDataset(cfg, ds)
		if err != nil {
			contract.LogFatal("Cannot score crawl export", err)
		}

		saveOutcomes([]schema.FileOutcome{{FileID: path, Result: result}})

		ow := outwriter.NewOutWriter()
		if err := ow.WriteResult(path, result, cfg); err != nil {
			contract.LogFatal("Cannot write result", err)
		}
	},
}
