package cmd

import (
	"github.com/crawlscore/crawlscore/core"
	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/internal/loader"
	"github.com/crawlscore/crawlscore/internal/outwriter"
	"github.com/spf13/cobra"
)

// batchCmd scores multiple crawl exports and compares them.
var batchCmd = &cobra.Command{
	Use:   "batch <file...>",
	Short: "Score multiple crawl exports independently and compare them.",
	Long: `Run the full scoring pipeline over every given file and produce a
cross-file comparison: one outcome per file in input order, plus summary
statistics (average, best and worst score) over the files that scored.

A file that fails to load or score is recorded with its error message and
never prevents the remaining files from scoring.

Examples:
  # Compare three competitor crawls
  crawlscore batch site_a.csv site_b.csv site_c.csv

  # Ranked leaderboard view
  crawlscore batch *.csv --ranked

  # Export the comparison for further analysis
  crawlscore batch *.csv --output parquet --output-file batch.parquet`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		inputs := make([]core.BatchInput, 0, len(args))
		for _, path := range args {
			ds, err := loader.LoadFile(path, cfg.MaxRows)
			inputs = append(inputs, core.BatchInput{FileID: path, Dataset: ds, LoadErr: err})
		}

		batch := core.RunBatch(cfg, inputs)
		saveOutcomes(batch.Outcomes)

		ow := outwriter.NewOutWriter()
		if err := ow.WriteBatch(batch, cfg); err != nil {
			contract.LogFatal("Cannot write batch result", err)
		}
	},
}
