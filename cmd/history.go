package cmd

import (
	"fmt"

	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/internal/history"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyCmd focused on run history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the scoring run history",
	Long: `Manage the store that records every scored file for later comparison.

Supported backends: SQLite (default file in your home directory), MySQL,
PostgreSQL, or None (recording disabled).

Subcommands:
  status  - Show backend health and run counts
  show    - List recent runs, newest first
  clear   - Remove all recorded runs
  migrate - Move the store schema to a specific version

Examples:
  # Check where runs are being recorded
  crawlscore history status --history-backend sqlite

  # Review the last few scoring runs
  crawlscore history show --history-backend sqlite`,
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display history store health and run counts",
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(status)
	},
}

// historyShowCmd lists recent runs.
var historyShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "List recent scoring runs, newest first",
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		records, err := historyStore.RecentRuns(cfg.Limit)
		if err != nil {
			contract.LogFatal("Failed to read recent runs", err)
		}
		history.PrintRecentRuns(records)
	},
}

// historyClearCmd clears recorded runs.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded scoring runs",
	Long: `Delete every recorded run from the configured backend.

Use this when old runs are no longer comparable, for example after a
weight or threshold change that shifts all scores.`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyMigrateCmd moves the store schema to a target version. It
// deliberately skips store initialization, which always migrates to
// latest; rollbacks would be impossible otherwise.
var historyMigrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Migrate the history store schema to a target version",
	PreRunE: configSetup,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := history.MigrateTo(cfg.HistoryBackend, cfg.HistoryDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate history schema", err)
		}
		fmt.Println("History schema migrated successfully.")
	},
}
