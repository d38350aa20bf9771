// Package contract has the validated runtime configuration and the shared
// interfaces and helpers used across crawlscore packages.
package contract

import "github.com/crawlscore/crawlscore/schema"

// HistoryStore persists scoring runs. Implementations must tolerate being
// disabled: a store over the none backend accepts every call as a no-op.
type HistoryStore interface {
	// SaveOutcome records one scored file. Failed outcomes are skipped.
	SaveOutcome(outcome schema.FileOutcome) error

	// GetStatus reports backend health and run counts.
	GetStatus() (schema.HistoryStatus, error)

	// RecentRuns returns up to limit runs, newest first.
	RecentRuns(limit int) ([]schema.RunRecord, error)

	// Clear removes all stored runs.
	Clear() error

	// Close releases the underlying connection.
	Close() error
}
