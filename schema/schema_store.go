package schema

import "time"

// HistoryStatus represents the status of the run history store.
type HistoryStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRuns     int       `json:"total_runs"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
}

// RunRecord represents one row from the crawlscore_runs table.
type RunRecord struct {
	RunID          int64
	FileID         string
	ScoredAt       time.Time
	OverallScore   int
	Grade          string
	Status         string
	ContentScore   int
	TechnicalScore int
	UXScore        int
	WeaknessCount  int
}
