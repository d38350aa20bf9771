package history

import (
	"fmt"

	"github.com/crawlscore/crawlscore/schema"
)

// PrintHistoryStatus prints history store status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
	}
}

// PrintRecentRuns prints recent run records, newest first.
func PrintRecentRuns(records []schema.RunRecord) {
	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s  %s  score=%d grade=%s status=%s weaknesses=%d\n",
			rec.ScoredAt.Format("2006-01-02 15:04:05"), rec.FileID,
			rec.OverallScore, rec.Grade, rec.Status, rec.WeaknessCount)
	}
}
