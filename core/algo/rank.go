// Package algo has ranking logic for batch scoring outcomes.
package algo

import (
	"sort"

	"github.com/crawlscore/crawlscore/schema"
)

// RankOutcomes sorts scored outcomes by overall score in descending order
// and returns the top 'limit' entries. Failed outcomes are excluded; ties
// keep input order. If limit is greater than the number of scored
// outcomes, all of them are returned in sorted order.
func RankOutcomes(outcomes []schema.FileOutcome, limit int) []schema.FileOutcome {
	ranked := make([]schema.FileOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Failed() {
			ranked = append(ranked, o)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
