package core

import "github.com/crawlscore/crawlscore/schema"

// detectWeaknesses flags metrics scoring below their alert threshold with
// the canned message from the catalog. Order follows the category slice,
// then catalog order within each category. Metrics flagged no-data are
// skipped: nothing to evaluate is not the same as failing. A metric that
// scored 0 because its columns were absent emits the same message as one
// that genuinely failed; the detector does not distinguish the two.
func detectWeaknesses(categories []schema.CategoryScore, alerts map[string]int) []string {
	var out []string
	for _, cs := range categories {
		for _, ms := range cs.Metrics {
			if ms.NoData {
				continue
			}
			threshold, ok := alerts[ms.MetricID]
			if !ok {
				threshold = metricByID[ms.MetricID].AlertThreshold
			}
			if ms.Score < threshold {
				out = append(out, metricByID[ms.MetricID].Weakness)
			}
		}
	}
	return out
}
