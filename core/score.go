package core

import (
	"math"

	"github.com/crawlscore/crawlscore/schema"
)

// roundHalfUp rounds to the nearest integer with ties going up.
// Banker's rounding would shave points off exact .5 scores.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// aggregateCategory folds metric scores into a category score as their
// unweighted rounded mean. An empty category scores 0 rather than
// dividing by zero.
func aggregateCategory(cat schema.Category, metrics []schema.MetricScore) schema.CategoryScore {
	if len(metrics) == 0 {
		return schema.CategoryScore{Category: cat, Score: 0}
	}
	sum := 0
	for _, m := range metrics {
		sum += m.Score
	}
	score := roundHalfUp(float64(sum) / float64(len(metrics)))
	return schema.CategoryScore{Category: cat, Score: score, Metrics: metrics}
}

// overallScore combines category scores into one 0-100 value using the
// configured weights. The weighted sum is normalized by the sum of weights
// of the categories actually present, so the result is invariant to the
// weight scale and a category missing from the input does not drag the
// score down as a phantom zero.
func overallScore(categories []schema.CategoryScore, weights map[schema.Category]float64) int {
	var weighted, used float64
	for _, cs := range categories {
		w, ok := weights[cs.Category]
		if !ok || w == 0 {
			continue
		}
		weighted += float64(cs.Score) / 100 * w
		used += w
	}
	if used == 0 {
		return 0
	}
	return roundHalfUp(weighted / used * 100)
}
