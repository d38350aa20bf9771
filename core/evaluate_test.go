package core

import (
	"testing"

	"github.com/crawlscore/crawlscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluateMetricTitleShare verifies the per-row percentage scoring on
// the meta_title metric: 8 of 10 rows in range yields 80.
func TestEvaluateMetricTitleShare(t *testing.T) {
	ds := titleDataset(10, 8)
	score := evaluateMetric(metricByID["meta_title"], ds)

	assert.Equal(t, "meta_title", score.MetricID)
	assert.Equal(t, 80, score.Score)
	assert.False(t, score.NoData)
}

// TestEvaluateMetricMissingColumns verifies that a metric whose columns
// are absent scores 0 without erroring.
func TestEvaluateMetricMissingColumns(t *testing.T) {
	ds := schema.NewDataset("no_index.csv", []string{"title"}, []schema.Row{
		{"title": cell("Home")},
	})

	score := evaluateMetric(metricByID["indexability"], ds)
	assert.Equal(t, 0, score.Score)
	assert.False(t, score.NoData)
}

// TestEvaluateMetricZeroRows verifies the no-data flag on empty datasets.
func TestEvaluateMetricZeroRows(t *testing.T) {
	ds := schema.NewDataset("empty.csv", []string{"title", "title_length"}, nil)

	score := evaluateMetric(metricByID["meta_title"], ds)
	assert.Equal(t, 0, score.Score)
	assert.True(t, score.NoData)
}

// TestEvaluateMetricScoreBounds verifies the all-pass and none-pass ends
// of the score range.
func TestEvaluateMetricScoreBounds(t *testing.T) {
	t.Run("all rows pass", func(t *testing.T) {
		ds := titleDataset(5, 5)
		assert.Equal(t, 100, evaluateMetric(metricByID["meta_title"], ds).Score)
	})

	t.Run("no rows pass", func(t *testing.T) {
		ds := titleDataset(5, 0)
		assert.Equal(t, 0, evaluateMetric(metricByID["meta_title"], ds).Score)
	})
}

// TestEvaluateMetricRounding verifies round-half-up on the row share:
// 1 of 3 rows is 33.33 which rounds to 33, 2 of 3 is 66.67 which rounds
// to 67, and 1 of 8 is 12.5 which rounds up to 13.
func TestEvaluateMetricRounding(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		inRange  int
		expected int
	}{
		{name: "one third", total: 3, inRange: 1, expected: 33},
		{name: "two thirds", total: 3, inRange: 2, expected: 67},
		{name: "exact half point", total: 8, inRange: 1, expected: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := titleDataset(tt.total, tt.inRange)
			assert.Equal(t, tt.expected, evaluateMetric(metricByID["meta_title"], ds).Score)
		})
	}
}

// TestMatchPredicateEquals verifies exact matching with surrounding
// whitespace tolerated.
func TestMatchPredicateEquals(t *testing.T) {
	def := metricByID["status_codes"]
	ds := schema.NewDataset("codes.csv", []string{"status_code"}, nil)

	tests := []struct {
		name     string
		value    schema.Cell
		expected bool
	}{
		{name: "exact match", value: cell("200"), expected: true},
		{name: "padded match", value: cell(" 200 "), expected: true},
		{name: "redirect", value: cell("301"), expected: false},
		{name: "null", value: nullCell(), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := schema.Row{"status_code": tt.value}
			assert.Equal(t, tt.expected, matchPredicate(def.Predicate, row, ds))
		})
	}
}

// TestMatchPredicateRangeNonNumeric verifies that unparseable and null
// values fail range checks instead of panicking.
func TestMatchPredicateRangeNonNumeric(t *testing.T) {
	def := metricByID["response_time"]
	ds := schema.NewDataset("resp.csv", []string{"response_time"}, nil)

	assert.False(t, matchPredicate(def.Predicate, schema.Row{"response_time": cell("fast")}, ds))
	assert.False(t, matchPredicate(def.Predicate, schema.Row{"response_time": nullCell()}, ds))
	assert.True(t, matchPredicate(def.Predicate, schema.Row{"response_time": cell("0.4")}, ds))
}

// TestSecondsToMillisScaling verifies the Core Web Vitals unit heuristic:
// readings at or below the cutoff are treated as seconds and scaled.
func TestSecondsToMillisScaling(t *testing.T) {
	def := metricByID["largest_contentful_paint"]
	require.True(t, def.Predicate.SecondsToMillis)
	ds := schema.NewDataset("cwv.csv", []string{"lcp_ms"}, nil)

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{name: "seconds under budget", value: "1.8", expected: true},   // 1800ms
		{name: "seconds over budget", value: "3.2", expected: false},   // 3200ms
		{name: "millis under budget", value: "1800", expected: true},   // already ms
		{name: "millis over budget", value: "4100", expected: false},   // already ms
		{name: "cutoff is seconds", value: "30", expected: false},      // 30000ms
		{name: "just past cutoff is millis", value: "31", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := schema.Row{"lcp_ms": cell(tt.value)}
			assert.Equal(t, tt.expected, matchPredicate(def.Predicate, row, ds))
		})
	}
}

// TestOptionalTermSkipped verifies that internal_linking ignores the
// unique_inlinks refinement when the export lacks the column, but
// enforces it when present.
func TestOptionalTermSkipped(t *testing.T) {
	def := metricByID["internal_linking"]

	t.Run("refinement column absent", func(t *testing.T) {
		ds := schema.NewDataset("links.csv", []string{"inlinks"}, []schema.Row{
			{"inlinks": cell("12")},
		})
		assert.Equal(t, 100, evaluateMetric(def, ds).Score)
	})

	t.Run("refinement column present and failing", func(t *testing.T) {
		ds := schema.NewDataset("links.csv", []string{"inlinks", "unique_inlinks"}, []schema.Row{
			{"inlinks": cell("12"), "unique_inlinks": cell("0")},
		})
		assert.Equal(t, 0, evaluateMetric(def, ds).Score)
	})
}

// TestMobileFriendlyAnyOf verifies the any-of column contract: either
// signal column is enough to evaluate, and either signal satisfies a row.
func TestMobileFriendlyAnyOf(t *testing.T) {
	def := metricByID["mobile_friendly"]

	t.Run("viewport only", func(t *testing.T) {
		ds := schema.NewDataset("mobile.csv", []string{"viewport_meta"}, []schema.Row{
			{"viewport_meta": cell("width=device-width")},
			{"viewport_meta": nullCell()},
		})
		assert.Equal(t, 50, evaluateMetric(def, ds).Score)
	})

	t.Run("neither column", func(t *testing.T) {
		ds := schema.NewDataset("mobile.csv", []string{"title"}, []schema.Row{
			{"title": cell("Home")},
		})
		assert.Equal(t, 0, evaluateMetric(def, ds).Score)
	})
}

// BenchmarkEvaluateMetric measures single-metric evaluation over a
// moderately sized dataset.
func BenchmarkEvaluateMetric(b *testing.B) {
	ds := titleDataset(10_000, 7_500)
	def := metricByID["meta_title"]

	for b.Loop() {
		evaluateMetric(def, ds)
	}
}
