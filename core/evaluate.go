package core

import (
	"strings"

	"github.com/crawlscore/crawlscore/schema"
)

// secondsCutoff separates seconds readings from millisecond readings for
// Core Web Vitals columns. No real LCP or FID measures 30ms or less, while
// seconds readings always do.
const secondsCutoff = 30.0

// evaluateMetric computes the 0-100 score of one metric against a dataset.
// Absent required columns score 0 rather than erroring: absence of a
// feature is scored as failing it. A zero-row dataset also scores 0 but is
// flagged as no-data so downstream weakness detection can skip it.
func evaluateMetric(def MetricDefinition, ds *schema.Dataset) schema.MetricScore {
	if !columnsAvailable(def, ds) {
		return schema.MetricScore{MetricID: def.ID, Score: 0}
	}
	total := ds.RowCount()
	if total == 0 {
		return schema.MetricScore{MetricID: def.ID, Score: 0, NoData: true}
	}

	matching := 0
	for _, row := range ds.Rows {
		if matchPredicate(def.Predicate, row, ds) {
			matching++
		}
	}
	score := roundHalfUp(100 * float64(matching) / float64(total))
	return schema.MetricScore{MetricID: def.ID, Score: score}
}

// columnsAvailable reports whether the dataset carries enough columns to
// evaluate the metric: all of Required, or at least one of AnyOf.
func columnsAvailable(def MetricDefinition, ds *schema.Dataset) bool {
	if len(def.AnyOf) > 0 {
		for _, col := range def.AnyOf {
			if ds.HasColumn(col) {
				return true
			}
		}
		return false
	}
	for _, col := range def.Required {
		if !ds.HasColumn(col) {
			return false
		}
	}
	return true
}

// matchPredicate interprets one predicate against a row.
func matchPredicate(p Predicate, row schema.Row, ds *schema.Dataset) bool {
	switch p.Kind {
	case PredicatePresent:
		return row[p.Column].Present()

	case PredicateRange:
		v, ok := row[p.Column].Float()
		if !ok {
			return false
		}
		if p.SecondsToMillis && v <= secondsCutoff {
			v *= 1000
		}
		return v >= p.Lo && v <= p.Hi

	case PredicateEquals:
		cell := row[p.Column]
		return !cell.Null && strings.TrimSpace(cell.Text) == p.Value

	case PredicateAll:
		for _, term := range p.Terms {
			if term.Optional && !ds.HasColumn(term.Column) {
				continue
			}
			if !matchPredicate(term, row, ds) {
				return false
			}
		}
		return true

	case PredicateAny:
		for _, term := range p.Terms {
			if term.Optional && !ds.HasColumn(term.Column) {
				continue
			}
			if matchPredicate(term, row, ds) {
				return true
			}
		}
		return false
	}
	return false
}
