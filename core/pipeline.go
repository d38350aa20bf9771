package core

import (
	"errors"

	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/schema"
)

// ErrMalformedDataset marks inputs that cannot be interpreted as rows and
// columns at all. In batch mode the error is recorded per file; in
// single-file mode it reaches the caller and no result is produced.
var ErrMalformedDataset = errors.New("malformed dataset")

// ScoreDataset runs the full pipeline for one dataset: evaluate every
// catalog metric, aggregate per category, weight the categories into an
// overall score, classify it and collect weaknesses. The function is pure:
// nothing is mutated after creation and no state survives the call.
func ScoreDataset(cfg *contract.Config, ds *schema.Dataset) (*schema.OverallResult, error) {
	if ds == nil {
		return nil, ErrMalformedDataset
	}
	if len(ds.Columns) == 0 && ds.RowCount() > 0 {
		return nil, ErrMalformedDataset
	}

	categories := make([]schema.CategoryScore, 0, len(schema.AllCategories))
	for _, cat := range schema.AllCategories {
		defs := CatalogFor(cat)
		metrics := make([]schema.MetricScore, 0, len(defs))
		for _, def := range defs {
			metrics = append(metrics, evaluateMetric(def, ds))
		}
		categories = append(categories, aggregateCategory(cat, metrics))
	}

	overall := overallScore(categories, cfg.Weights)
	return &schema.OverallResult{
		Score:      overall,
		Grade:      GradeFor(overall),
		Status:     StatusFor(overall),
		Categories: categories,
		Weaknesses: detectWeaknesses(categories, cfg.Alerts),
	}, nil
}
