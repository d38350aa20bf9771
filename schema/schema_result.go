package schema

// MetricScore is the result of evaluating one metric against a dataset.
type MetricScore struct {
	MetricID string `json:"metric_id"` // Metric identifier from the catalog
	Score    int    `json:"score"`     // Percentage of rows passing the predicate (0-100)
	NoData   bool   `json:"no_data,omitempty"` // True when the dataset had zero rows
}

// CategoryScore aggregates the metric scores of one category.
type CategoryScore struct {
	Category Category      `json:"category"` // Category identifier
	Score    int           `json:"score"`    // Rounded mean of the metric scores (0-100)
	Metrics  []MetricScore `json:"metrics"`  // Per-metric scores in catalog order
}

// OverallResult is the complete scoring output for a single dataset.
// It is the sole data contract consumed by report builders; every output
// format must be derivable from it without re-running scoring.
type OverallResult struct {
	Score      int             `json:"score"`      // Weighted overall score (0-100)
	Grade      Grade           `json:"grade"`      // Letter grade (A+ through F)
	Status     Status          `json:"status"`     // Good, Medium or Bad
	Categories []CategoryScore `json:"categories"` // Category scores in reporting order
	Weaknesses []string        `json:"weaknesses"` // Human-readable weakness messages, ordered
}
