// Package core implements the crawlscore scoring engine: metric evaluation,
// category aggregation, overall weighting, grading, weakness detection and
// batch comparison.
package core

import (
	"math"

	"github.com/crawlscore/crawlscore/schema"
)

// PredicateKind tags the rule variant a predicate evaluates.
type PredicateKind string

// All predicate kinds supported by the evaluator.
const (
	PredicatePresent PredicateKind = "present" // column holds a non-empty value
	PredicateRange   PredicateKind = "range"   // lo <= numeric value <= hi
	PredicateEquals  PredicateKind = "equals"  // text value equals a category value
	PredicateAll     PredicateKind = "all"     // every term matches
	PredicateAny     PredicateKind = "any"     // at least one term matches
)

// Predicate is one declaratively encoded row rule. Terms is only set for
// the all/any kinds; Lo/Hi only for range; Value only for equals.
type Predicate struct {
	Kind   PredicateKind
	Column string
	Lo     float64
	Hi     float64
	Value  string

	// SecondsToMillis scales readings that look like seconds (<= 30)
	// into milliseconds before the range check. Crawl exports report
	// Core Web Vitals in either unit depending on crawler version.
	SecondsToMillis bool

	// Optional marks a term that is skipped when its column is absent
	// from the dataset, instead of failing the row.
	Optional bool

	Terms []Predicate
}

// MetricDefinition describes one catalog entry. The catalog is fixed data
// interpreted by a single generic evaluator; adding or removing a metric
// is a data change, not new branching code.
type MetricDefinition struct {
	ID             string
	Category       schema.Category
	Required       []string // columns that must all be present to evaluate
	AnyOf          []string // alternative: at least one of these must be present
	Predicate      Predicate
	AlertThreshold int    // scores below this raise a weakness
	Weakness       string // canned message for the weakness report
}

// Default alert thresholds. Indexability alerts earlier because non-indexable
// pages invalidate every other optimization on them.
const (
	DefaultAlertThreshold      = 50
	IndexabilityAlertThreshold = 70
)

// inf aliases keep the catalog literals readable.
var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// catalog is the fixed metric catalog, in category then reporting order.
var catalog = []MetricDefinition{
	// --- Content ---
	{
		ID:       "meta_title",
		Category: schema.ContentCategory,
		Required: []string{"title", "title_length"},
		Predicate: Predicate{Kind: PredicateAll, Terms: []Predicate{
			{Kind: PredicatePresent, Column: "title"},
			{Kind: PredicateRange, Column: "title_length", Lo: 30, Hi: 60},
		}},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Short or missing meta titles.",
	},
	{
		ID:       "meta_description",
		Category: schema.ContentCategory,
		Required: []string{"description", "description_length"},
		Predicate: Predicate{Kind: PredicateAll, Terms: []Predicate{
			{Kind: PredicatePresent, Column: "description"},
			{Kind: PredicateRange, Column: "description_length", Lo: 120, Hi: 160},
		}},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Meta descriptions missing or outside the optimal length.",
	},
	{
		ID:             "h1_tags",
		Category:       schema.ContentCategory,
		Required:       []string{"h1"},
		Predicate:      Predicate{Kind: PredicatePresent, Column: "h1"},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Pages missing H1 tags.",
	},
	{
		ID:       "internal_linking",
		Category: schema.ContentCategory,
		Required: []string{"inlinks"},
		Predicate: Predicate{Kind: PredicateAll, Terms: []Predicate{
			{Kind: PredicateRange, Column: "inlinks", Lo: 1, Hi: posInf},
			{Kind: PredicateRange, Column: "unique_inlinks", Lo: 1, Hi: posInf, Optional: true},
		}},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Pages with weak internal linking.",
	},
	{
		ID:       "content_quality",
		Category: schema.ContentCategory,
		Required: []string{"word_count", "readability_score"},
		Predicate: Predicate{Kind: PredicateAll, Terms: []Predicate{
			{Kind: PredicateRange, Column: "word_count", Lo: 300, Hi: posInf},
			{Kind: PredicateRange, Column: "readability_score", Lo: 60, Hi: posInf},
		}},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Thin or hard-to-read content.",
	},

	// --- Technical ---
	{
		ID:             "response_time",
		Category:       schema.TechnicalCategory,
		Required:       []string{"response_time"},
		Predicate:      Predicate{Kind: PredicateRange, Column: "response_time", Lo: negInf, Hi: 1.0},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Slow server response times.",
	},
	{
		ID:             "status_codes",
		Category:       schema.TechnicalCategory,
		Required:       []string{"status_code"},
		Predicate:      Predicate{Kind: PredicateEquals, Column: "status_code", Value: "200"},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Pages returning non-200 status codes.",
	},
	{
		ID:             "indexability",
		Category:       schema.TechnicalCategory,
		Required:       []string{"indexability"},
		Predicate:      Predicate{Kind: PredicateEquals, Column: "indexability", Value: "Indexable"},
		AlertThreshold: IndexabilityAlertThreshold,
		Weakness:       "Pages not indexable.",
	},
	{
		ID:             "canonical_tags",
		Category:       schema.TechnicalCategory,
		Required:       []string{"canonical_url"},
		Predicate:      Predicate{Kind: PredicatePresent, Column: "canonical_url"},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Missing canonical tags.",
	},

	// --- UX ---
	{
		ID:       "mobile_friendly",
		Category: schema.UXCategory,
		AnyOf:    []string{"mobile_alt_link", "viewport_meta"},
		Predicate: Predicate{Kind: PredicateAny, Terms: []Predicate{
			{Kind: PredicatePresent, Column: "mobile_alt_link", Optional: true},
			{Kind: PredicatePresent, Column: "viewport_meta", Optional: true},
		}},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Pages not mobile friendly.",
	},
	{
		ID:             "largest_contentful_paint",
		Category:       schema.UXCategory,
		Required:       []string{"lcp_ms"},
		Predicate:      Predicate{Kind: PredicateRange, Column: "lcp_ms", Lo: negInf, Hi: 2500, SecondsToMillis: true},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Slow Largest Contentful Paint.",
	},
	{
		ID:             "cumulative_layout_shift",
		Category:       schema.UXCategory,
		Required:       []string{"cls"},
		Predicate:      Predicate{Kind: PredicateRange, Column: "cls", Lo: negInf, Hi: 0.1},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "Excessive layout shift.",
	},
	{
		ID:             "first_input_delay",
		Category:       schema.UXCategory,
		Required:       []string{"fid_ms"},
		Predicate:      Predicate{Kind: PredicateRange, Column: "fid_ms", Lo: negInf, Hi: 100, SecondsToMillis: true},
		AlertThreshold: DefaultAlertThreshold,
		Weakness:       "High First Input Delay.",
	},
}

// Catalog returns the fixed metric catalog in evaluation order.
func Catalog() []MetricDefinition {
	out := make([]MetricDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogFor returns the catalog entries of one category, in order.
func CatalogFor(cat schema.Category) []MetricDefinition {
	var out []MetricDefinition
	for _, def := range catalog {
		if def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}

// metricByID indexes the catalog for weakness lookups.
var metricByID = func() map[string]MetricDefinition {
	m := make(map[string]MetricDefinition, len(catalog))
	for _, def := range catalog {
		m[def.ID] = def
	}
	return m
}()
