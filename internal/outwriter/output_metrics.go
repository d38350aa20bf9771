package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crawlscore/crawlscore/core"
	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/schema"

	"github.com/olekukonko/tablewriter"
)

// metricsRenderModel is the JSON shape of the metrics listing.
type metricsRenderModel struct {
	Title   string                      `json:"title"`
	Weights map[schema.Category]float64 `json:"weights"`
	Metrics []metricRenderEntry         `json:"metrics"`
}

type metricRenderEntry struct {
	ID             string          `json:"id"`
	Category       schema.Category `json:"category"`
	Columns        []string        `json:"columns"`
	Predicate      string          `json:"predicate"`
	AlertThreshold int             `json:"alert_threshold"`
}

// writeMetrics prints the metric catalog. No scoring is performed; this is
// purely informational.
func writeMetrics(cfg *contract.Config) error {
	model := buildMetricsModel(cfg)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(model, cfg, w)
		}, "table")
	}
}

func buildMetricsModel(cfg *contract.Config) metricsRenderModel {
	model := metricsRenderModel{
		Title:   "crawlscore metric catalog",
		Weights: cfg.Weights,
	}
	for _, def := range core.Catalog() {
		columns := def.Required
		if len(def.AnyOf) > 0 {
			columns = def.AnyOf
		}
		threshold := def.AlertThreshold
		if override, ok := cfg.Alerts[def.ID]; ok {
			threshold = override
		}
		model.Metrics = append(model.Metrics, metricRenderEntry{
			ID:             def.ID,
			Category:       def.Category,
			Columns:        columns,
			Predicate:      describePredicate(def.Predicate),
			AlertThreshold: threshold,
		})
	}
	return model
}

func writeMetricsTable(model metricsRenderModel, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s\n", model.Title); err != nil {
		return err
	}
	for _, cat := range schema.AllCategories {
		if _, err := fmt.Fprintf(writer, "Weight %s: %.2f\n", cat, model.Weights[cat]); err != nil {
			return err
		}
	}
	fmt.Fprintln(writer)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Category", "Metric", "Columns", "Predicate", "Alert"})

	var data [][]string
	for _, m := range model.Metrics {
		data = append(data, []string{
			string(m.Category),
			m.ID,
			strings.Join(m.Columns, ", "),
			m.Predicate,
			strconv.Itoa(m.AlertThreshold),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// describePredicate renders a predicate as a compact human-readable rule.
func describePredicate(p core.Predicate) string {
	switch p.Kind {
	case core.PredicatePresent:
		return p.Column + " present"
	case core.PredicateRange:
		return describeRange(p)
	case core.PredicateEquals:
		return fmt.Sprintf("%s == %q", p.Column, p.Value)
	case core.PredicateAll:
		return joinTerms(p.Terms, " AND ")
	case core.PredicateAny:
		return joinTerms(p.Terms, " OR ")
	}
	return string(p.Kind)
}

func describeRange(p core.Predicate) string {
	hasLo := p.Lo > -1e308
	hasHi := p.Hi < 1e308
	switch {
	case hasLo && hasHi:
		return fmt.Sprintf("%v <= %s <= %v", p.Lo, p.Column, p.Hi)
	case hasLo:
		return fmt.Sprintf("%s >= %v", p.Column, p.Lo)
	case hasHi:
		return fmt.Sprintf("%s <= %v", p.Column, p.Hi)
	default:
		return p.Column + " numeric"
	}
}

func joinTerms(terms []core.Predicate, sep string) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		desc := describePredicate(t)
		if t.Optional {
			desc += " (if present)"
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, sep)
}
