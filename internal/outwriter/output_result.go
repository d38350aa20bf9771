package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeResult dispatches a single-file result based on the output format.
func writeResult(fileID string, result *schema.OverallResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultCSV(w, result)
		}, "CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available for batch runs")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultTable(fileID, result, cfg, w)
		}, "table")
	}
}

// writeResultTable generates the human-readable report for one file.
func writeResultTable(fileID string, result *schema.OverallResult, cfg *contract.Config, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "File: %s\n", fileID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Overall: %d  Grade: %s  Status: %s\n\n",
		result.Score, result.Grade, contract.StatusLabel(result.Status, cfg.Color)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	headers := []string{"Category", "Score"}
	if cfg.Detail {
		headers = []string{"Category", "Metric", "Score"}
	}
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, cs := range result.Categories {
		if cfg.Detail {
			for _, ms := range cs.Metrics {
				score := strconv.Itoa(ms.Score)
				if ms.NoData {
					score = "n/a"
				}
				data = append(data, []string{string(cs.Category), ms.MetricID, score})
			}
			data = append(data, []string{string(cs.Category), "(category)", strconv.Itoa(cs.Score)})
		} else {
			data = append(data, []string{string(cs.Category), strconv.Itoa(cs.Score)})
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if cfg.ShowWeaknesses {
		if len(result.Weaknesses) == 0 {
			_, err := fmt.Fprintln(writer, "\nNo weaknesses detected.")
			return err
		}
		if _, err := fmt.Fprintln(writer, "\nWeaknesses:"); err != nil {
			return err
		}
		for _, weakness := range result.Weaknesses {
			if _, err := fmt.Fprintf(writer, "  - %s\n", weakness); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeResultCSV writes a flat metric-level CSV of the result. The overall
// columns repeat per row so the file stays self-describing when filtered.
func writeResultCSV(w io.Writer, result *schema.OverallResult) error {
	header := []string{
		"category",
		"metric",
		"metric_score",
		"category_score",
		"overall_score",
		"grade",
		"status",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cs := range result.Categories {
			for _, ms := range cs.Metrics {
				rec := []string{
					string(cs.Category),
					ms.MetricID,
					strconv.Itoa(ms.Score),
					strconv.Itoa(cs.Score),
					strconv.Itoa(result.Score),
					string(result.Grade),
					string(result.Status),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
