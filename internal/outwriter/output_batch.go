package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/crawlscore/crawlscore/core/algo"
	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/internal/parquet"
	"github.com/crawlscore/crawlscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeBatch dispatches a batch result based on the output format.
func writeBatch(batch *schema.BatchResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, batch)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchCSV(w, batch)
		}, "CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		rows := parquet.ConvertBatchResult(batch)
		if err := parquet.WriteBatchParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Exported %d batch records to: %s\n", len(rows), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(batch, cfg, fmtFloat, w)
		}, "table")
	}
}

// writeBatchTable generates the human-readable batch comparison. The
// per-file rows follow input order unless a ranked view was requested;
// the underlying BatchResult stays input-ordered either way.
func writeBatchTable(batch *schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	outcomes := batch.Outcomes
	if cfg.Ranked {
		outcomes = algo.RankOutcomes(batch.Outcomes, cfg.Limit)
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "File", "Score", "Grade", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	pathWidth := getMaxTablePathWidth()
	var data [][]string
	for i, o := range outcomes {
		if o.Failed() {
			continue
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(o.FileID, pathWidth),
			strconv.Itoa(o.Result.Score),
			string(o.Result.Grade),
			contract.StatusLabel(o.Result.Status, cfg.Color),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if failures := batch.Failures(); len(failures) > 0 {
		if _, err := fmt.Fprintln(writer, "\nFailed files:"); err != nil {
			return err
		}
		for _, o := range failures {
			if _, err := fmt.Fprintf(writer, "  - %s: %s\n", o.FileID, o.Error); err != nil {
				return err
			}
		}
	}

	if batch.Summary == nil {
		_, err := fmt.Fprintln(writer, "\nNo files scored successfully; summary statistics are unavailable.")
		return err
	}
	s := batch.Summary
	_, err := fmt.Fprintf(writer, "\nScored %d of %d files. Average: %s, best: %d (%s), worst: %d (%s)\n",
		s.Scored, s.Scored+s.Failed, fmtFloat(s.Average), s.Best, s.BestFile, s.Worst, s.WorstFile)
	return err
}

// writeBatchCSV writes one row per file, scored or failed.
func writeBatchCSV(w io.Writer, batch *schema.BatchResult) error {
	header := []string{
		"file",
		"score",
		"grade",
		"status",
		"content",
		"technical",
		"ux",
		"weaknesses",
		"error",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, o := range batch.Outcomes {
			if o.Failed() {
				rec := []string{o.FileID, "", "", "", "", "", "", "", o.Error}
				if err := cw.Write(rec); err != nil {
					return err
				}
				continue
			}
			rec := []string{
				o.FileID,
				strconv.Itoa(o.Result.Score),
				string(o.Result.Grade),
				string(o.Result.Status),
			}
			for _, cat := range schema.AllCategories {
				rec = append(rec, strconv.Itoa(categoryScore(o.Result, cat)))
			}
			rec = append(rec, strconv.Itoa(len(o.Result.Weaknesses)), "")
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// categoryScore pulls one category's score out of a result.
func categoryScore(result *schema.OverallResult, cat schema.Category) int {
	for _, cs := range result.Categories {
		if cs.Category == cat {
			return cs.Score
		}
	}
	return 0
}
