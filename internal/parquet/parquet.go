// Package parquet exports batch scoring results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/crawlscore/crawlscore/schema"
	"github.com/parquet-go/parquet-go"
)

// BatchRecord represents one file outcome of a batch run in its flat
// export form. Failed files keep their error message and null scores.
type BatchRecord struct {
	// FileID is the file identifier in batch input order
	FileID string `parquet:"file_id,snappy"`

	// ScoredAt is when the batch was exported
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// OverallScore is the weighted overall score (nullable for failures)
	OverallScore *int32 `parquet:"overall_score,optional,snappy"`

	// Grade is the letter grade (nullable for failures)
	Grade *string `parquet:"grade,optional,snappy"`

	// Status is the Good/Medium/Bad bucket (nullable for failures)
	Status *string `parquet:"status,optional,snappy"`

	// ContentScore is the content category score (nullable for failures)
	ContentScore *int32 `parquet:"content_score,optional,snappy"`

	// TechnicalScore is the technical category score (nullable for failures)
	TechnicalScore *int32 `parquet:"technical_score,optional,snappy"`

	// UXScore is the UX category score (nullable for failures)
	UXScore *int32 `parquet:"ux_score,optional,snappy"`

	// WeaknessCount is the number of detected weaknesses
	WeaknessCount int32 `parquet:"weakness_count,snappy"`

	// Error holds the failure message for files that did not score
	Error *string `parquet:"error,optional,snappy"`
}

// ConvertBatchResult flattens a BatchResult into export records, one per
// file, preserving input order.
func ConvertBatchResult(batch *schema.BatchResult) []BatchRecord {
	now := time.Now()
	records := make([]BatchRecord, 0, len(batch.Outcomes))
	for _, o := range batch.Outcomes {
		rec := BatchRecord{FileID: o.FileID, ScoredAt: now}
		if o.Failed() {
			msg := o.Error
			rec.Error = &msg
			records = append(records, rec)
			continue
		}
		rec.OverallScore = int32Ptr(o.Result.Score)
		grade := string(o.Result.Grade)
		status := string(o.Result.Status)
		rec.Grade = &grade
		rec.Status = &status
		for _, cs := range o.Result.Categories {
			switch cs.Category {
			case schema.ContentCategory:
				rec.ContentScore = int32Ptr(cs.Score)
			case schema.TechnicalCategory:
				rec.TechnicalScore = int32Ptr(cs.Score)
			case schema.UXCategory:
				rec.UXScore = int32Ptr(cs.Score)
			}
		}
		rec.WeaknessCount = int32(len(o.Result.Weaknesses))
		records = append(records, rec)
	}
	return records
}

// WriteBatchParquet writes batch records to a Parquet file.
func WriteBatchParquet(data []BatchRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the BatchRecord struct tags.
	writer := parquet.NewGenericWriter[BatchRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

func int32Ptr(v int) *int32 {
	out := int32(v)
	return &out
}
