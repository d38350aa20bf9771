// Package outwriter has output and writer logic for scoring results.
package outwriter

import (
	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the output formats and keeps rendering fully derived
// from the result structs; nothing here re-runs scoring logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResult prints a single-file scoring result using the configured
// output format.
func (ow *OutWriter) WriteResult(fileID string, result *schema.OverallResult, cfg *contract.Config) error {
	return writeResult(fileID, result, cfg)
}

// WriteBatch prints a batch comparison using the configured output format.
func (ow *OutWriter) WriteBatch(batch *schema.BatchResult, cfg *contract.Config) error {
	return writeBatch(batch, cfg)
}

// WriteMetrics prints the metric catalog definitions.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return writeMetrics(cfg)
}
