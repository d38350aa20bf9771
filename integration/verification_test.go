//go:build basic

// Package integration contains integration tests for crawlscore.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScoreCommand scores a sample export and checks the report shape.
func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	export := writeSampleExport(t, dir, "site.csv")

	out, err := runCrawlscoreCommand(t, "score", export, "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "File: "+export)
	assert.Contains(t, out, "Overall:")
	assert.Contains(t, out, "content")
	assert.Contains(t, out, "technical")
}

// TestScoreCommandJSON verifies the JSON output parses and stays in range.
func TestScoreCommandJSON(t *testing.T) {
	dir := t.TempDir()
	export := writeSampleExport(t, dir, "site.csv")

	out, err := runCrawlscoreCommand(t, "score", export, "--output", "json")
	require.NoError(t, err)

	var result struct {
		Score      int    `json:"score"`
		Grade      string `json:"grade"`
		Status     string `json:"status"`
		Categories []struct {
			Category string `json:"category"`
			Score    int    `json:"score"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.NotEmpty(t, result.Grade)
	assert.Len(t, result.Categories, 3)
}

// TestBatchCommand verifies the batch comparison over mixed inputs.
func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeSampleExport(t, dir, "a.csv")
	b := writeSampleExport(t, dir, "b.csv")
	missing := filepath.Join(dir, "missing.csv")

	out, err := runCrawlscoreCommand(t, "batch", a, b, missing, "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "Scored 2 of 3 files.")
	assert.Contains(t, out, "Failed files:")
	assert.Contains(t, out, "missing.csv")
}

// TestBatchCommandParquet verifies the parquet export path.
func TestBatchCommandParquet(t *testing.T) {
	dir := t.TempDir()
	a := writeSampleExport(t, dir, "a.csv")
	outFile := filepath.Join(dir, "batch.parquet")

	out, err := runCrawlscoreCommand(t, "batch", a, "--output", "parquet", "--output-file", outFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 batch records")

	info, err := os.Stat(outFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestMetricsCommand lists the catalog.
func TestMetricsCommand(t *testing.T) {
	out, err := runCrawlscoreCommand(t, "metrics", "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "crawlscore metric catalog")
	assert.Contains(t, out, "meta_title")
	assert.Contains(t, out, "indexability")
}

// TestScoreCommandInvalidFile verifies a clean failure on unreadable input.
func TestScoreCommandInvalidFile(t *testing.T) {
	_, err := runCrawlscoreCommand(t, "score", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

// TestVersionCommand prints build details.
func TestVersionCommand(t *testing.T) {
	out, err := runCrawlscoreCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "crawlscore CLI")
	assert.Contains(t, out, "Version:")
}
