// Package loader reads delimited crawl exports into datasets. It owns all
// input I/O so the scoring core stays free of file handling.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crawlscore/crawlscore/schema"
)

// MalformedError marks a file that cannot be interpreted as rows and
// columns at all. Batch runs record it per file instead of aborting.
type MalformedError struct {
	FileID string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed dataset %s: %s", e.FileID, e.Reason)
}

// headerAliases maps crawler export headers to canonical column ids.
// Screaming Frog names are the primary source; already-canonical names
// pass through untouched.
var headerAliases = map[string]string{
	"Title 1":                             "title",
	"Title 1 Length":                      "title_length",
	"Meta Description 1":                  "description",
	"Meta Description 1 Length":           "description_length",
	"H1-1":                                "h1",
	"Inlinks":                             "inlinks",
	"Unique Inlinks":                      "unique_inlinks",
	"Word Count":                          "word_count",
	"Flesch Reading Ease Score":           "readability_score",
	"Readability":                         "readability_score",
	"Response Time":                       "response_time",
	"Status Code":                         "status_code",
	"Indexability":                        "indexability",
	"Canonical Link Element 1":            "canonical_url",
	"Mobile Alternate Link":               "mobile_alt_link",
	"Meta Viewport 1":                     "viewport_meta",
	"Largest Contentful Paint Time (ms)":  "lcp_ms",
	"Largest Contentful Paint Time (sec)": "lcp_ms",
	"Cumulative Layout Shift":             "cls",
	"First Input Delay (ms)":              "fid_ms",
}

// nullMarkers are treated as missing values, matching what spreadsheet
// tools and pandas emit for empty cells.
var nullMarkers = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"null": {},
	"NULL": {},
	"None": {},
	"-":    {},
}

// LoadFile reads one crawl export from disk. maxRows bounds pathological
// inputs; rows past the ceiling fail the file rather than silently
// truncating the dataset.
func LoadFile(path string, maxRows int) (*schema.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MalformedError{FileID: path, Reason: err.Error()}
	}
	defer func() { _ = f.Close() }()
	return Load(path, f, maxRows)
}

// Load reads a delimited export from r into a Dataset. The delimiter is
// sniffed from the header line (tab wins over comma when both appear in
// tab-separated exports).
func Load(fileID string, r io.Reader, maxRows int) (*schema.Dataset, error) {
	buffered := newPeekReader(r)
	delim, err := sniffDelimiter(buffered)
	if err != nil {
		return nil, &MalformedError{FileID: fileID, Reason: err.Error()}
	}

	reader := csv.NewReader(buffered)
	reader.Comma = delim
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, &MalformedError{FileID: fileID, Reason: "missing header row"}
	}
	columns := normalizeHeader(header)

	var rows []schema.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedError{FileID: fileID, Reason: err.Error()}
		}
		if len(record) != len(columns) {
			return nil, &MalformedError{FileID: fileID, Reason: fmt.Sprintf("row %d has %d fields, header has %d", len(rows)+1, len(record), len(columns))}
		}
		if maxRows > 0 && len(rows) >= maxRows {
			return nil, &MalformedError{FileID: fileID, Reason: fmt.Sprintf("row count exceeds ceiling of %d", maxRows)}
		}
		rows = append(rows, buildRow(columns, record))
	}

	return schema.NewDataset(fileID, columns, rows), nil
}

// normalizeHeader maps export headers to canonical column ids. Unknown
// headers are lowercased with spaces collapsed to underscores so extra
// columns never break scoring.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		if canonical, ok := headerAliases[h]; ok {
			columns[i] = canonical
			continue
		}
		columns[i] = strings.ReplaceAll(strings.ToLower(h), " ", "_")
	}
	return columns
}

// buildRow converts one CSV record into a Row, marking null cells.
func buildRow(columns []string, record []string) schema.Row {
	row := make(schema.Row, len(columns))
	for i, col := range columns {
		value := record[i]
		if _, null := nullMarkers[strings.TrimSpace(value)]; null {
			row[col] = schema.Cell{Null: true}
			continue
		}
		row[col] = schema.Cell{Text: value}
	}
	return row
}

// sniffDelimiter inspects the first line without consuming it.
func sniffDelimiter(r *peekReader) (rune, error) {
	line, err := r.peekLine()
	if err != nil {
		return 0, fmt.Errorf("empty input")
	}
	if strings.ContainsRune(line, '\t') {
		return '\t', nil
	}
	return ',', nil
}
