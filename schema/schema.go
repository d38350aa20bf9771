// Package schema has configs, models and constants for all parts of crawlscore.
package schema

import (
	"strconv"
	"strings"
)

// Cell is a single value from a crawl export. Null marks a missing value,
// which loaders produce for empty fields and explicit null markers.
type Cell struct {
	Text string // Raw text value as it appeared in the export
	Null bool   // True when the value was missing or an explicit null marker
}

// Present reports whether the cell holds a non-empty value.
func (c Cell) Present() bool {
	return !c.Null && strings.TrimSpace(c.Text) != ""
}

// Float parses the cell as a number. The second return value is false
// for null cells and non-numeric text.
func (c Cell) Float() (float64, bool) {
	if c.Null {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Row maps canonical column ids to cells. Columns absent from the export
// are absent from the map entirely.
type Row map[string]Cell

// Dataset is an immutable snapshot of one crawl export: an ordered set of
// named columns and zero or more rows. The column set varies between
// exports; metric evaluation must tolerate any subset.
type Dataset struct {
	Name    string   // File identifier the dataset was loaded from
	Columns []string // Canonical column ids in export order
	Rows    []Row    // Row data keyed by canonical column id

	columnSet map[string]struct{}
}

// NewDataset builds a Dataset and indexes its columns for lookup.
func NewDataset(name string, columns []string, rows []Row) *Dataset {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return &Dataset{Name: name, Columns: columns, Rows: rows, columnSet: set}
}

// HasColumn reports whether the dataset carries the given canonical column.
func (d *Dataset) HasColumn(name string) bool {
	if d.columnSet == nil {
		// Datasets constructed literally (tests) fall back to a scan.
		for _, c := range d.Columns {
			if c == name {
				return true
			}
		}
		return false
	}
	_, ok := d.columnSet[name]
	return ok
}

// RowCount returns the number of rows in the dataset.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}
