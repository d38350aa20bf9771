package core

import (
	"strconv"

	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/schema"
)

// testConfig returns a scoring config with default weights and no
// threshold overrides, as ProcessAndValidate would produce.
func testConfig() *contract.Config {
	return &contract.Config{
		Weights: contract.DefaultWeights(),
		Alerts:  map[string]int{},
		Workers: 4,
	}
}

// cell builds a present cell holding the given text.
func cell(text string) schema.Cell {
	return schema.Cell{Text: text}
}

// nullCell builds a missing value.
func nullCell() schema.Cell {
	return schema.Cell{Null: true}
}

// titleDataset builds rows with title always present and title_length in
// the optimal range for the first inRange rows.
func titleDataset(total, inRange int) *schema.Dataset {
	rows := make([]schema.Row, 0, total)
	for i := range total {
		length := "45"
		if i >= inRange {
			length = "10"
		}
		rows = append(rows, schema.Row{
			"title":        cell("Page " + strconv.Itoa(i)),
			"title_length": cell(length),
		})
	}
	return schema.NewDataset("titles.csv", []string{"title", "title_length"}, rows)
}
