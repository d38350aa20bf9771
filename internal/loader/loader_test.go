package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadHeaderNormalization verifies Screaming Frog header aliasing and
// the lowercase fallback for unknown columns.
func TestLoadHeaderNormalization(t *testing.T) {
	input := "Address,Title 1,Title 1 Length,Status Code,Custom Extraction 1\n" +
		"https://example.com/,Home,4,200,x\n"

	ds, err := Load("export.csv", strings.NewReader(input), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"address", "title", "title_length", "status_code", "custom_extraction_1"}, ds.Columns)
	assert.True(t, ds.HasColumn("title"))
	assert.False(t, ds.HasColumn("Title 1"))
}

// TestLoadBOMStripped verifies that a UTF-8 BOM on the first header does
// not break aliasing.
func TestLoadBOMStripped(t *testing.T) {
	input := "\uFEFFTitle 1,Status Code\nHome,200\n"

	ds, err := Load("bom.csv", strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "status_code"}, ds.Columns)
}

// TestLoadNullMarkers verifies that empty fields and conventional null
// markers become null cells while real values survive.
func TestLoadNullMarkers(t *testing.T) {
	input := "Title 1,Inlinks,Word Count,H1-1\n" +
		"Home,NA,null,-\n" +
		"About,12,850,Header\n"

	ds, err := Load("nulls.csv", strings.NewReader(input), 0)
	require.NoError(t, err)
	require.Equal(t, 2, ds.RowCount())

	first := ds.Rows[0]
	assert.True(t, first["title"].Present())
	assert.True(t, first["inlinks"].Null)
	assert.True(t, first["word_count"].Null)
	assert.True(t, first["h1"].Null)

	second := ds.Rows[1]
	v, ok := second["inlinks"].Float()
	assert.True(t, ok)
	assert.Equal(t, 12.0, v)
}

// TestLoadTabDelimited verifies delimiter sniffing on TSV exports, which
// may also carry commas inside fields.
func TestLoadTabDelimited(t *testing.T) {
	input := "Title 1\tStatus Code\n" +
		"Home, sweet home\t200\n"

	ds, err := Load("export.tsv", strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "status_code"}, ds.Columns)
	assert.Equal(t, "Home, sweet home", ds.Rows[0]["title"].Text)
}

// TestLoadMalformed verifies the failure modes that mark a file malformed.
func TestLoadMalformed(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Load("empty.csv", strings.NewReader(""), 0)
		var merr *MalformedError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "empty.csv", merr.FileID)
	})

	t.Run("inconsistent field count", func(t *testing.T) {
		input := "Title 1,Status Code\nHome,200\nAbout\n"
		_, err := Load("ragged.csv", strings.NewReader(input), 0)
		var merr *MalformedError
		require.ErrorAs(t, err, &merr)
		assert.Contains(t, merr.Reason, "fields")
	})

	t.Run("row ceiling exceeded", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("Title 1\n")
		for range 5 {
			sb.WriteString("Home\n")
		}
		_, err := Load("big.csv", strings.NewReader(sb.String()), 3)
		var merr *MalformedError
		require.ErrorAs(t, err, &merr)
		assert.Contains(t, merr.Reason, "ceiling")
	})
}

// TestLoadHeaderOnly verifies that a file with a header and no rows loads
// as an empty dataset rather than failing.
func TestLoadHeaderOnly(t *testing.T) {
	ds, err := Load("header.csv", strings.NewReader("Title 1,Status Code\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.RowCount())
	assert.Equal(t, []string{"title", "status_code"}, ds.Columns)
}

// TestLoadFile verifies the disk path, including missing files.
func TestLoadFile(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "export.csv")
		content := "Title 1,Status Code\nHome,200\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		ds, err := LoadFile(path, 0)
		require.NoError(t, err)
		assert.Equal(t, path, ds.Name)
		assert.Equal(t, 1, ds.RowCount())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), 0)
		var merr *MalformedError
		require.ErrorAs(t, err, &merr)
	})
}

// TestLoadQuotedFields verifies that quoted commas and embedded quotes
// survive loading.
func TestLoadQuotedFields(t *testing.T) {
	input := `Title 1,Meta Description 1
"Shoes, boots and more","The ""best"" shop in town"
`
	ds, err := Load("quoted.csv", strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Equal(t, "Shoes, boots and more", ds.Rows[0]["title"].Text)
	assert.Equal(t, `The "best" shop in town`, ds.Rows[0]["description"].Text)
}
