package dataset

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CSV(t *testing.T) {
	content := []byte("Mediator,IndependentVariable,DependentVariable\n1.2,3,4\n,2,5\n")

	tbl, err := Load("study.csv", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mediator", "IndependentVariable", "DependentVariable"}, tbl.Columns())
	assert.Equal(t, 2, tbl.NumRows())
	assert.True(t, tbl.Cell(1, 0).IsMissing())
}

func TestLoad_ExtensionCaseInsensitive(t *testing.T) {
	content := []byte("a,b\n1,2\n")

	tbl, err := Load("DATA.CSV", content)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.NumRows())
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("report.pdf", []byte("%PDF"))
	require.Error(t, err)

	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "pdf", ufe.Extension)
	assert.Contains(t, err.Error(), "PDF")
}

func TestLoad_ParseFailureIsTyped(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"malformed csv", "bad.csv", "a,b\n1,2,3\n"},
		{"empty csv", "empty.csv", ""},
		{"malformed json", "bad.json", "{not json"},
		{"stata placeholder", "panel.dta", "binary"},
		{"spss placeholder", "survey.sav", "binary"},
		{"sas placeholder", "clinical.sas7bdat", "binary"},
		{"legacy workbook", "old.xls", "binary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.filename, []byte(tt.content))
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe, "all decoder failures must be typed parse errors")
		})
	}
}

func TestLoad_JSONRecords(t *testing.T) {
	content := []byte(`[{"x": 1, "y": "a"}, {"x": null, "y": "b"}]`)

	tbl, err := Load("data.json", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, tbl.Columns())
	assert.Equal(t, 2, tbl.NumRows())
	assert.True(t, tbl.Cell(1, 0).IsMissing())

	v, ok := tbl.Cell(0, 0).Float()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestLoad_JSONColumns(t *testing.T) {
	content := []byte(`{"x": [1, 2], "y": ["a", "b"]}`)

	tbl, err := Load("data.json", content)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "a", tbl.Cell(0, 1).String())
}

func TestLoad_JSONColumnLengthMismatch(t *testing.T) {
	_, err := Load("data.json", []byte(`{"x": [1, 2], "y": [1]}`))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "expected")
}

func TestSupportedFormats(t *testing.T) {
	tags := SupportedFormats()
	for _, want := range []string{"csv", "txt", "xlsx", "xls", "sav", "por", "dta", "json", "sas7bdat"} {
		assert.Contains(t, tags, want)
	}
}

func TestCache_SameContentParsedOnce(t *testing.T) {
	c := NewCache(time.Minute)
	content := []byte("a,b\n1,2\n")

	first, err := c.Load("data.csv", content)
	require.NoError(t, err)

	second, err := c.Load("data.csv", content)
	require.NoError(t, err)

	// Content identity: the exact same parsed table is returned.
	assert.Same(t, first, second)
}

func TestCache_DifferentContentMisses(t *testing.T) {
	c := NewCache(time.Minute)

	first, err := c.Load("data.csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)

	second, err := c.Load("data.csv", []byte("a,b\n3,4\n"))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestContentKey_Deterministic(t *testing.T) {
	content := []byte(strings.Repeat("row,data\n", 100))
	assert.Equal(t, ContentKey("f.csv", content), ContentKey("f.csv", content))
	assert.NotEqual(t, ContentKey("f.csv", content), ContentKey("g.csv", content))
}

func TestLoad_WideCSV(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "v%d", i)
	}
	sb.WriteString("\n")
	for i := 0; i < 20; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%d", i)
	}
	sb.WriteString("\n")

	tbl, err := Load("wide.csv", []byte(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, 20, tbl.NumColumns())
	assert.Equal(t, 1, tbl.NumRows())
}
