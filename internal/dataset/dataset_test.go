package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  CellKind
	}{
		{"integer", "42", KindNumeric},
		{"float", "3.14", KindNumeric},
		{"negative", "-0.5", KindNumeric},
		{"scientific", "1e-3", KindNumeric},
		{"text", "treatment", KindText},
		{"empty", "", KindMissing},
		{"na marker", "NA", KindMissing},
		{"nan marker", "NaN", KindMissing},
		{"null marker", "null", KindMissing},
		{"dot marker", ".", KindMissing},
		{"whitespace only", "   ", KindMissing},
		{"padded number", " 7 ", KindNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCell(tt.field).Kind())
		})
	}
}

func TestNewTable_RejectsInvalidColumns(t *testing.T) {
	_, err := NewTable([]string{"a", "b", "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column name")

	_, err = NewTable([]string{"a", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestTable_AppendRow_LengthMismatch(t *testing.T) {
	tbl, err := NewTable([]string{"x", "y"})
	require.NoError(t, err)

	err = tbl.AppendRow([]Cell{Num(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 columns")
}

func TestTable_Missing(t *testing.T) {
	tbl, err := NewTable([]string{"x", "y"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]Cell{Num(1), Num(2)}))
	require.NoError(t, tbl.AppendRow([]Cell{Missing(), Num(3)}))
	require.NoError(t, tbl.AppendRow([]Cell{Missing(), Missing()}))

	stats := tbl.Missing()
	assert.Equal(t, 3, stats.Cells)
	assert.Equal(t, 2, stats.Rows)
}

func TestTable_DropIncomplete(t *testing.T) {
	tbl, err := NewTable([]string{"x", "y"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]Cell{Num(1), Num(2)}))
	require.NoError(t, tbl.AppendRow([]Cell{Missing(), Num(3)}))
	require.NoError(t, tbl.AppendRow([]Cell{Num(4), Num(5)}))

	filtered := tbl.DropIncomplete()
	assert.Equal(t, 2, filtered.NumRows())
	// Original table untouched.
	assert.Equal(t, 3, tbl.NumRows())

	v, ok := filtered.Cell(1, 0).Float()
	require.True(t, ok)
	assert.Equal(t, 4.0, v)
}

func TestTable_RowOrderPreserved(t *testing.T) {
	tbl, err := NewTable([]string{"b", "a"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow([]Cell{Num(1), Str("one")}))

	assert.Equal(t, []string{"b", "a"}, tbl.Columns())
	row := tbl.Row(0)
	assert.Equal(t, "one", row[1].String())
}
