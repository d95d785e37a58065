// Package dataset provides the in-memory tabular dataset used for model
// fitting, together with format-sniffing loaders for uploaded files.
package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	// KindMissing marks an absent value (empty field, NA marker).
	KindMissing CellKind = iota
	// KindNumeric marks a parsed floating point value.
	KindNumeric
	// KindText marks a value carried through as its original text.
	KindText
)

// Cell is a single table value. The variant is decided once at load time so
// downstream consumers never re-probe the dynamic type.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// Num returns a numeric cell.
func Num(v float64) Cell { return Cell{kind: KindNumeric, num: v} }

// Str returns a text cell.
func Str(s string) Cell { return Cell{kind: KindText, text: s} }

// Missing returns a missing-value cell.
func Missing() Cell { return Cell{kind: KindMissing} }

// Kind returns the cell's variant tag.
func (c Cell) Kind() CellKind { return c.kind }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// Float returns the numeric value and whether the cell is numeric.
func (c Cell) Float() (float64, bool) {
	return c.num, c.kind == KindNumeric
}

// String renders the cell for display.
func (c Cell) String() string {
	switch c.kind {
	case KindNumeric:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindText:
		return c.text
	default:
		return ""
	}
}

// missingMarkers are field spellings treated as absent values, matching what
// the statistical tooling this feeds emits.
var missingMarkers = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	".":    {},
}

// ParseCell converts a raw text field into a Cell, classifying it as
// missing, numeric or text.
func ParseCell(field string) Cell {
	trimmed := strings.TrimSpace(field)
	if _, ok := missingMarkers[strings.ToLower(trimmed)]; ok {
		return Missing()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Num(v)
	}
	return Str(trimmed)
}

// Table is an immutable, column-ordered dataset. Column names are unique and
// every column holds the same number of rows.
type Table struct {
	names   []string
	columns [][]Cell
}

// NewTable creates an empty table with the given column names.
func NewTable(names []string) (*Table, error) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return nil, fmt.Errorf("column name cannot be empty")
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("duplicate column name: %s", n)
		}
		seen[n] = struct{}{}
	}
	t := &Table{
		names:   append([]string(nil), names...),
		columns: make([][]Cell, len(names)),
	}
	return t, nil
}

// AppendRow adds one row of cells aligned with the column order.
func (t *Table) AppendRow(cells []Cell) error {
	if len(cells) != len(t.names) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.names))
	}
	for i, c := range cells {
		t.columns[i] = append(t.columns[i], c)
	}
	return nil
}

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.names) }

// NumRows returns the row count.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0])
}

// Cell returns the value at (row, col). Out-of-range access is a programming
// error and panics, as with a slice.
func (t *Table) Cell(row, col int) Cell {
	return t.columns[col][row]
}

// Row returns one row of cells in column order.
func (t *Table) Row(row int) []Cell {
	cells := make([]Cell, len(t.names))
	for i := range t.names {
		cells[i] = t.columns[i][row]
	}
	return cells
}

// MissingStats summarizes missing values in the table.
type MissingStats struct {
	// Cells is the total number of missing cells.
	Cells int
	// Rows is the number of rows with at least one missing cell.
	Rows int
}

// Missing scans the table for absent values. Missing-value detection is a
// responsibility of this package, not of the individual format decoders.
func (t *Table) Missing() MissingStats {
	var stats MissingStats
	for row := 0; row < t.NumRows(); row++ {
		rowHasMissing := false
		for col := range t.names {
			if t.columns[col][row].IsMissing() {
				stats.Cells++
				rowHasMissing = true
			}
		}
		if rowHasMissing {
			stats.Rows++
		}
	}
	return stats
}

// DropIncomplete returns a new table containing only complete cases: rows
// with no missing value in any column. The receiver is left untouched.
func (t *Table) DropIncomplete() *Table {
	out := &Table{
		names:   append([]string(nil), t.names...),
		columns: make([][]Cell, len(t.names)),
	}
	for row := 0; row < t.NumRows(); row++ {
		complete := true
		for col := range t.names {
			if t.columns[col][row].IsMissing() {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for col := range t.names {
			out.columns[col] = append(out.columns[col], t.columns[col][row])
		}
	}
	return out
}
