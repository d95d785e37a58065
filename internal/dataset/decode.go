package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"
)

// decodeCSV reads comma-separated content with a header row. It also covers
// .txt uploads, which are treated as delimited text.
func decodeCSV(content []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, err
	}

	tbl, err := NewTable(header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cells := make([]Cell, len(record))
		for i, field := range record {
			cells[i] = ParseCell(field)
		}
		if err := tbl.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// decodeJSON accepts either an array of record objects or a single object
// mapping column names to value arrays.
func decodeJSON(content []byte) (*Table, error) {
	trimmed := bytes.TrimLeft(content, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	if trimmed[0] == '[' {
		return decodeJSONRecords(content)
	}
	return decodeJSONColumns(content)
}

func decodeJSONRecords(content []byte) (*Table, error) {
	var records []map[string]any
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found")
	}

	// Column order: keys of the first record, sorted for determinism since
	// JSON objects carry no order.
	names := make([]string, 0, len(records[0]))
	for name := range records[0] {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl, err := NewTable(names)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		cells := make([]Cell, len(names))
		for i, name := range names {
			cells[i] = cellFromJSON(rec[name])
		}
		if err := tbl.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func decodeJSONColumns(content []byte) (*Table, error) {
	var columns map[string][]any
	if err := json.Unmarshal(content, &columns); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns found")
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := len(columns[names[0]])
	for _, name := range names {
		if len(columns[name]) != rows {
			return nil, fmt.Errorf("column %s has %d values, expected %d", name, len(columns[name]), rows)
		}
	}

	tbl, err := NewTable(names)
	if err != nil {
		return nil, err
	}
	for row := 0; row < rows; row++ {
		cells := make([]Cell, len(names))
		for i, name := range names {
			cells[i] = cellFromJSON(columns[name][row])
		}
		if err := tbl.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func cellFromJSON(v any) Cell {
	switch val := v.(type) {
	case nil:
		return Missing()
	case float64:
		return Num(val)
	case bool:
		if val {
			return Num(1)
		}
		return Num(0)
	case string:
		return ParseCell(val)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}

// decodeXLSX reads the first sheet of an Office Open XML workbook.
func decodeXLSX(content []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	tbl, err := NewTable(rows[0])
	if err != nil {
		return nil, err
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		cells := make([]Cell, width)
		for i := 0; i < width; i++ {
			// Trailing empty cells are omitted by the reader.
			if i < len(row) {
				cells[i] = ParseCell(row[i])
			} else {
				cells[i] = Missing()
			}
		}
		if err := tbl.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// decodeLegacyWorkbook handles the pre-2007 binary .xls container, which the
// bundled workbook reader does not support.
func decodeLegacyWorkbook([]byte) (*Table, error) {
	return nil, fmt.Errorf("legacy binary workbooks are not decodable here; re-save the file as .xlsx or .csv")
}

// statDecoder returns a decoder for statistical-package formats that are
// recognized tags but have no bundled decoder. The failure is descriptive so
// the analyst knows the conversion path.
func statDecoder(format string) decoder {
	return func([]byte) (*Table, error) {
		return nil, fmt.Errorf("%s files require conversion before upload; export the data as CSV or XLSX", format)
	}
}
