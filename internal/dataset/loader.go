package dataset

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// UnsupportedFormatError is returned when an upload's extension does not
// match any registered format tag.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (supported: %s)",
		strings.ToUpper(e.Extension), strings.Join(SupportedFormats(), ", "))
}

// ParseError is returned when a decoder recognizes the format but cannot
// produce a table from the content.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s data: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// decoder turns raw file content into a Table.
type decoder func(content []byte) (*Table, error)

// decoders maps a lowercase extension (without the dot) to its decoder.
var decoders = map[string]decoder{
	"csv":      decodeCSV,
	"txt":      decodeCSV,
	"json":     decodeJSON,
	"xlsx":     decodeXLSX,
	"xls":      decodeLegacyWorkbook,
	"sav":      statDecoder("SPSS"),
	"por":      statDecoder("SPSS portable"),
	"dta":      statDecoder("Stata"),
	"sas7bdat": statDecoder("SAS"),
}

// SupportedFormats returns the registered format tags in sorted order.
func SupportedFormats() []string {
	tags := make([]string, 0, len(decoders))
	for tag := range decoders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Load sniffs the format from the filename extension (case-insensitive) and
// decodes the content into a Table. All failures are typed: either an
// *UnsupportedFormatError or a *ParseError, never an uncaught panic.
func Load(filename string, content []byte) (*Table, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	dec, ok := decoders[ext]
	if !ok {
		return nil, &UnsupportedFormatError{Extension: ext}
	}
	tbl, err := dec(content)
	if err != nil {
		return nil, &ParseError{Format: ext, Err: err}
	}
	return tbl, nil
}
