// Package models defines data structures shared by the donut panel pipeline.
package models

// Source describes where a Table was read from.
type Source struct {
	// BookName is the input file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the table was read from (empty for CSV input).
	SheetName string `json:"sheet_name,omitempty"`
	// SheetFallback is true when no preferred sheet existed and the first sheet was used.
	SheetFallback bool `json:"sheet_fallback"`
	// HeaderRow is the 1-based row index of the header row.
	HeaderRow int `json:"header_row"`
}

// Table is a header row plus raw data rows as loaded from a sheet.
type Table struct {
	// Source records the workbook, sheet and header row.
	Source Source `json:"source"`
	// Headers contains trimmed header cells in column order.
	Headers []string `json:"headers"`
	// Rows contains raw cell strings; every row is padded to len(Headers).
	Rows [][]string `json:"rows"`
}

// RowNumber returns the 1-based sheet row index of data row i.
func (t *Table) RowNumber(i int) int {
	return t.Source.HeaderRow + 1 + i
}
