// Package parser reads spreadsheet tables and turns them into region records.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractRows reads every row of a sheet.
// Cell values are returned raw (without number formats applied), so a
// percent-formatted 0.425 comes back as "0.425" rather than "42.5%".
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// NormalizePercent coerces a percentage-like cell into a number.
// A trailing (or any) percent sign is dropped. Empty, malformed, NaN,
// infinite and negative values all become 0.
func NormalizePercent(s string) float64 {
	v, _ := parsePercent(s)
	return v
}

// parsePercent is NormalizePercent that also reports whether the cell held a
// usable number. Empty cells are not reported as malformed.
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < 0 {
		return 0, false
	}
	return v, true
}
