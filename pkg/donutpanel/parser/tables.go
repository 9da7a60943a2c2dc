package parser

import (
	"errors"
	"strings"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
)

// ErrEmptyTable indicates the sheet has no header row.
var ErrEmptyTable = errors.New("table has no header row")

// BuildTable turns raw sheet rows into a Table.
// The header row is the first non-empty row; every row below it becomes a
// data row padded (or cut) to the table width.
func BuildTable(rows [][]string, src models.Source) (*models.Table, error) {
	minRow, maxRow, _, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, ErrEmptyTable
	}

	width := maxCol + 1
	headers := make([]string, width)
	for i, h := range rows[minRow] {
		headers[i] = strings.TrimSpace(h)
	}

	var data [][]string
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := make([]string, width)
		copy(row, rows[rowIdx])
		data = append(data, row)
	}

	src.HeaderRow = minRow + 1
	return &models.Table{
		Source:  src,
		Headers: headers,
		Rows:    data,
	}, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
