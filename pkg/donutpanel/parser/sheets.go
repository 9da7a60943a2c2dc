package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrUnsupportedInput indicates the input file extension is not readable.
var ErrUnsupportedInput = errors.New("unsupported input format")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// SheetChoice is the sheet picked from a workbook.
type SheetChoice struct {
	// Name is the chosen sheet name.
	Name string
	// Fallback is true when no preferred sheet was present.
	Fallback bool
}

// ChooseSheet applies an ordered preference list to the workbook's sheets.
// Each preference is tried in order, first by exact name then
// case-insensitively. If none is present the first sheet is used.
func ChooseSheet(sheets []string, prefs []string) (SheetChoice, error) {
	if len(sheets) == 0 {
		return SheetChoice{}, ErrNoSheets
	}

	for _, pref := range prefs {
		for _, s := range sheets {
			if s == pref {
				return SheetChoice{Name: s}, nil
			}
		}
		for _, s := range sheets {
			if strings.EqualFold(s, pref) {
				return SheetChoice{Name: s}, nil
			}
		}
	}

	return SheetChoice{Name: sheets[0], Fallback: true}, nil
}

// OpenTable loads the table of an xlsx workbook or a CSV file.
// For workbooks the sheet is picked with ChooseSheet.
func OpenTable(path string, prefs []string) (*models.Table, error) {
	src := models.Source{BookName: filepath.Base(path)}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err := ReadCSV(path)
		if err != nil {
			return nil, err
		}
		return BuildTable(rows, src)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return openWorkbookTable(path, prefs, src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, filepath.Ext(path))
	}
}

func openWorkbookTable(path string, prefs []string, src models.Source) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	choice, err := ChooseSheet(f.GetSheetList(), prefs)
	if err != nil {
		return nil, err
	}
	src.SheetName = choice.Name
	src.SheetFallback = choice.Fallback

	rows, err := ExtractRows(f, choice.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", choice.Name, err)
	}
	return BuildTable(rows, src)
}
