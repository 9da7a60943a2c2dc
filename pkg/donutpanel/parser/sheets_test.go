package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestChooseSheet(t *testing.T) {
	tests := []struct {
		sheets   []string
		prefs    []string
		name     string
		fallback bool
	}{
		{[]string{"Sheet1", "LGBM_FSM"}, []string{"LGBM_FSM"}, "LGBM_FSM", false},
		{[]string{"Sheet1", "lgbm_fsm"}, []string{"LGBM_FSM"}, "lgbm_fsm", false},
		{[]string{"Data", "Other"}, []string{"LGBM_FSM"}, "Data", true},
		{[]string{"A", "B", "C"}, []string{"C", "B"}, "C", false},
		{[]string{"A", "B"}, nil, "A", true},
	}

	for _, tt := range tests {
		choice, err := ChooseSheet(tt.sheets, tt.prefs)
		if err != nil {
			t.Fatalf("ChooseSheet(%v, %v) failed: %v", tt.sheets, tt.prefs, err)
		}
		if choice.Name != tt.name || choice.Fallback != tt.fallback {
			t.Errorf("ChooseSheet(%v, %v) = %+v, expected %q fallback=%v",
				tt.sheets, tt.prefs, choice, tt.name, tt.fallback)
		}
	}

	if _, err := ChooseSheet(nil, []string{"x"}); !errors.Is(err, ErrNoSheets) {
		t.Errorf("Expected ErrNoSheets, got %v", err)
	}
}

func TestOpenTableWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "ignored")
	if _, err := f.NewSheet("LGBM_FSM"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("LGBM_FSM", "A2", "NAME_2")
	f.SetCellValue("LGBM_FSM", "B2", "VL_Perc")
	f.SetCellValue("LGBM_FSM", "A3", "Polk")
	f.SetCellValue("LGBM_FSM", "B3", 12.5)

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	table, err := OpenTable(path, []string{"LGBM_FSM"})
	if err != nil {
		t.Fatalf("OpenTable failed: %v", err)
	}
	if table.Source.SheetName != "LGBM_FSM" || table.Source.SheetFallback {
		t.Errorf("Unexpected source %+v", table.Source)
	}
	if table.Source.BookName != "input.xlsx" {
		t.Errorf("Expected book name input.xlsx, got %q", table.Source.BookName)
	}
	if table.Source.HeaderRow != 2 {
		t.Errorf("Expected header row 2, got %d", table.Source.HeaderRow)
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "Polk" || table.Rows[0][1] != "12.5" {
		t.Errorf("Unexpected rows %q", table.Rows)
	}
}

func TestOpenTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "\ufeffCounty,VL_Perc\nPolk,42.5%\nLinn\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	table, err := OpenTable(path, nil)
	if err != nil {
		t.Fatalf("OpenTable failed: %v", err)
	}
	if table.Headers[0] != "County" {
		t.Errorf("Expected BOM stripped header, got %q", table.Headers[0])
	}
	if table.Source.SheetName != "" {
		t.Errorf("Expected no sheet name for CSV, got %q", table.Source.SheetName)
	}
	if len(table.Rows) != 2 || table.Rows[1][1] != "" {
		t.Errorf("Unexpected rows %q", table.Rows)
	}
}

func TestOpenTableUnsupported(t *testing.T) {
	_, err := OpenTable("data.ods", nil)
	if !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("Expected ErrUnsupportedInput, got %v", err)
	}
}
