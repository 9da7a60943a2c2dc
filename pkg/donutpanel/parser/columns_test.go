package parser

import (
	"errors"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"VL_Perc", "vlperc"},
		{"vl perc", "vlperc"},
		{"VL-PERC", "vlperc"},
		{"  NAME_2 ", "name2"},
		{"Very Low (%)", "verylow"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := NormalizeHeader(tt.input); got != tt.expected {
			t.Errorf("NormalizeHeader(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestResolveColumnInsensitive(t *testing.T) {
	role := Role{Name: "very_low", Aliases: []string{"VL_Perc"}}

	for _, header := range []string{"VL_Perc", "vl perc", "VL-PERC"} {
		headers := []string{"County", header, "Other"}
		ref, err := ResolveColumn(headers, role)
		if err != nil {
			t.Fatalf("ResolveColumn with header %q failed: %v", header, err)
		}
		if ref.Index != 1 || ref.Header != header {
			t.Errorf("ResolveColumn with header %q = %+v, expected index 1", header, ref)
		}
	}
}

func TestResolveColumnAliasOrder(t *testing.T) {
	role := Role{Name: "region_name", Aliases: []string{"NAME_2", "County", "NAME"}}
	headers := []string{"NAME", "county", "VL_Perc"}

	ref, err := ResolveColumn(headers, role)
	if err != nil {
		t.Fatalf("ResolveColumn failed: %v", err)
	}
	// County is tried before NAME.
	if ref.Index != 1 {
		t.Errorf("Expected index 1, got %d", ref.Index)
	}
}

func TestResolveColumnLaterHeaderWins(t *testing.T) {
	role := Role{Name: "low", Aliases: []string{"L_Perc"}}
	headers := []string{"L_Perc", "l perc"}

	ref, err := ResolveColumn(headers, role)
	if err != nil {
		t.Fatalf("ResolveColumn failed: %v", err)
	}
	if ref.Index != 1 {
		t.Errorf("Expected index 1, got %d", ref.Index)
	}
}

func TestResolveColumnsMissing(t *testing.T) {
	region := Role{Name: "region_name", Aliases: []string{"NAME_2", "County"}}
	bands := []Role{
		{Name: "very_low", Aliases: []string{"VL_Perc"}},
		{Name: "low", Aliases: []string{"L_Perc", "Low"}},
	}

	_, err := ResolveColumns([]string{"County", "VL_Perc"}, region, bands)
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("Expected MissingColumnError, got %v", err)
	}
	if mce.Role != "low" {
		t.Errorf("Expected role 'low', got %q", mce.Role)
	}
	if len(mce.Variants) != 2 || mce.Variants[0] != "L_Perc" || mce.Variants[1] != "Low" {
		t.Errorf("Unexpected variants %v", mce.Variants)
	}

	cols, err := ResolveColumns([]string{"County", "VL_Perc", "low"}, region, bands)
	if err != nil {
		t.Fatalf("ResolveColumns failed: %v", err)
	}
	if cols.Region.Index != 0 || cols.Bands[0].Index != 1 || cols.Bands[1].Index != 2 {
		t.Errorf("Unexpected resolution %+v", cols)
	}
}
