package regions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
)

var iowa = []string{
	"Louisa", "Black Hawk", "Des Moines", "Henry", "Muscatine",
	"Washington", "Monona", "Fremont", "Linn", "Polk",
	"Van Buren", "Greene", "Clinton", "Scott", "Jefferson",
	"Marshall", "Butler", "Bremer", "Johnson", "Jasper",
}

func rec(name string, vals ...float64) models.RegionRecord {
	return models.RegionRecord{Name: name, Values: vals}
}

func names(recs []models.RegionRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func TestSelectOrdersByCanonicalList(t *testing.T) {
	sel := Select([]models.RegionRecord{
		rec("Polk", 1),
		rec("Louisa", 2),
		rec("Unknown County", 3),
	}, iowa)

	if diff := cmp.Diff([]string{"Louisa", "Polk"}, names(sel.Records)); diff != "" {
		t.Errorf("selected regions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Unknown County"}, sel.Unmatched)
	assert.Len(t, sel.Missing, 18)
	assert.Equal(t, "Black Hawk", sel.Missing[0])
	assert.Empty(t, sel.Duplicates)
}

func TestSelectCaseAndWhitespaceInsensitive(t *testing.T) {
	sel := Select([]models.RegionRecord{
		rec("  black hawk ", 1),
		rec("VAN BUREN", 2),
	}, iowa)

	require.Len(t, sel.Records, 2)
	// Display names come from the source, not the canonical list.
	assert.Equal(t, []string{"  black hawk ", "VAN BUREN"}, names(sel.Records))
}

func TestSelectKeepsFirstDuplicate(t *testing.T) {
	sel := Select([]models.RegionRecord{
		rec("Linn", 1),
		rec("linn", 2),
		rec("Scott", 3),
	}, iowa)

	require.Len(t, sel.Records, 2)
	assert.Equal(t, 1.0, sel.Records[0].Values[0])
	assert.Equal(t, []string{"linn"}, sel.Duplicates)
}

func TestSelectNeverPads(t *testing.T) {
	sel := Select(nil, iowa)
	assert.Empty(t, sel.Records)
	assert.Equal(t, iowa, sel.Missing)

	var all []models.RegionRecord
	for i := len(iowa) - 1; i >= 0; i-- {
		all = append(all, rec(iowa[i], float64(i)))
	}
	all = append(all, rec("Story", 99))
	sel = Select(all, iowa)
	if diff := cmp.Diff(iowa, names(sel.Records)); diff != "" {
		t.Errorf("selected regions mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, sel.Missing)
}

func TestSelectSkipsBlankNames(t *testing.T) {
	sel := Select([]models.RegionRecord{rec("   ", 1), rec("", 2)}, iowa)
	assert.Empty(t, sel.Records)
	assert.Empty(t, sel.Unmatched)
}

func TestIndexKeepsFirstPosition(t *testing.T) {
	idx := Index([]string{"A", "b", "a"})
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, idx)
}
