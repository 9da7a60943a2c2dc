// Package regions filters region records down to a canonical list and orders
// them by that list.
package regions

import (
	"strings"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
)

// Selection is the outcome of Select.
type Selection struct {
	// Records are the matched records in canonical order.
	Records []models.RegionRecord
	// Missing lists canonical names with no matching record, in canonical order.
	Missing []string
	// Unmatched lists input names not in the canonical list, in input order.
	Unmatched []string
	// Duplicates lists names whose later records were dropped.
	Duplicates []string
}

// Key is the comparison key of a region name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Index maps each canonical key to its position. For repeated keys the first
// position is kept.
func Index(canonical []string) map[string]int {
	idx := make(map[string]int, len(canonical))
	for i, name := range canonical {
		k := Key(name)
		if _, ok := idx[k]; !ok {
			idx[k] = i
		}
	}
	return idx
}

// Select keeps the records whose name is in canonical and orders them by
// canonical position. When several records share a name the first one wins.
func Select(records []models.RegionRecord, canonical []string) Selection {
	idx := Index(canonical)
	slots := make([]*models.RegionRecord, len(canonical))

	var sel Selection
	seenUnmatched := make(map[string]bool)
	for i := range records {
		rec := &records[i]
		k := Key(rec.Name)
		if k == "" {
			continue
		}
		pos, ok := idx[k]
		if !ok {
			if !seenUnmatched[k] {
				seenUnmatched[k] = true
				sel.Unmatched = append(sel.Unmatched, rec.Name)
			}
			continue
		}
		if slots[pos] != nil {
			sel.Duplicates = append(sel.Duplicates, rec.Name)
			continue
		}
		slots[pos] = rec
	}

	for pos, rec := range slots {
		if rec == nil {
			if idx[Key(canonical[pos])] == pos {
				sel.Missing = append(sel.Missing, canonical[pos])
			}
			continue
		}
		sel.Records = append(sel.Records, *rec)
	}
	return sel
}
