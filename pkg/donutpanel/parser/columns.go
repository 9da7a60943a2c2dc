package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/models"
)

// Role is a semantic column with its accepted header variants in preference order.
type Role struct {
	Name    string
	Aliases []string
}

// MissingColumnError reports a role none of whose header variants is present.
type MissingColumnError struct {
	Role     string
	Variants []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column for %s: none of %q found", e.Role, e.Variants)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeHeader lower-cases s and strips everything but [a-z0-9].
func NormalizeHeader(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// headerIndex maps normalized header keys to column indexes.
// A later header with the same key replaces an earlier one.
func headerIndex(headers []string) map[string]int {
	m := make(map[string]int, len(headers))
	for i, h := range headers {
		key := NormalizeHeader(h)
		if key == "" {
			continue
		}
		m[key] = i
	}
	return m
}

func resolve(index map[string]int, headers []string, role Role) (models.ColumnRef, error) {
	for _, alias := range role.Aliases {
		if i, ok := index[NormalizeHeader(alias)]; ok {
			return models.ColumnRef{Index: i, Header: headers[i]}, nil
		}
	}
	return models.ColumnRef{}, &MissingColumnError{Role: role.Name, Variants: role.Aliases}
}

// ResolveColumn finds the column for a single role.
func ResolveColumn(headers []string, role Role) (models.ColumnRef, error) {
	return resolve(headerIndex(headers), headers, role)
}

// ResolveColumns resolves the region role and every band role.
// It stops at the first role that cannot be resolved.
func ResolveColumns(headers []string, region Role, bands []Role) (models.ResolvedColumns, error) {
	index := headerIndex(headers)

	regionCol, err := resolve(index, headers, region)
	if err != nil {
		return models.ResolvedColumns{}, err
	}

	cols := models.ResolvedColumns{
		Region: regionCol,
		Bands:  make([]models.ColumnRef, 0, len(bands)),
	}
	for _, role := range bands {
		ref, err := resolve(index, headers, role)
		if err != nil {
			return models.ResolvedColumns{}, err
		}
		cols.Bands = append(cols.Bands, ref)
	}
	return cols, nil
}
