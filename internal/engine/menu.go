package engine

import (
	"strconv"
	"strings"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// proteinColumns are the protein-bearing composition columns, checked in
// order; the first present, positive value wins.
var proteinColumns = []string{
	"braised beef used (g)",
	"Braised Chicken(g)",
	"Braised Pork(g)",
}

// unitSuffixes are the unit annotations stripped from displayed column names.
var unitSuffixes = []string{"(g)", "(count)", "(pcs)"}

const maxKeyIngredients = 4

// MenuMatrixEntry is one row of the menu complexity table.
type MenuMatrixEntry struct {
	MenuItem       string `json:"menuItem"`
	KeyIngredients string `json:"keyIngredients"`
	Protein        string `json:"protein"`
	Complexity     string `json:"complexity"`
}

// MenuMatrix derives, per menu item, its used-ingredient list, dominant
// protein quantity, and a complexity tier from the wide composition table.
// A column counts as used when its cell is present and not numerically zero.
func MenuMatrix(t *dataset.MenuTable) []MenuMatrixEntry {
	matrix := []MenuMatrixEntry{}
	if t == nil {
		return matrix
	}

	for _, row := range t.Rows {
		var used []string
		for i, col := range t.Columns {
			if i < len(row.Cells) && cellUsed(row.Cells[i]) {
				used = append(used, stripUnitSuffix(col))
			}
		}

		key := used
		if len(key) > maxKeyIngredients {
			key = key[:maxKeyIngredients]
		}

		matrix = append(matrix, MenuMatrixEntry{
			MenuItem:       row.ItemName,
			KeyIngredients: strings.Join(key, ", "),
			Protein:        proteinQuantity(t, row),
			Complexity:     complexityTier(len(used)),
		})
	}

	return matrix
}

// proteinQuantity finds the first positive value among the ordered protein
// columns, truncated to an integer. "0" means no protein column is present.
func proteinQuantity(t *dataset.MenuTable, row dataset.MenuRow) string {
	for _, name := range proteinColumns {
		for i, col := range t.Columns {
			if col != name || i >= len(row.Cells) {
				continue
			}
			if v := dataset.CoerceFloat(row.Cells[i], 0); v > 0 {
				return strconv.Itoa(int(v))
			}
		}
	}
	return "0"
}

func complexityTier(usedCount int) string {
	switch {
	case usedCount <= 3:
		return "Low"
	case usedCount <= 6:
		return "Medium"
	default:
		return "High"
	}
}

// cellUsed reports whether a raw composition cell marks the ingredient as
// used: present, and not a numeric or textual zero.
func cellUsed(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return false
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v != 0
	}
	// Non-numeric text (e.g. "trace") still counts as used, but missing-data
	// sentinels do not.
	return dataset.CoerceString(cell, "") != ""
}

func stripUnitSuffix(col string) string {
	name := col
	for _, suffix := range unitSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}
	return strings.TrimSpace(name)
}
