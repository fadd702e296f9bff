package dataset

import (
	"strconv"
	"strings"
)

// The source spreadsheets are hand-maintained, so cells routinely carry blanks
// or spreadsheet missing-data sentinels where numbers are expected. Coercion is
// total: every input resolves to a native value or the caller's default, never
// an error. It runs once at load time; engine computations only ever see the
// coerced values.

// missing reports whether a raw cell is a missing-data sentinel.
func missing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "nan", "n/a", "na", "null", "none":
		return true
	}
	return false
}

// CoerceFloat unwraps a numeric cell, returning def for missing or
// unparseable values.
func CoerceFloat(cell string, def float64) float64 {
	if missing(cell) {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return def
	}
	return v
}

// CoerceString trims a cell, returning def for missing values.
func CoerceString(cell, def string) string {
	if missing(cell) {
		return def
	}
	return strings.TrimSpace(cell)
}

// numericCell reports whether the cell parses as a number once trimmed.
func numericCell(cell string) bool {
	if missing(cell) {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	return err == nil
}
