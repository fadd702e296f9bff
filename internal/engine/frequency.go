// Package engine holds the aggregation and forecasting core of the dashboard:
// pure computations over an immutable dataset snapshot. Every exported
// function tolerates nil/empty tables and returns a well-formed default
// instead of an error; the source spreadsheets are unreliable enough that
// "best-effort degrade" is the correctness contract here.
package engine

import (
	"strings"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// Period is the canonical shipment cadence.
type Period string

const (
	PeriodWeekly   Period = "weekly"
	PeriodBiweekly Period = "biweekly"
	PeriodMonthly  Period = "monthly"
	PeriodUnknown  Period = "unknown"
)

// Cadence is a normalized shipment frequency: the canonical period plus the
// factor that converts a per-delivery quantity into a weekly rate.
type Cadence struct {
	Period       Period
	WeeklyFactor float64
}

// NormalizeFrequency maps free-text cadence to a Cadence. Matching is
// case-insensitive substring, checked in priority order: "biweekly" and
// "monthly" must win over "weekly" because the latter is a substring of
// "biweekly" and co-occurs in phrasings like "monthly (was weekly)".
// Unrecognized text treats the raw quantity as already weekly; that is a
// documented simplifying assumption, not an error.
func NormalizeFrequency(text string) Cadence {
	freq := strings.ToLower(text)
	switch {
	case strings.Contains(freq, "biweekly"):
		return Cadence{Period: PeriodBiweekly, WeeklyFactor: 0.5}
	case strings.Contains(freq, "monthly"):
		return Cadence{Period: PeriodMonthly, WeeklyFactor: 0.25}
	case strings.Contains(freq, "weekly"):
		return Cadence{Period: PeriodWeekly, WeeklyFactor: 1.0}
	}
	return Cadence{Period: PeriodUnknown, WeeklyFactor: 1.0}
}

// WeeklyUsage is the average weekly consumption implied by a shipment row.
func WeeklyUsage(rec dataset.ShipmentRecord) float64 {
	return rec.QtyPerShipment * rec.NumShipments * NormalizeFrequency(rec.Frequency).WeeklyFactor
}
