package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

func TestNormalizeFrequency_CanonicalPeriods(t *testing.T) {
	tests := []struct {
		text   string
		period Period
		factor float64
	}{
		{"weekly", PeriodWeekly, 1.0},
		{"Weekly", PeriodWeekly, 1.0},
		{"biweekly", PeriodBiweekly, 0.5},
		{"BIWEEKLY", PeriodBiweekly, 0.5},
		{"monthly", PeriodMonthly, 0.25},
		{"delivered monthly", PeriodMonthly, 0.25},
	}
	for _, tt := range tests {
		c := NormalizeFrequency(tt.text)
		assert.Equal(t, tt.period, c.Period, "period for %q", tt.text)
		assert.Equal(t, tt.factor, c.WeeklyFactor, "factor for %q", tt.text)
	}
}

// "biweekly" contains "weekly" as a substring, and sloppy phrasing can mix
// period words; the priority order has to win over plain substring hits.
func TestNormalizeFrequency_PriorityOrder(t *testing.T) {
	c := NormalizeFrequency("biweekly")
	assert.Equal(t, PeriodBiweekly, c.Period)
	assert.Equal(t, 0.5, c.WeeklyFactor)

	c = NormalizeFrequency("monthly (was weekly)")
	assert.Equal(t, PeriodMonthly, c.Period)
	assert.Equal(t, 0.25, c.WeeklyFactor)
}

func TestNormalizeFrequency_Total(t *testing.T) {
	for _, text := range []string{"", "gibberish", "every other day", "???", "week"} {
		c := NormalizeFrequency(text)
		assert.Equal(t, PeriodUnknown, c.Period, "input %q", text)
		assert.Equal(t, 1.0, c.WeeklyFactor, "input %q", text)
	}
}

func TestWeeklyUsage_ScalesByCadence(t *testing.T) {
	rec := dataset.ShipmentRecord{QtyPerShipment: 10, NumShipments: 4}

	rec.Frequency = "weekly"
	assert.Equal(t, 40.0, WeeklyUsage(rec))

	rec.Frequency = "biweekly"
	assert.Equal(t, 20.0, WeeklyUsage(rec))

	rec.Frequency = "monthly"
	assert.Equal(t, 10.0, WeeklyUsage(rec))

	// Unknown cadence treats the raw quantity as already weekly.
	rec.Frequency = "whenever"
	assert.Equal(t, 40.0, WeeklyUsage(rec))
}

func TestWeeklyUsage_NonNegative(t *testing.T) {
	recs := []dataset.ShipmentRecord{
		{QtyPerShipment: 0, NumShipments: 0, Frequency: "weekly"},
		{QtyPerShipment: 5, NumShipments: 0, Frequency: "monthly"},
		{QtyPerShipment: 0.5, NumShipments: 3, Frequency: "biweekly"},
	}
	for _, rec := range recs {
		assert.GreaterOrEqual(t, WeeklyUsage(rec), 0.0)
	}
}
