package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

func TestUnitCost_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ground Beef", "8"},
		{"Chicken Breast", "4"},
		{"Egg", "0.3"},
		{"Fried Rice Mix", "2"},
		{"Ramen Noodles", "1.5"},
		{"Cilantro", "3"}, // fallback
		// "beef" outranks "rice" in rule order, even though both match.
		{"beef fried rice", "8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UnitCost(tt.name).String(), "cost for %q", tt.name)
	}
}

func TestWeeklyCost(t *testing.T) {
	rec := shipmentRow("Beef", 10, 2, "weekly") // usage 20 @ $8
	assert.True(t, WeeklyCost(rec).Equal(decimal.NewFromInt(160)))

	rec = shipmentRow("Egg", 100, 2, "biweekly") // usage 100 @ $0.30
	assert.True(t, WeeklyCost(rec).Equal(decimal.NewFromInt(30)))
}

func TestTopCostDrivers_SortsByNumericCost(t *testing.T) {
	table := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Egg", 100, 1, "weekly"),  // $30
		shipmentRow("Beef", 30, 1, "weekly"),  // $240
		shipmentRow("Rice", 50, 1, "weekly"),  // $100
		shipmentRow("Flour", 20, 1, "weekly"), // $10
	}}

	entries := TopCostDrivers(table, 5)
	require.Len(t, entries, 4)
	assert.Equal(t, "Beef", entries[0].Ingredient)
	assert.Equal(t, "Rice", entries[1].Ingredient)
	assert.Equal(t, "Egg", entries[2].Ingredient)
	assert.Equal(t, "Flour", entries[3].Ingredient)

	assert.Equal(t, "$240/wk", entries[0].Cost)
	assert.Equal(t, "30 lbs/week @ $8/lbs", entries[0].Details)
}

func TestTopCostDrivers_TruncatesToN(t *testing.T) {
	table := &dataset.ShipmentTable{}
	for i := 0; i < 8; i++ {
		table.Records = append(table.Records, shipmentRow("Beef", float64(i+1), 1, "weekly"))
	}

	entries := TopCostDrivers(table, 5)
	assert.Len(t, entries, 5)
}

func TestTopCostDrivers_PercentageBounds(t *testing.T) {
	table := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Beef", 1000, 1, "weekly"), // $8000, way past budget
		shipmentRow("Flour", 1, 1, "weekly"),   // $0.50, rounds to 0
	}}

	entries := TopCostDrivers(table, 5)
	require.Len(t, entries, 2)
	assert.Equal(t, 100, entries[0].Percentage)
	assert.Equal(t, 0, entries[1].Percentage)

	for _, e := range entries {
		assert.GreaterOrEqual(t, e.Percentage, 0)
		assert.LessOrEqual(t, e.Percentage, 100)
	}
}

func TestTopCostDrivers_PercentageRounds(t *testing.T) {
	// $150 of a $1500 budget is exactly 10%.
	table := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Rice", 75, 1, "weekly"), // $150
	}}

	entries := TopCostDrivers(table, 5)
	require.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].Percentage)
}

func TestTopCostDrivers_EmptyInputs(t *testing.T) {
	assert.Empty(t, TopCostDrivers(nil, 5))
	assert.Empty(t, TopCostDrivers(&dataset.ShipmentTable{}, 5))
}
