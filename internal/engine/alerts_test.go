package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

func TestAlerts_HighFrequencyBoundary(t *testing.T) {
	table := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Rice", 10, 4, "weekly"),
	}}
	assert.Empty(t, Alerts(table), "4 shipments must not trip the alert")

	table.Records[0].NumShipments = 5
	alerts := Alerts(table)
	require.Len(t, alerts, 1)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Equal(t, "Rice - High Frequency", alerts[0].Title)
	assert.Equal(t, "5 shipments weekly", alerts[0].Message)
}

func TestAlerts_CriticalEggItem(t *testing.T) {
	table := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Eggs Grade A", 30, 2, "weekly"),
	}}

	alerts := Alerts(table)
	require.Len(t, alerts, 1)
	assert.Equal(t, "critical", alerts[0].Type)
	assert.Equal(t, "Eggs Grade A - Critical Item", alerts[0].Title)
	assert.Equal(t, "Requires 60 lbs per weekly", alerts[0].Message)
}

func TestAlerts_OneRowCanEmitBoth(t *testing.T) {
	table := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Egg", 30, 5, "weekly"),
	}}

	alerts := Alerts(table)
	require.Len(t, alerts, 2)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Equal(t, "critical", alerts[1].Type)
}

func TestAlerts_CappedAtThree(t *testing.T) {
	table := &dataset.ShipmentTable{}
	for i := 0; i < 10; i++ {
		table.Records = append(table.Records, shipmentRow("Egg", 1, 6, "weekly"))
	}

	alerts := Alerts(table)
	assert.Len(t, alerts, maxAlerts)
}

func TestAlerts_NilTable(t *testing.T) {
	assert.Equal(t, []Alert{}, Alerts(nil))
}

func TestRecommendations_AllThree(t *testing.T) {
	shipments := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Beef", 10, 4, "weekly"),
		shipmentRow("Rice", 10, 6, "weekly"),
		shipmentRow("Flour", 10, 5, "weekly"),
		shipmentRow("Cilantro", 1, 1, "weekly"),
	}}
	menu := &dataset.MenuTable{Rows: make([]dataset.MenuRow, 12)}

	recs := Recommendations(shipments, menu)
	require.Len(t, recs, 3)

	assert.Equal(t, "Bulk Buying Opportunity", recs[0].Title)
	// Only the first two qualifying ingredients are named, in row order.
	assert.Equal(t, "Consider monthly contracts for Beef, Rice to save 10-15%", recs[0].Message)

	assert.Equal(t, "Reduce Waste", recs[1].Title)

	assert.Equal(t, "Menu Engineering", recs[2].Title)
	assert.Contains(t, recs[2].Message, "(12 items)")
}

func TestRecommendations_FreshProduceExactMatchOnly(t *testing.T) {
	shipments := &dataset.ShipmentTable{Records: []dataset.ShipmentRecord{
		shipmentRow("Green Onion Oil", 1, 1, "weekly"), // substring, not exact
	}}

	recs := Recommendations(shipments, nil)
	for _, rec := range recs {
		assert.NotEqual(t, "Reduce Waste", rec.Title)
	}

	shipments.Records[0].Ingredient = "Green Onion"
	recs = Recommendations(shipments, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, "Reduce Waste", recs[0].Title)
}

func TestRecommendations_AbsentPreconditionsOmit(t *testing.T) {
	assert.Empty(t, Recommendations(nil, nil))

	// Menu loaded but no shipments: only the menu suggestion appears.
	menu := &dataset.MenuTable{Rows: make([]dataset.MenuRow, 3)}
	recs := Recommendations(nil, menu)
	require.Len(t, recs, 1)
	assert.Equal(t, "Menu Engineering", recs[0].Title)
}
