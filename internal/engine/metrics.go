package engine

import (
	"strings"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// MetricsSummary is the headline-numbers card payload.
type MetricsSummary struct {
	TotalItems       int `json:"totalItems"`
	TotalIngredients int `json:"totalIngredients"`
	WeeklyShipments  int `json:"weeklyShipments"`
	AlertCount       int `json:"alertCount"`
}

// Metrics computes the headline numbers: menu item count, tracked shipment
// ingredient count, the shipment volume on a strictly weekly cadence, and how
// many rows are at or over the high-frequency alert threshold.
func Metrics(snap *dataset.Snapshot) MetricsSummary {
	var m MetricsSummary
	if snap == nil {
		return m
	}

	if snap.Menu != nil {
		m.TotalItems = len(snap.Menu.Rows)
	}

	if snap.Shipments != nil {
		m.TotalIngredients = len(snap.Shipments.Records)
		var weekly float64
		for _, rec := range snap.Shipments.Records {
			// Exact cadence match here, unlike the substring normalizer:
			// biweekly deliveries are not weekly shipment traffic.
			if strings.ToLower(rec.Frequency) == "weekly" {
				weekly += rec.NumShipments
			}
			if rec.NumShipments >= highFrequencyThreshold {
				m.AlertCount++
			}
		}
		m.WeeklyShipments = int(weekly)
	}

	return m
}
