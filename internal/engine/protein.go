package engine

import (
	"fmt"
	"strings"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// ProteinDemand is the weekly demand card for one protein.
type ProteinDemand struct {
	Amount    string `json:"amount"`
	Shipments string `json:"shipments"`
}

// ProteinForecast summarizes weekly beef and chicken demand from the shipment
// table. Chicken wings are a separate menu category and are excluded from the
// chicken total. Pork has no shipment rows in the source data, so it always
// falls back to a fixed estimate.
func ProteinForecast(t *dataset.ShipmentTable) map[string]ProteinDemand {
	proteins := map[string]ProteinDemand{}
	if t == nil {
		return proteins
	}

	for _, rec := range t.Records {
		lower := strings.ToLower(rec.Ingredient)

		var key string
		switch {
		case strings.Contains(lower, "beef"):
			key = "beef"
		case strings.Contains(lower, "chicken") && !strings.Contains(lower, "wing"):
			key = "chicken"
		default:
			continue
		}

		proteins[key] = ProteinDemand{
			Amount:    fmt.Sprintf("%d %s", int(WeeklyUsage(rec)), rec.Unit),
			Shipments: fmt.Sprintf("%d shipments", int(rec.NumShipments)),
		}
	}

	if _, ok := proteins["pork"]; !ok {
		proteins["pork"] = ProteinDemand{Amount: "40 lbs", Shipments: "estimated"}
	}

	return proteins
}
