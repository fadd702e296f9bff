package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// iconRule maps an ingredient-name keyword to a display icon. Ordered,
// first match wins; unmatched ingredients get the package icon.
type iconRule struct {
	keyword string
	icon    string
}

var iconRules = []iconRule{
	{"beef", "🥩"},
	{"chicken", "🍗"},
	{"ramen", "🍜"},
	{"egg", "🥚"},
	{"rice", "🌾"},
	{"onion", "🧅"},
	{"carrot", "🥕"},
	{"flour", "🌾"},
}

const defaultIcon = "📦"

// ScheduleEntry is one row of the delivery-schedule panel.
type ScheduleEntry struct {
	Ingredient   string `json:"ingredient"`
	Frequency    string `json:"frequency"`
	NextDelivery string `json:"nextDelivery"`
	Overdue      bool   `json:"overdue"`
}

// Schedule lists every shipment with its cadence and a rough next-delivery
// estimate. The source data has no real delivery dates, so the estimate is a
// uniform 1-6 day placeholder for the dashboard.
func Schedule(t *dataset.ShipmentTable) []ScheduleEntry {
	schedule := []ScheduleEntry{}
	if t == nil {
		return schedule
	}

	for _, rec := range t.Records {
		schedule = append(schedule, ScheduleEntry{
			Ingredient:   fmt.Sprintf("%s %s", ingredientIcon(rec.Ingredient), rec.Ingredient),
			Frequency:    fmt.Sprintf("%s (%dx)", rec.Frequency, int(rec.NumShipments)),
			NextDelivery: fmt.Sprintf("%d days", rand.Intn(6)+1),
			Overdue:      false,
		})
	}
	return schedule
}

func ingredientIcon(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range iconRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.icon
		}
	}
	return defaultIcon
}
