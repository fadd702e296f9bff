package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// DefaultTopCostDrivers is how many rows the cost-analysis panel shows.
const DefaultTopCostDrivers = 5

// weeklyBudget is the reference denominator for the cost percentage bars.
var weeklyBudget = decimal.NewFromInt(1500)

// costRule maps an ingredient-name keyword to a per-unit cost. Rules are an
// ordered list with first-match-wins semantics so the tie-break order stays
// reviewable; anything unmatched falls back to fallbackUnitCost.
type costRule struct {
	keyword string
	perUnit decimal.Decimal
}

var costRules = []costRule{
	{"beef", decimal.NewFromInt(8)},
	{"chicken", decimal.NewFromInt(4)},
	{"egg", decimal.NewFromFloat(0.30)},
	{"rice", decimal.NewFromInt(2)},
	{"ramen", decimal.NewFromFloat(1.5)},
	{"flour", decimal.NewFromFloat(0.50)},
	{"onion", decimal.NewFromFloat(0.10)},
	{"carrot", decimal.NewFromInt(3)},
}

var fallbackUnitCost = decimal.NewFromInt(3)

// UnitCost looks up the per-unit cost for an ingredient name.
func UnitCost(name string) decimal.Decimal {
	lower := strings.ToLower(name)
	for _, rule := range costRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.perUnit
		}
	}
	return fallbackUnitCost
}

// WeeklyCost is the estimated weekly spend for one shipment row.
func WeeklyCost(rec dataset.ShipmentRecord) decimal.Decimal {
	return decimal.NewFromFloat(WeeklyUsage(rec)).Mul(UnitCost(rec.Ingredient))
}

// CostEntry is one row of the cost-analysis panel.
type CostEntry struct {
	Ingredient string `json:"ingredient"`
	Details    string `json:"details"`
	Cost       string `json:"cost"`
	Percentage int    `json:"percentage"`
}

// TopCostDrivers ranks shipment rows by weekly cost, descending, and keeps
// the n most expensive. Sorting uses the underlying numeric cost, never the
// formatted string. Percentage is the share of the weekly budget, clamped
// to [0, 100].
func TopCostDrivers(t *dataset.ShipmentTable, n int) []CostEntry {
	if t == nil {
		return []CostEntry{}
	}

	type rankedRow struct {
		entry CostEntry
		cost  decimal.Decimal
	}
	ranked := make([]rankedRow, 0, len(t.Records))
	for _, rec := range t.Records {
		perUnit := UnitCost(rec.Ingredient)
		weeklyQty := WeeklyUsage(rec)
		weeklyCost := decimal.NewFromFloat(weeklyQty).Mul(perUnit)

		pct := weeklyCost.Div(weeklyBudget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		if pct > 100 {
			pct = 100
		}

		ranked = append(ranked, rankedRow{
			entry: CostEntry{
				Ingredient: rec.Ingredient,
				Details: fmt.Sprintf("%d %s/week @ $%s/%s",
					int(weeklyQty), rec.Unit, perUnit.String(), rec.Unit),
				Cost:       fmt.Sprintf("$%d/wk", weeklyCost.IntPart()),
				Percentage: int(pct),
			},
			cost: weeklyCost,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].cost.GreaterThan(ranked[j].cost)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	entries := make([]CostEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, r.entry)
	}
	return entries
}
