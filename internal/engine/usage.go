package engine

import (
	"sort"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// DefaultTopUsage is how many ingredients the usage chart shows.
const DefaultTopUsage = 6

// UsageChart is the top-consumers bar chart payload.
type UsageChart struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// TopUsage ranks shipment rows by weekly usage and keeps the n largest.
// Ties keep original row order. An absent table, an empty table, or a table
// where no row carried usable usage numbers all yield empty lists: that is a
// "no data" signal for the chart, not an error.
func TopUsage(t *dataset.ShipmentTable, n int) UsageChart {
	empty := UsageChart{Labels: []string{}, Data: []int{}}
	if t == nil || len(t.Records) == 0 {
		return empty
	}

	usable := false
	type rankedRow struct {
		rec   dataset.ShipmentRecord
		usage float64
	}
	ranked := make([]rankedRow, 0, len(t.Records))
	for _, rec := range t.Records {
		if rec.HasUsageData {
			usable = true
		}
		ranked = append(ranked, rankedRow{rec: rec, usage: WeeklyUsage(rec)})
	}
	if !usable {
		return empty
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].usage > ranked[j].usage
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	chart := UsageChart{
		Labels: make([]string, 0, len(ranked)),
		Data:   make([]int, 0, len(ranked)),
	}
	for _, r := range ranked {
		chart.Labels = append(chart.Labels, r.rec.Ingredient)
		chart.Data = append(chart.Data, int(r.usage))
	}
	return chart
}
