package engine

import (
	"math"
	"strings"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
)

// trendCategory maps a dashboard series to the keywords counted for it.
// Categories are an ordered list so the chart legend order is stable. A sales
// row whose group matches two keywords of the same category is counted twice;
// that is how the published series has always been defined.
type trendCategory struct {
	name     string
	keywords []string
}

var trendCategories = []trendCategory{
	{"Ramen Dishes", []string{"Ramen"}},
	{"Fried Rice", []string{"Fried Rice"}},
	{"Wings & Cutlets", []string{"Wing", "Cutlet"}},
	{"Rice Noodles", []string{"Rice Noodle"}},
}

// TrendSeries is one category line in the sales-trend chart.
type TrendSeries struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// TrendChart is the sales-trend chart payload.
type TrendChart struct {
	Labels   []string      `json:"labels"`
	Datasets []TrendSeries `json:"datasets"`
}

// SalesTrends counts, per loaded month and per category, the sales rows whose
// group contains any of the category's keywords (case-insensitive).
func SalesTrends(snap *dataset.Snapshot) TrendChart {
	chart := TrendChart{Labels: []string{}, Datasets: []TrendSeries{}}
	if snap == nil {
		return chart
	}
	months := snap.LoadedMonths()
	if len(months) == 0 {
		return chart
	}
	chart.Labels = months

	for _, cat := range trendCategories {
		series := TrendSeries{Label: cat.name, Data: make([]int, 0, len(months))}
		for _, month := range months {
			table := snap.Sales[month]
			count := 0
			for _, group := range table.Groups {
				lower := strings.ToLower(group)
				for _, keyword := range cat.keywords {
					if strings.Contains(lower, strings.ToLower(keyword)) {
						count++
					}
				}
			}
			series.Data = append(series.Data, count)
		}
		chart.Datasets = append(chart.Datasets, series)
	}

	return chart
}

// ForecastChart is the volume-forecast chart payload. Actual carries the
// historical per-month row counts followed by two nulls; Predicted is null
// for history except the last month, which repeats the last actual so the
// chart draws a continuous line into the two forecast points.
type ForecastChart struct {
	Labels    []string `json:"labels"`
	Actual    []*int   `json:"actual"`
	Predicted []*int   `json:"predicted"`
}

// Forecast projects sales volume two periods ahead from per-month row counts.
func Forecast(snap *dataset.Snapshot) ForecastChart {
	chart := ForecastChart{Labels: []string{}, Actual: []*int{}, Predicted: []*int{}}
	if snap == nil {
		return chart
	}
	months := snap.LoadedMonths()
	if len(months) == 0 {
		return chart
	}

	actual := make([]float64, len(months))
	for i, month := range months {
		actual[i] = float64(snap.Sales[month].RowCount)
	}
	f1, f2 := project(actual)

	chart.Labels = append(chart.Labels, months...)
	chart.Labels = append(chart.Labels, "Forecast 1", "Forecast 2")

	for _, v := range actual {
		chart.Actual = append(chart.Actual, intPtr(int(v)))
	}
	chart.Actual = append(chart.Actual, nil, nil)

	for i := 0; i < len(actual)-1; i++ {
		chart.Predicted = append(chart.Predicted, nil)
	}
	last := int(actual[len(actual)-1])
	chart.Predicted = append(chart.Predicted, intPtr(last), intPtr(f1), intPtr(f2))

	return chart
}

// project produces the two forecast points for a series of period totals.
// With two or more periods it fits a degree-1 least-squares line over
// x = 0..k-1 and evaluates it at k and k+1. With fewer it falls back to 5%
// growth on the last value, or 500 when there is no data at all. Rounding is
// half-away-from-zero throughout.
func project(actual []float64) (int, int) {
	if len(actual) >= 2 {
		slope, intercept := linearFit(actual)
		k := float64(len(actual))
		f1 := int(math.Round(slope*k + intercept))
		f2 := int(math.Round(slope*(k+1) + intercept))
		return f1, f2
	}

	var f1 int
	if len(actual) == 1 {
		f1 = int(math.Round(actual[0] * 1.05))
	} else {
		f1 = 500
	}
	f2 := int(math.Round(float64(f1) * 1.05))
	return f1, f2
}

// linearFit is an ordinary least-squares degree-1 fit of y over x = 0..n-1.
func linearFit(y []float64) (slope, intercept float64) {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func intPtr(v int) *int {
	return &v
}
