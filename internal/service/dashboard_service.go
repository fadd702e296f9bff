package service

import (
	"github.com/rs/zerolog/log"

	"github.com/maishanyun/msy-dashboard/internal/dataset"
	"github.com/maishanyun/msy-dashboard/internal/engine"
)

// DashboardService owns the dataset store and exposes the engine computations
// to the HTTP layer. Every read grabs the current snapshot once, so a reload
// mid-request cannot mix old and new tables in one response.
type DashboardService struct {
	store  *dataset.Store
	loader *dataset.Loader
}

func NewDashboardService(store *dataset.Store, loader *dataset.Loader) *DashboardService {
	return &DashboardService{store: store, loader: loader}
}

// Reload rebuilds the snapshot from the data directory and swaps it in
// wholesale. Missing source files degrade to absent tables, never an error.
func (s *DashboardService) Reload() {
	snap := s.loader.Load()
	s.store.Replace(snap)
	log.Info().
		Int("months", len(snap.LoadedMonths())).
		Bool("shipments", snap.Shipments != nil).
		Bool("menu", snap.Menu != nil).
		Msg("dataset snapshot replaced")
}

func (s *DashboardService) Metrics() engine.MetricsSummary {
	return engine.Metrics(s.store.Current())
}

func (s *DashboardService) IngredientUsage() engine.UsageChart {
	return engine.TopUsage(s.store.Current().Shipments, engine.DefaultTopUsage)
}

func (s *DashboardService) SalesTrends() engine.TrendChart {
	return engine.SalesTrends(s.store.Current())
}

func (s *DashboardService) Forecast() engine.ForecastChart {
	return engine.Forecast(s.store.Current())
}

func (s *DashboardService) Alerts() []engine.Alert {
	return engine.Alerts(s.store.Current().Shipments)
}

func (s *DashboardService) Schedule() []engine.ScheduleEntry {
	return engine.Schedule(s.store.Current().Shipments)
}

func (s *DashboardService) CostAnalysis() []engine.CostEntry {
	return engine.TopCostDrivers(s.store.Current().Shipments, engine.DefaultTopCostDrivers)
}

func (s *DashboardService) Recommendations() []engine.Recommendation {
	snap := s.store.Current()
	return engine.Recommendations(snap.Shipments, snap.Menu)
}

func (s *DashboardService) ProteinForecast() map[string]engine.ProteinDemand {
	return engine.ProteinForecast(s.store.Current().Shipments)
}

func (s *DashboardService) IngredientMatrix() []engine.MenuMatrixEntry {
	return engine.MenuMatrix(s.store.Current().Menu)
}
