package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/maishanyun/msy-dashboard/internal/service"
)

// DashboardHandler serves the dashboard JSON endpoints. The service layer
// guarantees well-formed defaults for any subset of missing datasets, so
// every read handler is an unconditional 200.
type DashboardHandler struct {
	svc           *service.DashboardService
	dashboardFile string
}

func NewDashboardHandler(svc *service.DashboardService, dashboardFile string) *DashboardHandler {
	return &DashboardHandler{svc: svc, dashboardFile: dashboardFile}
}

// Home serves the static dashboard page when present.
func (h *DashboardHandler) Home(c *gin.Context) {
	if _, err := os.Stat(h.dashboardFile); err == nil {
		c.File(h.dashboardFile)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "dashboard.html not found"})
}

func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Metrics())
}

func (h *DashboardHandler) GetIngredientUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.IngredientUsage())
}

func (h *DashboardHandler) GetSalesTrends(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SalesTrends())
}

func (h *DashboardHandler) GetForecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Forecast())
}

func (h *DashboardHandler) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Alerts())
}

func (h *DashboardHandler) GetShipmentSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Schedule())
}

func (h *DashboardHandler) GetCostAnalysis(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CostAnalysis())
}

func (h *DashboardHandler) GetRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Recommendations())
}

func (h *DashboardHandler) GetProteinForecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ProteinForecast())
}

func (h *DashboardHandler) GetIngredientMatrix(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.IngredientMatrix())
}

// Reload rebuilds the snapshot from the data directory.
func (h *DashboardHandler) Reload(c *gin.Context) {
	h.svc.Reload()
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
