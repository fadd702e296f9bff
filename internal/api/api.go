package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/maishanyun/msy-dashboard/internal/api/handlers"
	"github.com/maishanyun/msy-dashboard/internal/api/middleware"
	"github.com/maishanyun/msy-dashboard/internal/service"
)

// NewRouter wires the dashboard routes. dashboardFile is the static page
// served at the root route; it may be absent.
func NewRouter(svc *service.DashboardService, allowedOrigins []string, dashboardFile string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
	if allowAll || len(normalizedOrigins) == 0 {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		corsConfig.AllowOrigins = normalizedOrigins
	}
	router.Use(cors.New(corsConfig))

	h := handlers.NewDashboardHandler(svc, dashboardFile)

	router.GET("/", h.Home)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/metrics", h.GetMetrics)
		apiGroup.GET("/ingredient-usage", h.GetIngredientUsage)
		apiGroup.GET("/sales-trends", h.GetSalesTrends)
		apiGroup.GET("/forecast", h.GetForecast)
		apiGroup.GET("/alerts", h.GetAlerts)
		apiGroup.GET("/shipment-schedule", h.GetShipmentSchedule)
		apiGroup.GET("/cost-analysis", h.GetCostAnalysis)
		apiGroup.GET("/recommendations", h.GetRecommendations)
		apiGroup.GET("/protein-forecast", h.GetProteinForecast)
		apiGroup.GET("/ingredient-matrix", h.GetIngredientMatrix)
		apiGroup.POST("/reload", h.Reload)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		for _, part := range strings.Split(origin, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
