package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maishanyun/msy-dashboard/internal/api"
	"github.com/maishanyun/msy-dashboard/internal/config"
	"github.com/maishanyun/msy-dashboard/internal/dataset"
	"github.com/maishanyun/msy-dashboard/internal/service"
	"github.com/maishanyun/msy-dashboard/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the initial snapshot. Missing source files just leave tables
	// absent; the dashboard serves defaults until data shows up.
	store := dataset.NewStore()
	loader := dataset.NewLoader(cfg.App.DataDir)
	svc := service.NewDashboardService(store, loader)
	svc.Reload()

	router := api.NewRouter(svc, cfg.Server.AllowedOrigins, cfg.App.DashboardFile)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting dashboard server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
