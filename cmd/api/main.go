package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/rosboard/ros-analytics-api/internal/application/service"
	"github.com/rosboard/ros-analytics-api/internal/config"
	"github.com/rosboard/ros-analytics-api/internal/infrastructure/dataset"
	"github.com/rosboard/ros-analytics-api/internal/presentation/http/handler"
	"github.com/rosboard/ros-analytics-api/internal/presentation/http/routes"
	"github.com/rosboard/ros-analytics-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Log.Level)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize dataset store
	source := dataset.NewHTTPSource(cfg.Dataset.URL, cfg.Dataset.FetchTimeout)
	store := dataset.NewStore(source, log)

	// Initial load. A failure is not fatal: the API serves 503 until a
	// manual refresh succeeds.
	if cfg.Dataset.RefreshOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Dataset.FetchTimeout)
		if err := store.Refresh(ctx); err != nil {
			log.WithError(err).Warn("initial dataset load failed; data endpoints unavailable until refresh")
		}
		cancel()
	}

	// Initialize services
	dashboardService := service.NewDashboardService(store)
	insightService := service.NewInsightService(dashboardService)
	exportService := service.NewExportService(dashboardService)
	optionsService := service.NewOptionsService(store)

	// Initialize handlers
	handlers := &routes.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService, insightService, exportService),
		Options:   handler.NewOptionsHandler(optionsService),
		Dataset:   handler.NewDatasetHandler(store),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg: cfg,
		Log: log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Infof("Starting %s server on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
