package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rosboard/ros-analytics-api/internal/config"
	"github.com/rosboard/ros-analytics-api/internal/presentation/http/handler"
	"github.com/rosboard/ros-analytics-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Options   *handler.OptionsHandler
	Dataset   *handler.DatasetHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
	Log *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("", h.Dashboard.GetSnapshot)
			dashboard.GET("/insights", h.Dashboard.GetInsights)
			dashboard.GET("/export", h.Dashboard.Export)
		}

		filters := v1.Group("/filters")
		{
			filters.GET("/clients", h.Options.ListClients)
			filters.GET("/restaurants", h.Options.ListRestaurants)
		}

		ds := v1.Group("/dataset")
		{
			ds.GET("", h.Dataset.GetMeta)
			ds.POST("/refresh", h.Dataset.Refresh)
		}
	}

	return router
}
