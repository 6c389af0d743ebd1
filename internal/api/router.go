package api

import (
	"net/http"

	"autohuis/backoffice-leads/internal/api/controllers"
	"autohuis/backoffice-leads/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates and configures a new Gin router.
// reportsController may be nil; lead list/detail routes are only registered when
// leadsController has a store. parseLimiter may be nil to disable rate limiting.
func NewRouter(
	leadsController *controllers.LeadsController,
	reportsController *controllers.ReportsController,
	parseLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.New()
	// ClientIP keys the rate limiter, so forwarding headers are ignored until
	// the caller names its proxies with SetTrustedProxies.
	_ = router.SetTrustedProxies(nil)
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
	)

	databaseStatus := "disabled"
	if leadsController.StoreEnabled() {
		databaseStatus = "enabled"
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": databaseStatus,
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		parse := v1.Group("/leads/parse")
		if parseLimiter != nil {
			parse.Use(middleware.RateLimit(parseLimiter))
		}
		parse.POST("", leadsController.Parse)
		parse.POST("/batch", leadsController.ParseBatch)

		// Lead lookups (only if a store is configured)
		if leadsController.StoreEnabled() {
			v1.GET("/leads", leadsController.List)
			v1.GET("/leads/:id", leadsController.Get)
		}

		// Reports routes (only if controller is configured)
		if reportsController != nil {
			v1.GET("/reports/leads", reportsController.GetLeadReport)
		}
	}

	return router
}
