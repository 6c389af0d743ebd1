package main

import (
	"fmt"
	"os"

	"autohuis/backoffice-leads/internal/api"
	"autohuis/backoffice-leads/internal/api/controllers"
	"autohuis/backoffice-leads/internal/api/middleware"
	"autohuis/backoffice-leads/internal/config"
	"autohuis/backoffice-leads/internal/handlers"
	"autohuis/backoffice-leads/internal/logging"

	_ "autohuis/backoffice-leads/docs" // Swagger generated docs

	"github.com/gin-gonic/gin"
)

// @title Backoffice Leads API
// @version 1.0
// @description Lead back-office service for a car dealership. Extracts customer name, contact details, vehicle interest and subject from inbound portal and website leads, and serves lead lookups and reports.

// @contact.name Backoffice Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @schemes http https
func main() {
	// Load configuration from .env, CONFIG_PATH and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, restore, err := logging.Install(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer restore()
	defer func() { _ = logger.Sync() }()

	log := logger.Sugar().Named("main")
	gin.SetMode(cfg.GinMode)

	// Initialize SupabaseHandler if credentials are configured
	var store handlers.LeadStore
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		supabaseHandler, err := handlers.NewSupabaseHandler(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			log.Warnf("Failed to initialize SupabaseHandler: %v", err)
			log.Warnf("Continuing without lead lookups and reports")
		} else {
			store = supabaseHandler
			log.Infof("SupabaseHandler initialized - lead lookups enabled")
		}
	} else {
		log.Infof("SUPABASE_URL or SUPABASE_SECRET_KEY not set - lead lookups and reports disabled")
	}

	leadsController := controllers.NewLeadsController(store, cfg.MaxBatchSize)

	// Initialize ReportsController if a store is configured
	var reportsController *controllers.ReportsController
	if store != nil {
		reportsController = controllers.NewReportsController(store)
		log.Infof("ReportsController initialized - reports endpoints enabled")
	}

	parseLimiter := middleware.NewRateLimiter(cfg.ParseRateLimitRPS, cfg.ParseRateBurst)
	log.Infof("Parse endpoints limited to %.2f req/s per client (burst %d, batch max %d)",
		cfg.ParseRateLimitRPS, cfg.ParseRateBurst, cfg.MaxBatchSize)

	// Setup router
	router := api.NewRouter(leadsController, reportsController, parseLimiter)
	if len(cfg.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
		}
		log.Infof("Trusting X-Forwarded-For from %v", cfg.TrustedProxies)
	}

	// Start server
	log.Infof("Server starting on port %s", cfg.Port)
	log.Infof("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
