package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"prospect/internal/config"
	"prospect/internal/database"
	"prospect/internal/handlers"
	"prospect/internal/logger"
	"prospect/internal/middleware"
	"prospect/internal/services"
	"prospect/internal/validator"

	_ "prospect/internal/docs" // Import swagger docs
)

// @title           Prospect API
// @version         1.0
// @description     Prospect is a personal balance sheet tracker that projects asset, liability and cashflow trajectories over multi-year horizons.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey PipelineKeyAuth
// @in header
// @name X-API-Key
// @description Static API key for pipeline endpoints.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	assetClassService := services.NewAssetClassService(db)
	holdingTypeService := services.NewHoldingTypeService(db)
	userService := services.NewUserService(db, assetClassService, holdingTypeService)
	holdingService := services.NewHoldingService(db)
	settingsService := services.NewSettingsService(db)
	projectionService := services.NewProjectionService(db, holdingService, settingsService)
	snapshotService := services.NewSnapshotService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	assetClassHandler := handlers.NewAssetClassHandler(assetClassService, auditService)
	holdingTypeHandler := handlers.NewHoldingTypeHandler(holdingTypeService, auditService)
	holdingHandler := handlers.NewHoldingHandler(holdingService, auditService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	toolsHandler := handlers.NewToolsHandler()

	// Daily net worth snapshot job
	if appConfig.SnapshotSchedule != "" {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(appConfig.SnapshotSchedule, func() {
			recorded, err := snapshotService.ComputeAndRecordSnapshots(time.Now().UTC())
			if err != nil {
				log.Errorw("snapshot job failed", "error", err)
				return
			}
			log.Infow("snapshot job completed", "users_recorded", recorded)
		})
		if err != nil {
			return fmt.Errorf("invalid snapshot schedule %q: %w", appConfig.SnapshotSchedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Pipeline routes (API-key auth)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.POST("/snapshots", snapshotHandler.TriggerSnapshots)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile/mode", authHandler.UpdateMode)

	// Asset class routes
	assetClasses := protected.Group("/asset-classes")
	assetClasses.POST("", assetClassHandler.CreateAssetClass)
	assetClasses.GET("", assetClassHandler.ListAssetClasses)
	assetClasses.GET("/:id", assetClassHandler.GetAssetClass)
	assetClasses.PUT("/:id", assetClassHandler.UpdateAssetClass)
	assetClasses.DELETE("/:id", assetClassHandler.DeleteAssetClass)

	// Holding type routes
	holdingTypes := protected.Group("/holding-types")
	holdingTypes.POST("", holdingTypeHandler.CreateHoldingType)
	holdingTypes.GET("", holdingTypeHandler.ListHoldingTypes)
	holdingTypes.GET("/:id", holdingTypeHandler.GetHoldingType)
	holdingTypes.PUT("/:id", holdingTypeHandler.UpdateHoldingType)
	holdingTypes.DELETE("/:id", holdingTypeHandler.DeleteHoldingType)

	// Holding routes
	holdings := protected.Group("/holdings")
	holdings.POST("", holdingHandler.CreateHolding)
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)
	holdings.POST("/:id/expenses", holdingHandler.AddExpense)
	holdings.DELETE("/:id/expenses/:expenseId", holdingHandler.RemoveExpense)

	// Projection routes
	projections := protected.Group("/projections")
	projections.GET("/defaults", projectionHandler.GetDefaults)
	projections.POST("/run", projectionHandler.Run)

	// Snapshot routes
	protected.GET("/snapshots", snapshotHandler.ListSnapshots)

	// Settings routes
	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	// Calculator routes
	tools := protected.Group("/tools")
	tools.POST("/loan-schedule", toolsHandler.LoanSchedule)
	tools.POST("/savings-goal", toolsHandler.SavingsGoal)
	tools.POST("/cagr", toolsHandler.CAGR)

	log.Infof("Starting Prospect backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
