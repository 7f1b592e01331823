package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cfuentesp/moodlog/backend/internal/config"
	"github.com/cfuentesp/moodlog/backend/internal/database"
	"github.com/cfuentesp/moodlog/backend/internal/handlers"
	"github.com/cfuentesp/moodlog/backend/internal/logger"
	"github.com/cfuentesp/moodlog/backend/internal/middleware"
	"github.com/cfuentesp/moodlog/backend/internal/repository"
	"github.com/cfuentesp/moodlog/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting moodlog API server",
		logger.String("env", cfg.Server.Env),
		logger.String("database", cfg.Database.Path),
	)

	// Open the database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	scale := cfg.Mood.Scale()

	// Initialize repositories
	moodRepo := repository.NewMoodRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Initialize services
	moodService := service.NewMoodService(moodRepo, tagRepo, scale)
	analyticsService := service.NewAnalyticsService(moodRepo, scale)
	exportService := service.NewExportService(moodRepo)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	insightsHandler := handlers.NewInsightsHandler(analyticsService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders(cfg.Server.Env))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.BearerToken(cfg.Auth.Token))
	{
		// Mood entry routes
		v1.GET("/moods", moodHandler.GetMoods)
		v1.POST("/moods", moodHandler.CreateMood)
		v1.GET("/moods/tags", moodHandler.GetTags)
		v1.GET("/moods/:id", moodHandler.GetMood)
		v1.PUT("/moods/:id", moodHandler.UpdateMood)
		v1.PATCH("/moods/:id", moodHandler.UpdateMood)
		v1.DELETE("/moods/:id", moodHandler.DeleteMood)

		// Analytics routes
		v1.GET("/analytics/summary", analyticsHandler.GetSummary)
		v1.GET("/analytics/weekly", analyticsHandler.GetWeeklyPattern)
		v1.GET("/analytics/trend", analyticsHandler.GetTrend)
		v1.GET("/analytics/day/:date", analyticsHandler.GetDayDetail)

		// Insights and export
		v1.GET("/insights", insightsHandler.GetInsights)
		v1.GET("/export", exportHandler.Export)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
