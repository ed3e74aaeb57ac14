package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/backend"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/config"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/handler"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/infrastructure/database"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/logger"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/metrics"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/middleware"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/repository"
	"github.com/Grandhi-Suri-Babu/admin-app/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Setup(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repository and backend client
	submissionRepo := repository.NewPostgresSubmissionRepository(pool)

	backendClient := backend.NewClient(backend.Config{
		BaseURL:        cfg.BackendBaseURL,
		FormEndpoint:   cfg.BackendFormEndpoint,
		FormCode:       cfg.BackendFormCode,
		UploadEndpoint: cfg.BackendUploadEndpoint,
		UploadCode:     cfg.BackendUploadCode,
	}, nil)

	// Initialize services
	formService := service.NewFormService(backendClient, submissionRepo)
	uploadService := service.NewUploadService(backendClient, submissionRepo)

	// Initialize handlers
	formHandler := handler.NewFormHandler(formService)
	uploadHandler := handler.NewUploadHandler(uploadService, cfg.MaxUploadSize)
	catalogHandler := handler.NewCatalogHandler()
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/forms", formHandler.SubmitForm)
		v1.POST("/uploads", uploadHandler.Upload)
		v1.GET("/submissions", formHandler.ListSubmissions)
		v1.GET("/submissions/:id", formHandler.GetSubmission)
		v1.GET("/catalog", catalogHandler.GetCatalog)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("backend", cfg.BackendBaseURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
