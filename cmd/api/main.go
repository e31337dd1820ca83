package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-actions/docs"
	"github.com/johnquangdev/meeting-actions/internal/adapter/handler"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-actions/internal/usecase/minutes"
	pkgai "github.com/johnquangdev/meeting-actions/pkg/ai"
	"github.com/johnquangdev/meeting-actions/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-actions/pkg/validator"
)

// @title           Meeting Actions API
// @version         1.0
// @description     Turns meeting transcripts into Jira tasks
// @BasePath        /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	log.Printf("📦 Initializing %s transcript storage...", cfg.Storage.Type)
	store, err := storage.New(context.Background(), &cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	log.Println("🤖 Initializing AI components...")
	if cfg.OpenAI.APIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY is not set; every processing request will fail until it is")
	}
	completion := pkgai.NewOpenAIClient(&cfg.OpenAI, nil, logger)

	// One pooled client for all tracker calls; credentials stay per request
	jiraHTTP := &http.Client{Timeout: cfg.Jira.Timeout}
	minutesService := minutes.NewMinutesService(completion, minutes.JiraTrackerFactory(jiraHTTP), logger)

	minutesController := handler.NewMinutesController(minutesService, store, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, minutesController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
