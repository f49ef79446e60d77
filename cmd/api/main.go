package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/call-summarizer/docs"
	pkgvalidator "github.com/johnquangdev/call-summarizer/pkg/validator"

	"github.com/johnquangdev/call-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/call-summarizer/internal/app"
	httpmw "github.com/johnquangdev/call-summarizer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/call-summarizer/pkg/config"
)

// @title           Call Summarizer API
// @version         1.0
// @description     Upload call recordings or chat exports, get a speaker-labelled transcript and a one-sentence summary

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /

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

	e.Use(middleware.RequestID())
	e.Use(httpmw.ZapRequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	e.Use(middleware.BodyLimit(cfg.Server.MaxUploadSize))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	log.Printf("🎙️  Transcriber: %s (diarization: %t)", cfg.Transcriber.Provider, cfg.Transcriber.DiarizationEnabled)
	log.Printf("🤖 Summarizer: %s", cfg.Summary.Provider)
	if cfg.Storage.Enabled {
		log.Printf("📦 Archiving uploads to bucket %s", cfg.Storage.BucketName)
	}
	if cfg.Redis.Enabled {
		log.Printf("🔒 Using Redis lock at %s", cfg.GetRedisAddr())
	}

	application, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	uploadController := handler.NewUploadController(application.Pipeline, cfg.Server.MaxUploadSize, logger)
	reportController := handler.NewReportController(application.Transcripts, application.Summaries, application.History, logger)

	var archiveController *handler.ArchiveController
	if application.Archive != nil {
		archiveController = handler.NewArchiveController(application.Archive, logger)
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, uploadController, reportController, archiveController, application.TranscriberName, application.SummarizerName)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Address()
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
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
