package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/call-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/call-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	uploadController *UploadController
	reportController *ReportController
	archiveCtrl      *ArchiveController
	transcriber      string
	summarizer       string
}

// NewRouter creates a new router with all handlers.
// archive may be nil when object storage is disabled.
// transcriber and summarizer name the active providers for /health.
func NewRouter(cfg *config.Config, upload *UploadController, report *ReportController, archive *ArchiveController, transcriber, summarizer string) *Router {
	return &Router{
		cfg:              cfg,
		uploadController: upload,
		reportController: report,
		archiveCtrl:      archive,
		transcriber:      transcriber,
		summarizer:       summarizer,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	rt.setupCallRoutes(e)

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupReportRoutes(v1)
}

// setupCallRoutes registers the endpoints used by the dashboard
func (rt *Router) setupCallRoutes(e *echo.Echo) {
	if rt.uploadController != nil {
		e.POST("/upload", rt.uploadController.Upload)
	} else {
		e.POST("/upload", rt.notImplemented)
	}

	if rt.reportController != nil {
		e.GET("/get-summary", rt.reportController.GetSummary)
		e.GET("/get-transcript", rt.reportController.GetTranscript)
		e.GET("/history", rt.reportController.History)
	} else {
		e.GET("/get-summary", rt.notImplemented)
		e.GET("/get-transcript", rt.notImplemented)
		e.GET("/history", rt.notImplemented)
	}
}

// setupReportRoutes configures versioned report routes
func (rt *Router) setupReportRoutes(g *echo.Group) {
	if rt.reportController != nil {
		g.GET("/summaries", rt.reportController.ListSummaries)
	} else {
		g.GET("/summaries", rt.notImplemented)
	}

	if rt.archiveCtrl != nil {
		g.GET("/archive", rt.archiveCtrl.ListUploads)
	} else {
		g.GET("/archive", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
		Transcriber: rt.transcriber,
		Summarizer:  rt.summarizer,
	})
}
