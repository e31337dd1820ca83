package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg     *config.Config
	minutes *MinutesController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, minutesController *MinutesController) *Router {
	return &Router{
		cfg:     cfg,
		minutes: minutesController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", rt.minutes.Index)
	// Unversioned alias for clients that predate /v1
	e.POST("/process", rt.minutes.ProcessTranscript)

	// API v1 group
	v1 := e.Group("/v1")
	v1.POST("/process", rt.minutes.ProcessTranscript)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
