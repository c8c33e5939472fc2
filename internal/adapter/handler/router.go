package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	summaryHandler *Summary
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, summaryHandler *Summary) *Router {
	return &Router{
		cfg:            cfg,
		summaryHandler: summaryHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// API docs stay off in production
	if rt.cfg == nil || !rt.cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", rt.healthCheck)

	rt.setupSummaryRoutes(api)
}

// setupSummaryRoutes configures the summarize and share routes
func (rt *Router) setupSummaryRoutes(g *echo.Group) {
	g.POST("/summarize", rt.summaryHandler.Summarize)
	g.POST("/share", rt.summaryHandler.Share)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}
