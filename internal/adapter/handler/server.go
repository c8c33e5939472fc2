package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpmw "github.com/johnquangdev/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// NewServer builds the echo instance with middleware, error rendering and
// routes. It does not start listening.
func NewServer(cfg *config.Config, summaryHandler *Summary, logger *zap.Logger) *echo.Echo {
	e := echo.New()

	e.HTTPErrorHandler = ErrorHandler(logger)

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpmw.RequestID())
	e.Use(httpmw.CallContext())
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// Transcript size ceiling
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	NewRouter(cfg, summaryHandler).Setup(e)

	return e
}
