package http

import (
	"context"
	"log/slog"
	"net/http"

	"workify/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries what NewRouter needs besides the Server.
type RouterConfig struct {
	Doc       *openapi3.T
	JWTSecret []byte
	Logger    *slog.Logger
	// HealthCheck reports readiness of backing services; nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

// NewRouter builds the echo instance serving the API, the swagger UI, the
// health probe and the metrics endpoint.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	validate, err := ValidationMiddleware(cfg.Doc)
	if err != nil {
		return nil, err
	}
	swaggerUI, err := SwaggerHandler(cfg.Doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(Metrics())
	e.Use(AuthMiddleware(cfg.JWTSecret))
	e.Use(validate)

	e.GET("/health", func(c echo.Context) error {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", swaggerUI)

	servers.RegisterHandlers(e, server)

	return e, nil
}
