package http

import (
	"log/slog"

	"restaurant/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the collaborators of the echo instance.
type RouterConfig struct {
	// StaticDir is served under "/" when set.
	StaticDir string

	Logger *slog.Logger

	// Registry receives the HTTP collectors and is exposed on /metrics.
	// A private registry is created when nil.
	Registry *prometheus.Registry
}

// NewRouter builds the echo instance serving the API, the swagger UI,
// metrics and static files.
func NewRouter(server api.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwaggerDoc(); err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	metrics, err := NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = ErrorHandler(logger)

	// Panics are recovered inside metrics and logging so they are recorded as 500s.
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(ctx.Request().Context(), "Request handled", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(validator)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(api.InstanceName)))
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	api.RegisterHandlers(e, server)

	return e, nil
}
