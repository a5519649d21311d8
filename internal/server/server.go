package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/oshokin/yadisk-grabber/internal/config"
	"github.com/oshokin/yadisk-grabber/internal/logger"
	service "github.com/oshokin/yadisk-grabber/internal/service/yadisk"
)

// Server wraps the Echo server with its dependencies.
type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	diskService service.Service
}

// NewServer creates an Echo server with middleware, templates and routes.
func NewServer(cfg *config.Config, diskService service.Service) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = NewTemplateRenderer()

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	server := &Server{
		echo:        e,
		cfg:         cfg,
		diskService: diskService,
	}

	server.registerRoutes()

	return server
}

// registerRoutes wires the HTTP routes.
func (s *Server) registerRoutes() {
	s.echo.GET("/", s.indexPage)
	s.echo.GET("/files", s.listFiles)
	s.echo.POST("/files/download", s.downloadFiles)
	s.echo.GET("/health", s.health)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	logger.Infof(ctx, "Starting web interface on %s", s.cfg.ServerAddress)

	err := s.echo.Start(s.cfg.ServerAddress)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestLogger logs every request through the application logger.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()

			if v.Error != nil {
				logger.ErrorKV(ctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency", v.Latency.String(),
					"error", v.Error.Error())

				return nil
			}

			logger.InfoKV(ctx, "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String())

			return nil
		},
	})
}
