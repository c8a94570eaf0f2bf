package app

import (
	"fmt"
	"net"

	"github.com/MKhiriev/movies-api/internal/config"
	"github.com/MKhiriev/movies-api/internal/cors"
	"github.com/MKhiriev/movies-api/internal/handler"
	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/metrics"
	"github.com/MKhiriev/movies-api/internal/server"
	"github.com/MKhiriev/movies-api/internal/service"
	"github.com/MKhiriev/movies-api/models"
)

const unknownVersion = "N/A"

type App struct {
	server server.Server
	logger *logger.Logger
}

// New builds the application. The listener is bound before New returns.
// When cfg.App.Version is empty the build version is reported instead.
func New(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	cfg.App.Version = resolveVersion(cfg.App.Version, buildInfo)

	policy, err := cors.NewPolicy(corsOptions(cfg.CORS))
	if err != nil {
		return nil, fmt.Errorf("error creating cors policy: %w", err)
	}

	m := metrics.NewMetrics()

	services, err := service.NewServices(*cfg, m, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, policy, m, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run serves until a termination signal or Shutdown.
func (a *App) Run() error {
	return a.server.RunServer()
}

func (a *App) Shutdown() {
	a.server.Shutdown()
}

func (a *App) Addr() net.Addr {
	return a.server.Addr()
}

func resolveVersion(configured string, buildInfo models.AppBuildInfo) string {
	if configured != "" {
		return configured
	}
	if v := buildInfo.BuildVersion(); v != "" {
		return v
	}
	return unknownVersion
}

func corsOptions(cfg config.CORS) cors.Options {
	return cors.Options{
		Origins:             cfg.Origins,
		Methods:             cfg.Methods,
		AllowHeaders:        cfg.AllowHeaders,
		ExposeHeaders:       cfg.ExposeHeaders,
		MaxAge:              cfg.MaxAge,
		SupportsCredentials: cfg.SupportsCredentials,
		SendWildcard:        cfg.SendWildcard,
	}
}
