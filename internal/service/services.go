package service

import (
	"fmt"

	"github.com/MKhiriev/movies-api/internal/config"
	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/metrics"
)

// MovieServiceWrapper defines middleware composition for MovieService.
// Implementations wrap an existing MovieService to add behavior such as
// logging.
type MovieServiceWrapper interface {
	Wrap(MovieService) MovieService // returns a decorated MovieService applying additional behavior
}

type Services struct {
	AppInfoService AppInfoService
	MovieService   MovieService
}

func NewServices(cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	movieService := NewMovieLoggingService().Wrap(NewMovieService(m, logger))

	return &Services{
		AppInfoService: appInfoService,
		MovieService:   movieService,
	}, nil
}
