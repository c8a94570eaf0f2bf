package http

import (
	"github.com/MKhiriev/movies-api/internal/cors"
	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/metrics"
	"github.com/MKhiriev/movies-api/internal/route"
	"github.com/MKhiriev/movies-api/internal/service"
)

type Handler struct {
	services *service.Services
	policy   *cors.Policy
	table    *route.Table
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, policy *cors.Policy, table *route.Table, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		policy:   policy,
		table:    table,
		metrics:  m,
		logger:   logger,
	}
}
