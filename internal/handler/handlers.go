package handler

import (
	"fmt"

	"github.com/MKhiriev/movies-api/internal/cors"
	"github.com/MKhiriev/movies-api/internal/handler/http"
	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/metrics"
	"github.com/MKhiriev/movies-api/internal/route"
	"github.com/MKhiriev/movies-api/internal/service"
)

type Handlers struct {
	HTTP  *http.Handler
	Table *route.Table
}

// NewHandlers creates the HTTP handler and mounts every route-group into a
// fresh route table. A collision between groups is returned as an error
// wrapping route.ErrRouteCollision; the table is left unusable in that case.
func NewHandlers(services *service.Services, policy *cors.Policy, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	table := route.NewTable(logger)
	h := http.NewHandler(services, policy, table, m, logger)

	mounts := []struct {
		prefix string
		group  route.Group
	}{
		{http.MoviesPrefix, h.MoviesGroup()},
		{http.SystemPrefix, h.SystemGroup()},
	}

	for _, mnt := range mounts {
		if err := table.Mount(mnt.prefix, mnt.group); err != nil {
			return nil, fmt.Errorf("%w: group %q at %q: %w", errMountingRouteGroup, mnt.group.Name, mnt.prefix, err)
		}
	}
	table.Seal()

	return &Handlers{
		HTTP:  h,
		Table: table,
	}, nil
}
