package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Prefixes the route-groups are mounted under.
const (
	MoviesPrefix = "/movies"
	SystemPrefix = "/"
)

// Init builds the router from the route table. The table is sealed first;
// groups must be mounted before Init is called.
func (h *Handler) Init() *chi.Mux {
	h.table.Seal()

	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		middleware.StripSlashes,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.policy.Handler,
		withGZip,
	)

	perGroup := make(map[string]int)
	for _, e := range h.table.Routes() {
		router.Method(e.Method, e.Path, e.Handler)
		perGroup[e.Group]++
	}

	// preflight is answered uniformly, the CORS middleware adds the headers
	for _, path := range h.table.Paths() {
		router.Options(path, h.preflight)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.checkHTTPMethod)

	for group, n := range perGroup {
		h.metrics.SetMountedRoutes(group, n)
	}

	h.logger.Info().
		Int("routes", h.table.Len()).
		Strs("paths", h.table.Paths()).
		Msg("router initialized")

	return router
}
