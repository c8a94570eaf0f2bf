package http

import (
	"net/http"

	"github.com/MKhiriev/movies-api/internal/route"
)

// SystemGroup serves liveness, version and metrics endpoints.
func (h *Handler) SystemGroup() route.Group {
	return *route.NewGroup("system").
		Get("/healthz", h.healthz).
		Get("/version", h.getServerVersion).
		Get("/metrics", h.metrics.Handler().ServeHTTP)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
