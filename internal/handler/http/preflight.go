package http

import (
	"net/http"

	"github.com/MKhiriev/movies-api/internal/cors"
	"github.com/MKhiriev/movies-api/internal/logger"
)

// preflight answers OPTIONS on every mounted path. The response headers were
// already attached by the CORS middleware; a rejected preflight still gets
// 204 but without Access-Control-Allow-Methods, which the browser treats as
// a failure.
func (h *Handler) preflight(w http.ResponseWriter, r *http.Request) {
	d := h.policy.Evaluate(cors.RequestFrom(r))
	allowed := d.OriginAllowed && d.MethodAllowed
	h.metrics.RecordPreflight(allowed)

	if !allowed {
		logger.FromRequest(r).Debug().
			Str("origin", r.Header.Get(cors.HeaderOrigin)).
			Str("requested_method", r.Header.Get(cors.HeaderAccessControlRequestMethod)).
			Msg("preflight not granted")
	}

	w.WriteHeader(http.StatusNoContent)
}
