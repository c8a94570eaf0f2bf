// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/movies-api/internal/logger"
)

// checkHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. Routes are looked up by (path, method) pair, so a known
// path requested with an unregistered method is answered exactly like an
// unknown path: HTTP 404 with a JSON body.
func (h *Handler) checkHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for path")

	h.notFound(w, r)
}
