package http

import (
	"net/http"
)

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "not found")
}
