package http

import (
	"net/http"
	"path"

	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/route"
	"github.com/MKhiriev/movies-api/models"
	"github.com/go-chi/chi/v5"
)

// MoviesGroup is the movies route-group. The explicit OPTIONS route mirrors
// what the group would declare standalone; the route table drops it because
// preflight is answered for every mounted path.
func (h *Handler) MoviesGroup() route.Group {
	return *route.NewGroup("movies").
		Get("/", h.listMovies).
		Post("/", h.createMovie).
		Options("/", h.preflight).
		Get("/{id}", h.getMovie).
		Put("/{id}", h.updateMovie).
		Delete("/{id}", h.deleteMovie)
}

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.MovieService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.services.MovieService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	var movie models.Movie
	if err := decodeJSON(w, r, &movie); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createMovie").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	created, err := h.services.MovieService.Create(r.Context(), movie)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	var movie models.Movie
	if err := decodeJSON(w, r, &movie); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateMovie").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	updated, err := h.services.MovieService.Update(r.Context(), chi.URLParam(r, "id"), movie)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.services.MovieService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
