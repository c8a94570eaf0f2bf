package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/movies-api/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrMovieNotFound:         http.StatusNotFound,
	service.ErrInvalidMovieID:        http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	ErrInvalidJSON:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
