package service

import (
	"context"

	"github.com/MKhiriev/movies-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// MovieService manages the movie catalog behind the /movies route-group.
type MovieService interface {
	List(ctx context.Context) ([]models.Movie, error)
	Get(ctx context.Context, id string) (models.Movie, error)
	Create(ctx context.Context, movie models.Movie) (models.Movie, error)
	Update(ctx context.Context, id string, movie models.Movie) (models.Movie, error)
	Delete(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
