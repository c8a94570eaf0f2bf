package service

import (
	"context"

	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/models"
)

// MovieLoggingService logs the outcome of every catalog operation with the
// request-scoped logger found in ctx.
type MovieLoggingService struct {
	inner MovieService
}

func NewMovieLoggingService() MovieServiceWrapper {
	return &MovieLoggingService{}
}

func (s *MovieLoggingService) Wrap(inner MovieService) MovieService {
	s.inner = inner
	return s
}

func (s *MovieLoggingService) List(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.inner.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing movies")
		return nil, err
	}

	logger.FromContext(ctx).Debug().Int("count", len(movies)).Msg("movies listed")
	return movies, nil
}

func (s *MovieLoggingService) Get(ctx context.Context, id string) (models.Movie, error) {
	movie, err := s.inner.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("movie_id", id).Msg("error getting movie")
		return models.Movie{}, err
	}

	return movie, nil
}

func (s *MovieLoggingService) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	created, err := s.inner.Create(ctx, movie)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", movie.Title).Msg("error creating movie")
		return models.Movie{}, err
	}

	logger.FromContext(ctx).Info().Str("movie_id", created.ID).Str("title", created.Title).Msg("movie created")
	return created, nil
}

func (s *MovieLoggingService) Update(ctx context.Context, id string, movie models.Movie) (models.Movie, error) {
	updated, err := s.inner.Update(ctx, id, movie)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("movie_id", id).Msg("error updating movie")
		return models.Movie{}, err
	}

	logger.FromContext(ctx).Info().Str("movie_id", updated.ID).Msg("movie updated")
	return updated, nil
}

func (s *MovieLoggingService) Delete(ctx context.Context, id string) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("movie_id", id).Msg("error deleting movie")
		return err
	}

	logger.FromContext(ctx).Info().Str("movie_id", id).Msg("movie deleted")
	return nil
}
