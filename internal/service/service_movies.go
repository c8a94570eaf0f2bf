package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/metrics"
	"github.com/MKhiriev/movies-api/models"
	"github.com/google/uuid"
)

// movieCatalog is an in-process MovieService. Movies live only as long as
// the process does.
type movieCatalog struct {
	mu     sync.RWMutex
	movies map[string]models.Movie
	order  []string

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewMovieService(m *metrics.Metrics, logger *logger.Logger) MovieService {
	return &movieCatalog{
		movies:  make(map[string]models.Movie),
		now:     func() time.Time { return time.Now().UTC() },
		metrics: m,
		logger:  logger,
	}
}

func (c *movieCatalog) List(ctx context.Context) ([]models.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	movies := make([]models.Movie, 0, len(c.order))
	for _, id := range c.order {
		movies = append(movies, cloneMovie(c.movies[id]))
	}
	return movies, nil
}

func (c *movieCatalog) Get(ctx context.Context, id string) (models.Movie, error) {
	if err := ctx.Err(); err != nil {
		return models.Movie{}, err
	}

	key, err := parseMovieID(id)
	if err != nil {
		return models.Movie{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	movie, ok := c.movies[key]
	if !ok {
		return models.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, key)
	}
	return cloneMovie(movie), nil
}

func (c *movieCatalog) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if err := ctx.Err(); err != nil {
		return models.Movie{}, err
	}

	now := c.now()
	movie = cloneMovie(movie)
	movie.ID = uuid.NewString()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	c.mu.Lock()
	c.movies[movie.ID] = movie
	c.order = append(c.order, movie.ID)
	size := len(c.order)
	c.mu.Unlock()

	c.observeSize(size)
	return cloneMovie(movie), nil
}

func (c *movieCatalog) Update(ctx context.Context, id string, movie models.Movie) (models.Movie, error) {
	if err := ctx.Err(); err != nil {
		return models.Movie{}, err
	}

	key, err := parseMovieID(id)
	if err != nil {
		return models.Movie{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.movies[key]
	if !ok {
		return models.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, key)
	}

	movie = cloneMovie(movie)
	movie.ID = stored.ID
	movie.CreatedAt = stored.CreatedAt
	movie.UpdatedAt = c.now()
	c.movies[key] = movie

	return cloneMovie(movie), nil
}

func (c *movieCatalog) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := parseMovieID(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if _, ok := c.movies[key]; !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrMovieNotFound, key)
	}
	delete(c.movies, key)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == key })
	size := len(c.order)
	c.mu.Unlock()

	c.observeSize(size)
	return nil
}

func (c *movieCatalog) observeSize(n int) {
	if c.metrics != nil {
		c.metrics.SetMoviesStored(n)
	}
}

// parseMovieID validates id and returns its canonical lowercase form.
func parseMovieID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidMovieID, id, err)
	}
	return parsed.String(), nil
}

func cloneMovie(m models.Movie) models.Movie {
	m.Genres = slices.Clone(m.Genres)
	return m
}
