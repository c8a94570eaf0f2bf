package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/movies-api/internal/mock"
	"github.com/MKhiriev/movies-api/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// loggingCtx returns a context carrying a zerolog logger that writes to buf.
func loggingCtx(buf *bytes.Buffer) context.Context {
	l := zerolog.New(buf)
	return l.WithContext(context.Background())
}

func TestMovieLoggingService_DelegatesAndLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockMovieService(ctrl)
	svc := NewMovieLoggingService().Wrap(inner)

	var buf bytes.Buffer
	ctx := loggingCtx(&buf)
	in := models.Movie{Title: "Solaris"}
	out := models.Movie{ID: "4d0f3a52-8a5c-4d7e-9a3b-1d2f3e4a5b6c", Title: "Solaris"}

	inner.EXPECT().Create(ctx, in).Return(out, nil)

	got, err := svc.Create(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, out, got)
	assert.Contains(t, buf.String(), "movie created")
	assert.Contains(t, buf.String(), out.ID)
}

func TestMovieLoggingService_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockMovieService(ctrl)
	svc := NewMovieLoggingService().Wrap(inner)

	var buf bytes.Buffer
	ctx := loggingCtx(&buf)
	id := "4d0f3a52-8a5c-4d7e-9a3b-1d2f3e4a5b6c"

	gomock.InOrder(
		inner.EXPECT().Get(ctx, id).Return(models.Movie{}, ErrMovieNotFound),
		inner.EXPECT().Update(ctx, id, gomock.Any()).Return(models.Movie{}, ErrMovieNotFound),
		inner.EXPECT().Delete(ctx, "bad").Return(ErrInvalidMovieID),
		inner.EXPECT().List(ctx).Return(nil, context.Canceled),
	)

	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	_, err = svc.Update(ctx, id, models.Movie{Title: "x"})
	assert.ErrorIs(t, err, ErrMovieNotFound)

	err = svc.Delete(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidMovieID)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	logs := buf.String()
	assert.Contains(t, logs, "error getting movie")
	assert.Contains(t, logs, "error updating movie")
	assert.Contains(t, logs, "error deleting movie")
	assert.Contains(t, logs, "error listing movies")
}

func TestMovieLoggingService_WithoutContextLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockMovieService(ctrl)
	svc := NewMovieLoggingService().Wrap(inner)

	inner.EXPECT().List(gomock.Any()).Return([]models.Movie{{Title: "Mirror"}}, nil)

	movies, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, movies, 1)
}
