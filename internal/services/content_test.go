package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flickpick/flickpick/pkg/models"
)

func TestContentService_GetMovie(t *testing.T) {
	store := &fakeMovieStore{movies: map[int64]models.Movie{
		10: movie(10, "Action"),
	}}
	service := NewContentService(store, testLogger())

	t.Run("found", func(t *testing.T) {
		found, err := service.GetMovie(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, int64(10), found.MovieID)
	})

	t.Run("missing reports a typed error", func(t *testing.T) {
		_, err := service.GetMovie(context.Background(), 999)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestContentService_Search(t *testing.T) {
	t.Run("defaults an unset limit", func(t *testing.T) {
		store := &fakeMovieStore{}
		service := NewContentService(store, testLogger())

		_, err := service.Search(context.Background(), models.MovieSearchRequest{Query: "matrix"})

		require.NoError(t, err)
		assert.Equal(t, "matrix", store.lastQuery)
		assert.Equal(t, 20, store.lastLimit)
		assert.Equal(t, 0, store.lastOffset)
	})

	t.Run("caps an oversized limit and floors a negative offset", func(t *testing.T) {
		store := &fakeMovieStore{}
		service := NewContentService(store, testLogger())

		_, err := service.Search(context.Background(), models.MovieSearchRequest{
			Genre:  "Action",
			Limit:  1000,
			Offset: -5,
		})

		require.NoError(t, err)
		assert.Equal(t, "Action", store.lastGenre)
		assert.Equal(t, 100, store.lastLimit)
		assert.Equal(t, 0, store.lastOffset)
	})
}

func TestContentService_Genres(t *testing.T) {
	store := &fakeMovieStore{genres: []string{"Action", "Comedy"}}
	service := NewContentService(store, testLogger())

	genres, err := service.Genres(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Comedy"}, genres)
}
