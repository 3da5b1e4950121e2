package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flickpick/flickpick/pkg/models"
)

func TestRatingsService_SetRating(t *testing.T) {
	t.Run("upserts and publishes an event", func(t *testing.T) {
		store := &fakeRatingStore{}
		publisher := &fakePublisher{}
		service := NewRatingsService(store, publisher, testLogger())

		updated, err := service.SetRating(context.Background(), 1, 10, 4.5)

		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.UserID)
		assert.Equal(t, int64(10), updated.MovieID)
		assert.Equal(t, 4.5, updated.Rating)

		require.Len(t, publisher.published, 1)
		assert.Equal(t, updated, publisher.published[0])
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		store := &fakeRatingStore{}
		publisher := &fakePublisher{err: errors.New("broker down")}
		service := NewRatingsService(store, publisher, testLogger())

		_, err := service.SetRating(context.Background(), 1, 10, 4.5)

		require.NoError(t, err)
		assert.Len(t, store.upserted, 1)
	})

	t.Run("works without a publisher", func(t *testing.T) {
		service := NewRatingsService(&fakeRatingStore{}, nil, testLogger())

		_, err := service.SetRating(context.Background(), 1, 10, 4.5)

		require.NoError(t, err)
	})

	t.Run("store failure surfaces and nothing is published", func(t *testing.T) {
		boom := errors.New("db down")
		publisher := &fakePublisher{}
		service := NewRatingsService(&fakeRatingStore{err: boom}, publisher, testLogger())

		_, err := service.SetRating(context.Background(), 1, 10, 4.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, publisher.published)
	})
}

func TestRatingsService_Grouping(t *testing.T) {
	store := &fakeRatingStore{ratings: []models.Rating{
		rating(1, 10, 5),
		rating(1, 11, 3),
		rating(2, 10, 4),
	}}
	service := NewRatingsService(store, nil, testLogger())

	t.Run("by user", func(t *testing.T) {
		byUser, err := service.RatingsByUser(context.Background())

		require.NoError(t, err)
		assert.Equal(t, map[int64]map[int64]float64{
			1: {10: 5, 11: 3},
			2: {10: 4},
		}, byUser)
	})

	t.Run("by movie", func(t *testing.T) {
		byMovie, err := service.RatingsByMovie(context.Background())

		require.NoError(t, err)
		require.Len(t, byMovie, 2)
		assert.ElementsMatch(t, []float64{5, 4}, byMovie[10])
		assert.Equal(t, []float64{3}, byMovie[11])
	})

	t.Run("user ratings pass through", func(t *testing.T) {
		ratings, err := service.GetUserRatings(context.Background(), 1)

		require.NoError(t, err)
		assert.Len(t, ratings, 2)
	})
}
