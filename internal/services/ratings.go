package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/pkg/models"
)

// RatingsService owns the rating write path and the grouped read views
// the strategies consume. Grouping is recomputed on every call; nothing
// is cached across requests.
type RatingsService struct {
	ratings   RatingStore
	publisher RatingEventPublisher
	logger    *logrus.Logger
}

func NewRatingsService(ratings RatingStore, publisher RatingEventPublisher, logger *logrus.Logger) *RatingsService {
	return &RatingsService{
		ratings:   ratings,
		publisher: publisher,
		logger:    logger,
	}
}

// SetRating upserts the rating for a (user, movie) pair and publishes a
// rating event. A publish failure is logged, never surfaced: the write
// already succeeded.
func (s *RatingsService) SetRating(ctx context.Context, userID, movieID int64, rating float64) (models.Rating, error) {
	updated, err := s.ratings.Upsert(ctx, userID, movieID, rating)
	if err != nil {
		return models.Rating{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRating(ctx, updated); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"user_id":  userID,
				"movie_id": movieID,
			}).Warn("Failed to publish rating event")
		}
	}

	return updated, nil
}

func (s *RatingsService) GetUserRatings(ctx context.Context, userID int64) ([]models.Rating, error) {
	return s.ratings.FindByUser(ctx, userID)
}

// RatingsByUser groups all ratings as userID -> movieID -> rating.
func (s *RatingsService) RatingsByUser(ctx context.Context) (map[int64]map[int64]float64, error) {
	all, err := s.ratings.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	byUser := make(map[int64]map[int64]float64)
	for _, rating := range all {
		userRatings, ok := byUser[rating.UserID]
		if !ok {
			userRatings = make(map[int64]float64)
			byUser[rating.UserID] = userRatings
		}
		userRatings[rating.MovieID] = rating.Rating
	}

	return byUser, nil
}

// RatingsByMovie groups all rating values per movie.
func (s *RatingsService) RatingsByMovie(ctx context.Context) (map[int64][]float64, error) {
	all, err := s.ratings.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	byMovie := make(map[int64][]float64)
	for _, rating := range all {
		byMovie[rating.MovieID] = append(byMovie[rating.MovieID], rating.Rating)
	}

	return byMovie, nil
}
