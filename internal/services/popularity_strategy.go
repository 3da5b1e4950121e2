package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/pkg/models"
)

// PopularityStrategy ranks movies by volume-adjusted average rating. It
// serves as the cold-start fallback and as a tie-breaking signal in the
// hybrid merge.
type PopularityStrategy struct {
	ratings RatingsProvider
	movies  MovieStore
	config  *config.RecommendationConfig
	logger  *logrus.Logger
}

func NewPopularityStrategy(
	ratings RatingsProvider,
	movies MovieStore,
	config *config.RecommendationConfig,
	logger *logrus.Logger,
) *PopularityStrategy {
	return &PopularityStrategy{
		ratings: ratings,
		movies:  movies,
		config:  config,
		logger:  logger,
	}
}

func (s *PopularityStrategy) Recommend(ctx context.Context, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = s.config.DefaultOutputLimit
	}

	byMovie, err := s.ratings.RatingsByMovie(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grouped ratings: %w", err)
	}

	if len(byMovie) == 0 {
		return nil, nil
	}

	// avg * ln(1+count): rewards quality and evidence volume, with the
	// log damping volume so it cannot dominate on its own.
	popularity := make(map[int64]float64, len(byMovie))
	movieIDs := make([]int64, 0, len(byMovie))
	for movieID, ratings := range byMovie {
		sum := 0.0
		for _, rating := range ratings {
			sum += rating
		}
		avg := sum / float64(len(ratings))

		popularity[movieID] = avg * math.Log(1+float64(len(ratings)))
		movieIDs = append(movieIDs, movieID)
	}

	movies, err := s.movies.FindMany(ctx, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve movies: %w", err)
	}

	results := make([]models.Recommendation, 0, len(movies))
	maxScore := 0.0
	for _, movie := range movies {
		score := popularity[movie.MovieID]
		if score > maxScore {
			maxScore = score
		}
		results = append(results, models.Recommendation{
			Movie:    movie,
			Score:    score,
			Strategy: models.StrategyPopularity,
		})
	}

	// Normalize so the top item scores exactly 1.0.
	if maxScore > 0 {
		for i := range results {
			results[i].Score /= maxScore
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Movie.MovieID < results[j].Movie.MovieID
	})

	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.WithFields(logrus.Fields{
		"rated_movies": len(byMovie),
		"results":      len(results),
	}).Debug("Popularity recommendations generated")

	return results, nil
}
