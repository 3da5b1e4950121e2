package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/pkg/models"
)

// CollaborativeStrategy predicts ratings for unseen movies from the
// similarity-weighted ratings of the user's nearest rating-profile
// neighbors.
type CollaborativeStrategy struct {
	ratings RatingsProvider
	movies  MovieStore
	config  *config.RecommendationConfig
	logger  *logrus.Logger
}

func NewCollaborativeStrategy(
	ratings RatingsProvider,
	movies MovieStore,
	config *config.RecommendationConfig,
	logger *logrus.Logger,
) *CollaborativeStrategy {
	return &CollaborativeStrategy{
		ratings: ratings,
		movies:  movies,
		config:  config,
		logger:  logger,
	}
}

type neighbor struct {
	userID     int64
	similarity float64
	ratings    map[int64]float64
}

func (s *CollaborativeStrategy) Recommend(ctx context.Context, userID int64, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = s.config.DefaultOutputLimit
	}

	byUser, err := s.ratings.RatingsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grouped ratings: %w", err)
	}

	targetRatings, ok := byUser[userID]
	if !ok {
		return nil, nil
	}

	var neighbors []neighbor
	for otherID, otherRatings := range byUser {
		if otherID == userID {
			continue
		}

		similarity, err := s.userSimilarity(targetRatings, otherRatings)
		if err != nil {
			return nil, err
		}

		if similarity >= s.config.MinSimilarityScore {
			neighbors = append(neighbors, neighbor{
				userID:     otherID,
				similarity: similarity,
				ratings:    otherRatings,
			})
		}
	}

	// Neighbor ties broken by user id so map iteration order cannot
	// change who makes the cut.
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].userID < neighbors[j].userID
	})

	if len(neighbors) > s.config.NeighborLimit {
		neighbors = neighbors[:s.config.NeighborLimit]
	}

	type accumulator struct {
		weightedSum   float64
		similaritySum float64
	}

	candidates := make(map[int64]*accumulator)
	for _, n := range neighbors {
		for movieID, rating := range n.ratings {
			if _, seen := targetRatings[movieID]; seen {
				continue
			}

			entry, ok := candidates[movieID]
			if !ok {
				entry = &accumulator{}
				candidates[movieID] = entry
			}

			entry.weightedSum += rating * n.similarity
			entry.similaritySum += n.similarity
		}
	}

	predicted := make(map[int64]float64, len(candidates))
	candidateIDs := make([]int64, 0, len(candidates))
	for movieID, entry := range candidates {
		score := entry.weightedSum / entry.similaritySum
		if score < s.config.MinPredictedScore {
			continue
		}
		predicted[movieID] = score
		candidateIDs = append(candidateIDs, movieID)
	}

	// Unresolved candidate ids drop out here.
	movies, err := s.movies.FindMany(ctx, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve candidate movies: %w", err)
	}

	results := make([]models.Recommendation, 0, len(movies))
	for _, movie := range movies {
		results = append(results, models.Recommendation{
			Movie:    movie,
			Score:    predicted[movie.MovieID],
			Strategy: models.StrategyCollaborative,
		})
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
		"user_id":   userID,
		"neighbors": len(neighbors),
		"results":   len(results),
	}).Debug("Collaborative recommendations generated")

	return results, nil
}

// userSimilarity compares two rating maps over their commonly rated
// movies. Too little overlap is not evidence of taste alignment, so it
// yields 0 rather than a spurious high score from a couple of shared
// blockbusters.
func (s *CollaborativeStrategy) userSimilarity(target, other map[int64]float64) (float64, error) {
	var common []int64
	for movieID := range target {
		if _, ok := other[movieID]; ok {
			common = append(common, movieID)
		}
	}

	if len(common) < s.config.MinimalCommonMovies {
		return 0, nil
	}

	vecA := make([]float64, len(common))
	vecB := make([]float64, len(common))
	for i, movieID := range common {
		vecA[i] = target[movieID]
		vecB[i] = other[movieID]
	}

	similarity, ok, err := CosineSimilarity(vecA, vecB)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	return similarity, nil
}
