package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/pkg/models"
)

// ContentBasedStrategy scores unseen movies by cosine similarity between
// the user's genre-preference profile and each candidate's one-hot genre
// vector.
type ContentBasedStrategy struct {
	ratings RatingStore
	movies  MovieStore
	config  *config.RecommendationConfig
	logger  *logrus.Logger
}

func NewContentBasedStrategy(
	ratings RatingStore,
	movies MovieStore,
	config *config.RecommendationConfig,
	logger *logrus.Logger,
) *ContentBasedStrategy {
	return &ContentBasedStrategy{
		ratings: ratings,
		movies:  movies,
		config:  config,
		logger:  logger,
	}
}

func (s *ContentBasedStrategy) Recommend(ctx context.Context, userID int64, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = s.config.DefaultOutputLimit
	}

	userRatings, err := s.ratings.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user ratings: %w", err)
	}

	// No signal at all: no exploration either.
	if len(userRatings) == 0 {
		return nil, nil
	}

	seenIDs := make([]int64, 0, len(userRatings))
	likedIDs := make([]int64, 0, len(userRatings))
	for _, rating := range userRatings {
		seenIDs = append(seenIDs, rating.MovieID)
		if rating.Rating >= s.config.PositiveRatingThreshold {
			likedIDs = append(likedIDs, rating.MovieID)
		}
	}

	if len(likedIDs) == 0 {
		return nil, nil
	}

	// Liked ids that resolve to nothing are dropped, not fatal.
	likedMovies, err := s.movies.FindMany(ctx, likedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve liked movies: %w", err)
	}
	if len(likedMovies) == 0 {
		return nil, nil
	}

	// Genre universe snapshot for this request; fixes one-hot vector
	// dimensionality and axis order.
	allGenres, err := s.movies.DistinctGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load genre universe: %w", err)
	}

	profileVector := buildProfileVector(likedMovies, allGenres)
	preferredGenres := genreUnion(likedMovies)

	candidates, err := s.movies.FindCandidates(ctx, seenIDs, preferredGenres, s.config.ContentCandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	var results []models.Recommendation
	for _, candidate := range candidates {
		candidateVector := oneHotVector(candidate.Genres, allGenres)

		similarity, ok, err := CosineSimilarity(profileVector, candidateVector)
		if err != nil {
			return nil, err
		}
		if !ok {
			similarity = 0
		}

		if similarity >= s.config.MinSimilarityScore {
			results = append(results, models.Recommendation{
				Movie:    candidate,
				Score:    similarity,
				Strategy: models.StrategyContentBased,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"liked":      len(likedMovies),
		"candidates": len(candidates),
		"results":    len(results),
	}).Debug("Content-based recommendations generated")

	return results, nil
}

// buildProfileVector averages the one-hot genre vectors of the liked
// movies; each dimension is the fraction of liked movies carrying that
// genre.
func buildProfileVector(movies []models.Movie, allGenres []string) []float64 {
	vector := make([]float64, len(allGenres))

	for _, movie := range movies {
		movieVector := oneHotVector(movie.Genres, allGenres)
		for i := range vector {
			vector[i] += movieVector[i]
		}
	}

	for i := range vector {
		vector[i] /= float64(len(movies))
	}

	return vector
}

func oneHotVector(movieGenres, allGenres []string) []float64 {
	set := make(map[string]struct{}, len(movieGenres))
	for _, genre := range movieGenres {
		set[genre] = struct{}{}
	}

	vector := make([]float64, len(allGenres))
	for i, genre := range allGenres {
		if _, ok := set[genre]; ok {
			vector[i] = 1
		}
	}

	return vector
}

// genreUnion collects the distinct genres across the given movies,
// keeping first-seen order.
func genreUnion(movies []models.Movie) []string {
	seen := make(map[string]struct{})
	var genres []string
	for _, movie := range movies {
		for _, genre := range movie.Genres {
			if _, ok := seen[genre]; ok {
				continue
			}
			seen[genre] = struct{}{}
			genres = append(genres, genre)
		}
	}

	return genres
}
