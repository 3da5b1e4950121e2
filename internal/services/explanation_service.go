package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/pkg/models"
)

// ExplanationService decomposes the blended score of one movie for one
// user into its content-based and collaborative components. Unlike the
// hybrid merge it carries no popularity nudge: it explains the
// personalized signals, not the final ranking.
type ExplanationService struct {
	content       PersonalizedRecommender
	collaborative PersonalizedRecommender
	config        *config.RecommendationConfig
	logger        *logrus.Logger
}

func NewExplanationService(
	content PersonalizedRecommender,
	collaborative PersonalizedRecommender,
	config *config.RecommendationConfig,
	logger *logrus.Logger,
) *ExplanationService {
	return &ExplanationService{
		content:       content,
		collaborative: collaborative,
		config:        config,
		logger:        logger,
	}
}

func (s *ExplanationService) Explain(ctx context.Context, userID, movieID int64) (*models.Explanation, error) {
	// Generous internal limit so the target movie is found even when it
	// ranks well below the default output cutoff.
	contentResults, err := s.content.Recommend(ctx, userID, s.config.HybridMergeLimit)
	if err != nil {
		return nil, fmt.Errorf("content-based strategy: %w", err)
	}

	collabResults, err := s.collaborative.Recommend(ctx, userID, s.config.HybridMergeLimit)
	if err != nil {
		return nil, fmt.Errorf("collaborative strategy: %w", err)
	}

	explanation := &models.Explanation{MovieID: movieID}

	contentScore := 0.0
	if item := findByMovieID(contentResults, movieID); item != nil {
		contentScore = item.Score
		explanation.ContentBased = &models.ContentSignal{
			Score:         item.Score,
			MatchedGenres: item.Movie.Genres,
		}
	}

	collabScore := 0.0
	if item := findByMovieID(collabResults, movieID); item != nil {
		// Predicted ratings live on the raw 0..5 scale; normalize for
		// the blend but report the raw prediction.
		collabScore = item.Score / 5
		explanation.Collaborative = &models.CollaborativeSignal{
			PredictedRating: item.Score,
		}
	}

	alpha := s.config.HybridWeightAlpha
	explanation.FinalScore = alpha*contentScore + (1-alpha)*collabScore

	s.logger.WithFields(logrus.Fields{
		"user_id":     userID,
		"movie_id":    movieID,
		"final_score": explanation.FinalScore,
	}).Debug("Explanation generated")

	return explanation, nil
}

func findByMovieID(items []models.Recommendation, movieID int64) *models.Recommendation {
	for i := range items {
		if items[i].Movie.MovieID == movieID {
			return &items[i]
		}
	}
	return nil
}
