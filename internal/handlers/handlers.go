package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/services"
)

type Handlers struct {
	Health         *HealthHandler
	User           *UserHandler
	Rating         *RatingHandler
	Content        *ContentHandler
	Recommendation *RecommendationHandler
}

func New(logger *logrus.Logger, services *services.Services) *Handlers {
	return &Handlers{
		Health:         NewHealthHandler(logger, services.Health),
		User:           NewUserHandler(logger, services.Users),
		Rating:         NewRatingHandler(logger, services.Ratings),
		Content:        NewContentHandler(logger, services.Content),
		Recommendation: NewRecommendationHandler(logger, services.Orchestrator, services.Explanations),
	}
}

// errorResponse is the uniform error envelope for every endpoint.
func errorResponse(code, message string) map[string]any {
	return map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	}
}
