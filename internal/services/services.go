package services

import (
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/internal/database"
	"github.com/flickpick/flickpick/internal/messaging"
	"github.com/flickpick/flickpick/internal/repositories"
)

type Services struct {
	Health                *HealthService
	Ratings               *RatingsService
	Content               *ContentService
	Users                 *UsersService
	ContentStrategy       *ContentBasedStrategy
	CollaborativeStrategy *CollaborativeStrategy
	PopularityStrategy    *PopularityStrategy
	Orchestrator          *RecommendationOrchestrator
	Explanations          *ExplanationService
}

func New(cfg *config.Config, logger *logrus.Logger, db *database.Database, producer *messaging.Producer) (*Services, error) {
	ratingsRepo := repositories.NewRatingsRepository(db.PG)
	moviesRepo := repositories.NewMoviesRepository(db.PG)
	usersRepo := repositories.NewUsersRepository(db.PG)

	healthService := NewHealthService(db, logger)

	// A nil producer disables rating events; passing the typed nil
	// through the interface would defeat the nil check in the service.
	var publisher RatingEventPublisher
	if producer != nil {
		publisher = producer
	}

	ratingsService := NewRatingsService(ratingsRepo, publisher, logger)
	contentService := NewContentService(moviesRepo, logger)
	usersService := NewUsersService(usersRepo, logger)

	contentStrategy := NewContentBasedStrategy(ratingsRepo, moviesRepo, &cfg.Recommendation, logger)
	collaborativeStrategy := NewCollaborativeStrategy(ratingsService, moviesRepo, &cfg.Recommendation, logger)
	popularityStrategy := NewPopularityStrategy(ratingsService, moviesRepo, &cfg.Recommendation, logger)

	orchestrator := NewRecommendationOrchestrator(
		contentStrategy, collaborativeStrategy, popularityStrategy,
		&cfg.Recommendation, logger,
	)

	explanationService := NewExplanationService(
		contentStrategy, collaborativeStrategy,
		&cfg.Recommendation, logger,
	)

	return &Services{
		Health:                healthService,
		Ratings:               ratingsService,
		Content:               contentService,
		Users:                 usersService,
		ContentStrategy:       contentStrategy,
		CollaborativeStrategy: collaborativeStrategy,
		PopularityStrategy:    popularityStrategy,
		Orchestrator:          orchestrator,
		Explanations:          explanationService,
	}, nil
}
