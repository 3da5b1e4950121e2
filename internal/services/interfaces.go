package services

import (
	"context"

	"github.com/flickpick/flickpick/pkg/models"
)

// RatingStore is the rating persistence contract the services consume.
type RatingStore interface {
	Upsert(ctx context.Context, userID, movieID int64, rating float64) (models.Rating, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Rating, error)
	FindAll(ctx context.Context) ([]models.Rating, error)
}

// MovieStore is the catalog lookup contract the services consume.
type MovieStore interface {
	FindOne(ctx context.Context, movieID int64) (*models.Movie, error)
	FindMany(ctx context.Context, movieIDs []int64) ([]models.Movie, error)
	DistinctGenres(ctx context.Context) ([]string, error)
	FindCandidates(ctx context.Context, excludeIDs []int64, genres []string, limit int) ([]models.Movie, error)
	Search(ctx context.Context, query, genre string, limit, offset int) ([]models.Movie, error)
}

type UserStore interface {
	Create(ctx context.Context, name string) (models.User, error)
	FindOne(ctx context.Context, userID int64) (*models.User, error)
}

// RatingsProvider exposes the grouped rating views the collaborative and
// popularity strategies work from.
type RatingsProvider interface {
	RatingsByUser(ctx context.Context) (map[int64]map[int64]float64, error)
	RatingsByMovie(ctx context.Context) (map[int64][]float64, error)
}

// PersonalizedRecommender is implemented by the content-based and
// collaborative strategies.
type PersonalizedRecommender interface {
	Recommend(ctx context.Context, userID int64, limit int) ([]models.Recommendation, error)
}

// PopularityRecommender ranks without reference to a particular user.
type PopularityRecommender interface {
	Recommend(ctx context.Context, limit int) ([]models.Recommendation, error)
}

// Service-level contracts the HTTP handlers depend on.

type RatingsServiceInterface interface {
	SetRating(ctx context.Context, userID, movieID int64, rating float64) (models.Rating, error)
	GetUserRatings(ctx context.Context, userID int64) ([]models.Rating, error)
}

type ContentServiceInterface interface {
	GetMovie(ctx context.Context, movieID int64) (*models.Movie, error)
	Search(ctx context.Context, req models.MovieSearchRequest) ([]models.Movie, error)
	Genres(ctx context.Context) ([]string, error)
}

type UsersServiceInterface interface {
	CreateUser(ctx context.Context, name string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

type HealthServiceInterface interface {
	Check(ctx context.Context) *HealthStatus
}

type RecommendationOrchestratorInterface interface {
	Hybrid(ctx context.Context, userID int64, limit int, alpha float64) ([]models.Recommendation, error)
	ContentBasedOnly(ctx context.Context, userID int64) ([]models.Recommendation, error)
	CollaborativeOnly(ctx context.Context, userID int64) ([]models.Recommendation, error)
}

type ExplanationServiceInterface interface {
	Explain(ctx context.Context, userID, movieID int64) (*models.Explanation, error)
}

// RatingEventPublisher is satisfied by the Kafka producer; a nil
// publisher disables event publishing.
type RatingEventPublisher interface {
	PublishRating(ctx context.Context, rating models.Rating) error
}
