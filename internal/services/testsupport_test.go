package services

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/pkg/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testRecConfig() *config.RecommendationConfig {
	return &config.RecommendationConfig{
		PositiveRatingThreshold: 4.0,
		MinSimilarityScore:      0.1,
		MinPredictedScore:       3.0,
		MinimalCommonMovies:     3,
		NeighborLimit:           10,
		ContentCandidateLimit:   200,
		DefaultOutputLimit:      10,
		HybridWeightAlpha:       0.6,
		HybridMergeLimit:        50,
	}
}

type fakeRatingStore struct {
	ratings  []models.Rating
	upserted []models.Rating
	err      error
}

func (f *fakeRatingStore) Upsert(_ context.Context, userID, movieID int64, rating float64) (models.Rating, error) {
	if f.err != nil {
		return models.Rating{}, f.err
	}
	out := models.Rating{UserID: userID, MovieID: movieID, Rating: rating, Timestamp: 1700000000}
	f.upserted = append(f.upserted, out)
	return out, nil
}

func (f *fakeRatingStore) FindByUser(_ context.Context, userID int64) ([]models.Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Rating
	for _, rating := range f.ratings {
		if rating.UserID == userID {
			out = append(out, rating)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) FindAll(_ context.Context) ([]models.Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ratings, nil
}

type fakeMovieStore struct {
	movies     map[int64]models.Movie
	genres     []string
	candidates []models.Movie

	lastExcludeIDs []int64
	lastGenres     []string
	lastLimit      int
	lastQuery      string
	lastGenre      string
	lastOffset     int

	err error
}

func (f *fakeMovieStore) FindOne(_ context.Context, movieID int64) (*models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	movie, ok := f.movies[movieID]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (f *fakeMovieStore) FindMany(_ context.Context, movieIDs []int64) ([]models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Movie
	for _, id := range movieIDs {
		if movie, ok := f.movies[id]; ok {
			out = append(out, movie)
		}
	}
	return out, nil
}

func (f *fakeMovieStore) DistinctGenres(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.genres, nil
}

func (f *fakeMovieStore) FindCandidates(_ context.Context, excludeIDs []int64, genres []string, limit int) ([]models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastExcludeIDs = excludeIDs
	f.lastGenres = genres
	f.lastLimit = limit
	return f.candidates, nil
}

func (f *fakeMovieStore) Search(_ context.Context, query, genre string, limit, offset int) ([]models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastQuery = query
	f.lastGenre = genre
	f.lastLimit = limit
	f.lastOffset = offset
	var out []models.Movie
	for _, movie := range f.movies {
		out = append(out, movie)
	}
	return out, nil
}

type fakeUserStore struct {
	users  map[int64]models.User
	nextID int64
	err    error
}

func (f *fakeUserStore) Create(_ context.Context, name string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	f.nextID++
	user := models.User{UserID: f.nextID, Name: name, CreatedAt: time.Now()}
	if f.users == nil {
		f.users = make(map[int64]models.User)
	}
	f.users[user.UserID] = user
	return user, nil
}

func (f *fakeUserStore) FindOne(_ context.Context, userID int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

type fakeRatingsProvider struct {
	byUser  map[int64]map[int64]float64
	byMovie map[int64][]float64
	err     error
}

func (f *fakeRatingsProvider) RatingsByUser(_ context.Context) (map[int64]map[int64]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser, nil
}

func (f *fakeRatingsProvider) RatingsByMovie(_ context.Context) (map[int64][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byMovie, nil
}

type personalizedStub struct {
	items     []models.Recommendation
	err       error
	lastLimit int
}

func (s *personalizedStub) Recommend(_ context.Context, _ int64, limit int) ([]models.Recommendation, error) {
	s.lastLimit = limit
	return s.items, s.err
}

type popularityStub struct {
	items     []models.Recommendation
	err       error
	lastLimit int
}

func (s *popularityStub) Recommend(_ context.Context, limit int) ([]models.Recommendation, error) {
	s.lastLimit = limit
	return s.items, s.err
}

type fakePublisher struct {
	published []models.Rating
	err       error
}

func (f *fakePublisher) PublishRating(_ context.Context, rating models.Rating) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, rating)
	return nil
}

func rec(movieID int64, score float64, strategy string) models.Recommendation {
	return models.Recommendation{
		Movie:    models.Movie{MovieID: movieID, Title: "Movie"},
		Score:    score,
		Strategy: strategy,
	}
}
