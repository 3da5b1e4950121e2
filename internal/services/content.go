package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/pkg/models"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// ContentService serves catalog lookups at the API boundary.
type ContentService struct {
	movies MovieStore
	logger *logrus.Logger
}

func NewContentService(movies MovieStore, logger *logrus.Logger) *ContentService {
	return &ContentService{
		movies: movies,
		logger: logger,
	}
}

// GetMovie reports a missing movie as ErrMovieNotFound; unlike batch
// resolution inside the strategies, a single-entity miss here matters to
// the caller.
func (s *ContentService) GetMovie(ctx context.Context, movieID int64) (*models.Movie, error) {
	movie, err := s.movies.FindOne(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
	}

	return movie, nil
}

func (s *ContentService) Search(ctx context.Context, req models.MovieSearchRequest) ([]models.Movie, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	return s.movies.Search(ctx, req.Query, req.Genre, limit, offset)
}

func (s *ContentService) Genres(ctx context.Context) ([]string, error) {
	return s.movies.DistinctGenres(ctx)
}
