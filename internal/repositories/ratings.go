package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/flickpick/flickpick/pkg/models"
)

type RatingsRepository struct {
	db Querier
}

func NewRatingsRepository(db Querier) *RatingsRepository {
	return &RatingsRepository{db: db}
}

// Upsert writes a rating for a (user, movie) pair. A second write for the
// same pair replaces the rating and refreshes the timestamp.
func (r *RatingsRepository) Upsert(ctx context.Context, userID, movieID int64, rating float64) (models.Rating, error) {
	query := `
		INSERT INTO ratings (user_id, movie_id, rating, timestamp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET rating = EXCLUDED.rating, timestamp = EXCLUDED.timestamp
		RETURNING user_id, movie_id, rating, timestamp`

	var out models.Rating
	err := r.db.QueryRow(ctx, query, userID, movieID, rating, time.Now().Unix()).
		Scan(&out.UserID, &out.MovieID, &out.Rating, &out.Timestamp)
	if err != nil {
		return models.Rating{}, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return out, nil
}

func (r *RatingsRepository) FindByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	query := `
		SELECT user_id, movie_id, rating, timestamp
		FROM ratings
		WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(&rating.UserID, &rating.MovieID, &rating.Rating, &rating.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

func (r *RatingsRepository) FindAll(ctx context.Context) ([]models.Rating, error) {
	query := `
		SELECT user_id, movie_id, rating, timestamp
		FROM ratings`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(&rating.UserID, &rating.MovieID, &rating.Rating, &rating.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}
