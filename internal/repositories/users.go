package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flickpick/flickpick/pkg/models"
)

type UsersRepository struct {
	db Querier
}

func NewUsersRepository(db Querier) *UsersRepository {
	return &UsersRepository{db: db}
}

func (r *UsersRepository) Create(ctx context.Context, name string) (models.User, error) {
	query := `
		INSERT INTO users (name, created_at)
		VALUES ($1, now())
		RETURNING user_id, name, created_at`

	var user models.User
	err := r.db.QueryRow(ctx, query, name).Scan(&user.UserID, &user.Name, &user.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindOne returns nil without error when the user does not exist.
func (r *UsersRepository) FindOne(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT user_id, name, created_at
		FROM users
		WHERE user_id = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.UserID, &user.Name, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
