package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flickpick/flickpick/pkg/models"
)

type MoviesRepository struct {
	db Querier
}

func NewMoviesRepository(db Querier) *MoviesRepository {
	return &MoviesRepository{db: db}
}

// FindOne returns nil without error when the movie does not exist;
// callers decide whether that is fatal.
func (r *MoviesRepository) FindOne(ctx context.Context, movieID int64) (*models.Movie, error) {
	query := `
		SELECT movie_id, title, genres
		FROM movies
		WHERE movie_id = $1`

	var movie models.Movie
	err := r.db.QueryRow(ctx, query, movieID).Scan(&movie.MovieID, &movie.Title, &movie.Genres)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie: %w", err)
	}

	return &movie, nil
}

// FindMany resolves a batch of movie ids in one round trip. Ids that
// match nothing are simply absent from the result.
func (r *MoviesRepository) FindMany(ctx context.Context, movieIDs []int64) ([]models.Movie, error) {
	if len(movieIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT movie_id, title, genres
		FROM movies
		WHERE movie_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

// DistinctGenres enumerates every genre present across the catalog,
// alphabetically. The ordering fixes the axes of one-hot genre vectors
// for the duration of one recommendation request.
func (r *MoviesRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT unnest(genres) AS genre
		FROM movies
		ORDER BY genre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

// FindCandidates returns unseen movies sharing at least one of the given
// genres, capped at limit.
func (r *MoviesRepository) FindCandidates(ctx context.Context, excludeIDs []int64, genres []string, limit int) ([]models.Movie, error) {
	query := `
		SELECT movie_id, title, genres
		FROM movies
		WHERE NOT (movie_id = ANY($1))
			AND genres && $2
		ORDER BY movie_id
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, excludeIDs, genres, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

// Search filters by case-insensitive title substring and exact genre.
// Empty filters match everything.
func (r *MoviesRepository) Search(ctx context.Context, query, genre string, limit, offset int) ([]models.Movie, error) {
	sql := `
		SELECT movie_id, title, genres
		FROM movies
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
			AND ($2 = '' OR $2 = ANY(genres))
		ORDER BY movie_id
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, sql, query, genre, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func scanMovies(rows pgx.Rows) ([]models.Movie, error) {
	var movies []models.Movie
	for rows.Next() {
		var movie models.Movie
		if err := rows.Scan(&movie.MovieID, &movie.Title, &movie.Genres); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}
