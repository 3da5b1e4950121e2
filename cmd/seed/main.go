// Command seed loads the MovieLens-style CSV dumps into PostgreSQL.
// Existing rows are wiped first; the import is a full refresh, not a
// merge.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/unicode/norm"

	"github.com/flickpick/flickpick/internal/config"
)

func main() {
	moviesPath := flag.String("movies", "data/movies.csv", "movies CSV: movieId,title,genres (pipe-separated)")
	ratingsPath := flag.String("ratings", "data/ratings.csv", "ratings CSV: userId,movieId,rating,timestamp")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, "TRUNCATE TABLE ratings, movies"); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	movieCount, err := seedMovies(ctx, pool, *moviesPath)
	if err != nil {
		log.Fatalf("Failed to seed movies: %v", err)
	}
	log.Printf("Imported %d movies", movieCount)

	ratingCount, err := seedRatings(ctx, pool, *ratingsPath)
	if err != nil {
		log.Fatalf("Failed to seed ratings: %v", err)
	}
	log.Printf("Imported %d ratings", ratingCount)
}

func seedMovies(ctx context.Context, pool *pgxpool.Pool, path string) (int64, error) {
	rows, err := readCSV(path, func(record []string) ([]any, error) {
		movieID, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid movie id %q: %w", record[0], err)
		}
		return []any{movieID, norm.NFC.String(record[1]), parseGenres(record[2])}, nil
	})
	if err != nil {
		return 0, err
	}

	return pool.CopyFrom(ctx,
		pgx.Identifier{"movies"},
		[]string{"movie_id", "title", "genres"},
		pgx.CopyFromRows(rows),
	)
}

func seedRatings(ctx context.Context, pool *pgxpool.Pool, path string) (int64, error) {
	rows, err := readCSV(path, func(record []string) ([]any, error) {
		userID, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", record[0], err)
		}
		movieID, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid movie id %q: %w", record[1], err)
		}
		rating, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q: %w", record[2], err)
		}
		timestamp, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", record[3], err)
		}
		return []any{userID, movieID, rating, timestamp}, nil
	})
	if err != nil {
		return 0, err
	}

	return pool.CopyFrom(ctx,
		pgx.Identifier{"ratings"},
		[]string{"user_id", "movie_id", "rating", "timestamp"},
		pgx.CopyFromRows(rows),
	)
}

// readCSV applies convert to every data row, skipping the header.
func readCSV(path string, convert func([]string) ([]any, error)) ([][]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]any
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if first {
			first = false
			continue
		}

		row, err := convert(record)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseGenres splits the pipe-separated genre list, NFC-normalizing each
// entry. "(no genres listed)" maps to an empty list.
func parseGenres(raw string) []string {
	if raw == "" || raw == "(no genres listed)" {
		return []string{}
	}

	parts := strings.Split(raw, "|")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		genre := norm.NFC.String(strings.TrimSpace(part))
		if genre != "" {
			genres = append(genres, genre)
		}
	}
	return genres
}
