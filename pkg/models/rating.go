package models

// Rating is a single user's score for a movie. One row exists per
// (user, movie) pair; writes upsert and refresh the timestamp.
type Rating struct {
	UserID    int64   `json:"userId" db:"user_id"`
	MovieID   int64   `json:"movieId" db:"movie_id"`
	Rating    float64 `json:"rating" db:"rating"`
	Timestamp int64   `json:"timestamp" db:"timestamp"`
}

type SetRatingRequest struct {
	UserID  int64   `json:"userId" binding:"required" validate:"required,min=1"`
	MovieID int64   `json:"movieId" binding:"required" validate:"required,min=1"`
	Rating  float64 `json:"rating" binding:"min=0,max=5"`
}
