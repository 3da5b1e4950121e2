package models

type Movie struct {
	MovieID int64    `json:"movieId" db:"movie_id"`
	Title   string   `json:"title" db:"title"`
	Genres  []string `json:"genres" db:"genres"`
}

type MovieSearchRequest struct {
	Query  string `form:"query"`
	Genre  string `form:"genre"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" validate:"omitempty,min=0"`
}
