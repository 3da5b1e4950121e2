package models

import "time"

type User struct {
	UserID    int64     `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateUserRequest struct {
	Name string `json:"name" binding:"required" validate:"required,min=1,max=255"`
}
