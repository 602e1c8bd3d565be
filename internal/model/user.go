package model

import "time"

// User represents a registered account in the database.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// SignupForm carries the submitted signup fields.
type SignupForm struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// LoginForm carries the submitted login fields.
type LoginForm struct {
	Username string
	Password string
}
