package model

import "time"

// User represents a registered user in the database.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest represents a user sign-in request.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser represents user data safe for API responses (no hash, no internal ID).
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is the success envelope returned by signup and signin.
type AuthResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}
