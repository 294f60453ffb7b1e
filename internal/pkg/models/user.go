package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles as carried in JWT claims and the users table.
const (
	RoleClient       = "client"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// User represents a registered user (client, professional or admin)
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	FullName       string    `json:"full_name" db:"full_name"`
	Phone          string    `json:"phone" db:"phone"`
	UserType       string    `json:"user_type" db:"user_type"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"` // "client" or "professional"
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	User        *User  `json:"user"`
}

// UserRegisteredEvent is published on NATS when a new user signs up
type UserRegisteredEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	UserType  string    `json:"user_type"`
	Timestamp time.Time `json:"timestamp"`
}
