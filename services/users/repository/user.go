package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/users"
)

const pgUniqueViolation = "23505"

// UserRepo implements the users.UserRepo interface on PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) users.UserRepo {
	return &UserRepo{db: db}
}

// CreateUserWithProfile inserts the user row and an empty profile row for
// the user's role in one transaction, so a registered user always has a
// profile to update.
func (r *UserRepo) CreateUserWithProfile(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO users (
			id, email, full_name, phone, user_type, hashed_password,
			is_active, created_at, updated_at
		) VALUES (
			:id, :email, :full_name, :phone, :user_type, :hashed_password,
			:is_active, :created_at, :updated_at
		)
	`, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.New(apperrors.KindConflict, "email already registered")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	switch user.UserType {
	case models.RoleProfessional:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO professional_profiles (user_id, verification_status, created_at, updated_at)
			VALUES ($1, $2, $3, $3)
		`, user.ID, models.VerificationPending, now)
	case models.RoleClient:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO client_profiles (user_id, created_at, updated_at)
			VALUES ($1, $2, $2)
		`, user.ID, now)
	}
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, full_name, phone, user_type, hashed_password,
		       is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, full_name, phone, user_type, hashed_password,
		       is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}
