package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/services/payments"
)

// ProfileRepo implements the payments.ProfileRepo interface on PostgreSQL
type ProfileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *sqlx.DB) payments.ProfileRepo {
	return &ProfileRepo{db: db}
}

// UpdateProfessionalRating stores the recomputed aggregate rating
func (r *ProfileRepo) UpdateProfessionalRating(ctx context.Context, professionalID uuid.UUID, rating float64, reviewsCount int) error {
	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE professional_profiles
		SET rating = $1, reviews_count = $2, updated_at = NOW()
		WHERE user_id = $3
	`, rating, reviewsCount, professionalID)
	if err != nil {
		return fmt.Errorf("failed to update professional rating: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rating update result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "professional profile not found")
	}
	return nil
}
