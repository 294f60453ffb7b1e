package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
)

// GetProfessionalProfile retrieves a professional's public profile
func (r *UserRepo) GetProfessionalProfile(ctx context.Context, userID uuid.UUID) (*models.ProfessionalProfile, error) {
	var profile models.ProfessionalProfile
	err := r.db.GetContext(ctx, &profile, `
		SELECT user_id, bio, services, price_range, availability, location,
		       verification_status, rating, reviews_count, created_at, updated_at
		FROM professional_profiles
		WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "professional profile not found")
		}
		return nil, fmt.Errorf("failed to get professional profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfessionalProfile stores the profile's editable fields. Rating
// and verification status are managed elsewhere and never touched here.
func (r *UserRepo) UpdateProfessionalProfile(ctx context.Context, profile *models.ProfessionalProfile) error {
	profile.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, `
		UPDATE professional_profiles
		SET bio = :bio, services = :services, price_range = :price_range,
		    availability = :availability, location = :location, updated_at = :updated_at
		WHERE user_id = :user_id
	`, profile)
	if err != nil {
		return fmt.Errorf("failed to update professional profile: %w", err)
	}
	return checkProfileUpdated(result)
}

// GetClientProfile retrieves a client's profile
func (r *UserRepo) GetClientProfile(ctx context.Context, userID uuid.UUID) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	err := r.db.GetContext(ctx, &profile, `
		SELECT user_id, location, preferences, created_at, updated_at
		FROM client_profiles
		WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "client profile not found")
		}
		return nil, fmt.Errorf("failed to get client profile: %w", err)
	}
	return &profile, nil
}

// UpdateClientProfile stores the client profile's editable fields
func (r *UserRepo) UpdateClientProfile(ctx context.Context, profile *models.ClientProfile) error {
	profile.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, `
		UPDATE client_profiles
		SET location = :location, preferences = :preferences, updated_at = :updated_at
		WHERE user_id = :user_id
	`, profile)
	if err != nil {
		return fmt.Errorf("failed to update client profile: %w", err)
	}
	return checkProfileUpdated(result)
}

// ListProfessionalsByCategory returns verified-first profiles offering the
// category, best rated first.
func (r *UserRepo) ListProfessionalsByCategory(ctx context.Context, category string, limit int) ([]models.ProfessionalProfile, error) {
	if limit <= 0 {
		limit = 20
	}

	needle, err := json.Marshal([]string{category})
	if err != nil {
		return nil, fmt.Errorf("failed to encode category filter: %w", err)
	}

	profiles := []models.ProfessionalProfile{}
	err = r.db.SelectContext(ctx, &profiles, `
		SELECT user_id, bio, services, price_range, availability, location,
		       verification_status, rating, reviews_count, created_at, updated_at
		FROM professional_profiles
		WHERE services @> $1::jsonb
		ORDER BY verification_status = 'verified' DESC, rating DESC, reviews_count DESC
		LIMIT $2
	`, string(needle), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	return profiles, nil
}

func checkProfileUpdated(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read profile update result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "profile not found")
	}
	return nil
}
