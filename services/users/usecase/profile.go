package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
)

// GetProfessionalProfile returns a professional's public profile
func (uc *userUC) GetProfessionalProfile(ctx context.Context, userID uuid.UUID) (*models.ProfessionalProfile, error) {
	return uc.repo.GetProfessionalProfile(ctx, userID)
}

// UpdateProfessionalProfile stores the professional's own profile edits.
// Offered services must come from the fixed category list.
func (uc *userUC) UpdateProfessionalProfile(ctx context.Context, userID uuid.UUID, role string, req *models.UpdateProfessionalProfileRequest) (*models.ProfessionalProfile, error) {
	if role != models.RoleProfessional {
		return nil, apperrors.New(apperrors.KindForbidden, "only professionals have a professional profile")
	}

	for _, svc := range req.Services {
		if !validCategory(svc) {
			return nil, apperrors.New(apperrors.KindValidation, "unknown service category: "+svc)
		}
	}

	profile, err := uc.repo.GetProfessionalProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Bio = req.Bio
	profile.Services = models.StringList(req.Services)
	profile.PriceRange = req.PriceRange
	profile.Availability = req.Availability
	profile.Location = req.Location

	if err := uc.repo.UpdateProfessionalProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetClientProfile returns a client's profile
func (uc *userUC) GetClientProfile(ctx context.Context, userID uuid.UUID) (*models.ClientProfile, error) {
	return uc.repo.GetClientProfile(ctx, userID)
}

// UpdateClientProfile stores the client's own profile edits
func (uc *userUC) UpdateClientProfile(ctx context.Context, userID uuid.UUID, role string, req *models.UpdateClientProfileRequest) (*models.ClientProfile, error) {
	if role != models.RoleClient {
		return nil, apperrors.New(apperrors.KindForbidden, "only clients have a client profile")
	}

	profile, err := uc.repo.GetClientProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Location = req.Location
	profile.Preferences = models.StringList(req.Preferences)

	if err := uc.repo.UpdateClientProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListCategories returns the fixed service category catalogue
func (uc *userUC) ListCategories() []string {
	return models.ServiceCategories
}

// ListProfessionals returns professionals offering a category
func (uc *userUC) ListProfessionals(ctx context.Context, category string, limit int) ([]models.ProfessionalProfile, error) {
	if !validCategory(category) {
		return nil, apperrors.New(apperrors.KindValidation, "unknown service category: "+category)
	}
	return uc.repo.ListProfessionalsByCategory(ctx, category, limit)
}

func validCategory(category string) bool {
	for _, c := range models.ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}
