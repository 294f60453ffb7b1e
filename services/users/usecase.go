package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/models"
)

// UserUC covers registration, authentication, profiles and the service
// category catalogue.
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	GetProfessionalProfile(ctx context.Context, userID uuid.UUID) (*models.ProfessionalProfile, error)
	UpdateProfessionalProfile(ctx context.Context, userID uuid.UUID, role string, req *models.UpdateProfessionalProfileRequest) (*models.ProfessionalProfile, error)
	GetClientProfile(ctx context.Context, userID uuid.UUID) (*models.ClientProfile, error)
	UpdateClientProfile(ctx context.Context, userID uuid.UUID, role string, req *models.UpdateClientProfileRequest) (*models.ClientProfile, error)

	ListCategories() []string
	ListProfessionals(ctx context.Context, category string, limit int) ([]models.ProfessionalProfile, error)
}
