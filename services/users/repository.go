package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/models"
)

// UserRepo persists users and their profiles. Registration creates the
// user row and the role's profile row in one transaction.
type UserRepo interface {
	CreateUserWithProfile(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetProfessionalProfile(ctx context.Context, userID uuid.UUID) (*models.ProfessionalProfile, error)
	UpdateProfessionalProfile(ctx context.Context, profile *models.ProfessionalProfile) error
	GetClientProfile(ctx context.Context, userID uuid.UUID) (*models.ClientProfile, error)
	UpdateClientProfile(ctx context.Context, profile *models.ClientProfile) error

	ListProfessionalsByCategory(ctx context.Context, category string, limit int) ([]models.ProfessionalProfile, error)
}
