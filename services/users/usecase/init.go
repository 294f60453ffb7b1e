package usecase

import (
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg  *models.Config
	repo users.UserRepo
	gw   users.UserGW
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, repo users.UserRepo, gw users.UserGW) users.UserUC {
	return &userUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}
