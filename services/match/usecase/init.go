package usecase

import (
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/match"
)

// matchUC implements the match.MatchUC interface
type matchUC struct {
	cfg  *models.Config
	repo match.AvailabilityRepo
	gw   match.MatchGW
}

// NewMatchUC creates a new match use case
func NewMatchUC(cfg *models.Config, repo match.AvailabilityRepo, gw match.MatchGW) match.MatchUC {
	return &matchUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}
