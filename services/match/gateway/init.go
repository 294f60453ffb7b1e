package gateway

import (
	"time"

	httppkg "github.com/workme/backend/internal/pkg/http"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/match"
)

// MatchGW implements the match.MatchGW interface
type MatchGW struct {
	rankerClient *httppkg.Client
}

// NewMatchGW creates a new match gateway
func NewMatchGW(cfg *models.Config) match.MatchGW {
	return &MatchGW{
		rankerClient: httppkg.NewClient(cfg.Services.RankerURL, 5*time.Second),
	}
}
