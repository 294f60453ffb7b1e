package match

import (
	"context"

	"github.com/workme/backend/internal/pkg/models"
)

// MatchGW talks to the external ranking collaborator
type MatchGW interface {
	RankCandidates(ctx context.Context, req *models.RankRequest) (*models.RankResponse, error)
}
