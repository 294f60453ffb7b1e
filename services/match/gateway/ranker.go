package gateway

import (
	"context"
	"fmt"

	"github.com/workme/backend/internal/pkg/models"
)

// RankCandidates asks the ranking collaborator to order the candidates by
// fit for the request. Callers treat errors as a cue to fall back to
// proximity order.
func (g *MatchGW) RankCandidates(ctx context.Context, req *models.RankRequest) (*models.RankResponse, error) {
	var resp models.RankResponse
	if err := g.rankerClient.PostJSON(ctx, "/v1/rank", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to rank candidates: %w", err)
	}
	return &resp, nil
}
