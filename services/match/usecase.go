package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/models"
)

// MatchUC pairs clients with nearby available professionals. Ranking is
// delegated to an external collaborator when it is reachable; proximity
// order is the fallback.
type MatchUC interface {
	SetAvailability(ctx context.Context, professionalID uuid.UUID, role string, req *models.AvailabilityRequest) error
	ClearAvailability(ctx context.Context, professionalID uuid.UUID) error
	FindProfessionals(ctx context.Context, req *models.MatchRequest) (*models.MatchResult, error)
}
