package match

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AvailabilityRepo is the geo-bucketed availability store. Entries expire
// on their own so stale professionals drop out without explicit cleanup.
type AvailabilityRepo interface {
	// MarkAvailable registers the professional under each (category, cell)
	// bucket and remembers the buckets for later clearing.
	MarkAvailable(ctx context.Context, professionalID uuid.UUID, categories []string, cell string, ttl time.Duration) error
	MarkUnavailable(ctx context.Context, professionalID uuid.UUID) error
	// FindInCells returns professionals available for the category in any of
	// the given geohash cells.
	FindInCells(ctx context.Context, category string, cells []string, limit int) ([]uuid.UUID, error)
}
