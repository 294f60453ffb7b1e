package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/constants"
	"github.com/workme/backend/internal/pkg/database"
	"github.com/workme/backend/services/match"
)

// AvailabilityRepo implements the match.AvailabilityRepo interface on Redis.
// Each (category, geohash cell) bucket is a set of professional ids; a
// per-professional reference set remembers which buckets to clear.
type AvailabilityRepo struct {
	client *redis.Client
}

// NewAvailabilityRepo creates a new availability repository
func NewAvailabilityRepo(redisClient *database.RedisClient) match.AvailabilityRepo {
	return &AvailabilityRepo{client: redisClient.GetClient()}
}

// MarkAvailable registers the professional in every requested category
// bucket for the cell. Buckets and the reference set share one TTL, so an
// unrefreshed availability disappears whole.
func (r *AvailabilityRepo) MarkAvailable(ctx context.Context, professionalID uuid.UUID, categories []string, cell string, ttl time.Duration) error {
	// Re-announcing from a new location replaces the old buckets
	if err := r.MarkUnavailable(ctx, professionalID); err != nil {
		return err
	}

	refsKey := fmt.Sprintf(constants.KeyProfessionalRefs, professionalID)

	pipe := r.client.TxPipeline()
	for _, category := range categories {
		bucket := fmt.Sprintf(constants.KeyAvailability, category, cell)
		pipe.SAdd(ctx, bucket, professionalID.String())
		pipe.Expire(ctx, bucket, ttl)
		pipe.SAdd(ctx, refsKey, bucket)
	}
	pipe.Expire(ctx, refsKey, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark professional available: %w", err)
	}
	return nil
}

// MarkUnavailable removes the professional from every bucket it was
// announced in.
func (r *AvailabilityRepo) MarkUnavailable(ctx context.Context, professionalID uuid.UUID) error {
	refsKey := fmt.Sprintf(constants.KeyProfessionalRefs, professionalID)

	buckets, err := r.client.SMembers(ctx, refsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read availability refs: %w", err)
	}
	if len(buckets) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, bucket := range buckets {
		pipe.SRem(ctx, bucket, professionalID.String())
	}
	pipe.Del(ctx, refsKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark professional unavailable: %w", err)
	}
	return nil
}

// FindInCells unions the category buckets for the given cells, preserving
// cell order so closer cells come first.
func (r *AvailabilityRepo) FindInCells(ctx context.Context, category string, cells []string, limit int) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	ids := []uuid.UUID{}

	for _, cell := range cells {
		bucket := fmt.Sprintf(constants.KeyAvailability, category, cell)
		members, err := r.client.SMembers(ctx, bucket).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read availability bucket: %w", err)
		}
		for _, member := range members {
			id, err := uuid.Parse(member)
			if err != nil || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
			if limit > 0 && len(ids) >= limit {
				return ids, nil
			}
		}
	}
	return ids, nil
}
