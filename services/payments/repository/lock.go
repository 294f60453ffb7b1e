package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/constants"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/services/payments"
)

const (
	lockTTL           = 30 * time.Second
	lockRetryInterval = 100 * time.Millisecond
	lockMaxRetries    = 30
)

// releaseScript deletes the lock only if the given acquisition still owns it
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// UserLocker serializes per-user money flows with a redis lock so two
// concurrent bookings or withdrawals by the same user cannot interleave
// between balance check and debit.
type UserLocker struct {
	client *redis.Client
}

// NewUserLocker creates a new redis-backed user locker
func NewUserLocker(client *redis.Client) payments.UserLocker {
	return &UserLocker{client: client}
}

// Lock acquires the per-user lock, retrying briefly before giving up. The
// returned token is minted per acquisition: a holder that outlives the TTL
// cannot release a lock the key was re-acquired under in the meantime.
func (l *UserLocker) Lock(ctx context.Context, userID uuid.UUID) (string, error) {
	key := fmt.Sprintf(constants.KeyUserPaymentLock, userID)
	token := uuid.New().String()

	for i := 0; i < lockMaxRetries; i++ {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return "", fmt.Errorf("failed to acquire user lock: %w", err)
		}
		if ok {
			return token, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	return "", apperrors.New(apperrors.KindConflict, "another operation on this wallet is in progress")
}

// Unlock releases the per-user lock if still held by this acquisition
func (l *UserLocker) Unlock(ctx context.Context, userID uuid.UUID, token string) {
	key := fmt.Sprintf(constants.KeyUserPaymentLock, userID)
	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && err != redis.Nil {
		logger.Warn("Failed to release user lock",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
	}
}
