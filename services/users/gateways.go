package users

import (
	"context"

	"github.com/workme/backend/internal/pkg/models"
)

// UserGW publishes user lifecycle events
type UserGW interface {
	PublishUserRegistered(ctx context.Context, event *models.UserRegisteredEvent) error
}
