package gateway

import (
	natspkg "github.com/workme/backend/internal/pkg/nats"
	"github.com/workme/backend/services/users"
)

// UserGW implements the users.UserGW interface
type UserGW struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new user gateway
func NewUserGW(natsClient *natspkg.Client) users.UserGW {
	return &UserGW{natsClient: natsClient}
}
