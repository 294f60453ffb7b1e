package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workme/backend/internal/pkg/constants"
	"github.com/workme/backend/internal/pkg/models"
)

// PublishUserRegistered announces a new signup
func (g *UserGW) PublishUserRegistered(_ context.Context, event *models.UserRegisteredEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal user registered event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectUserRegistered, data)
}
