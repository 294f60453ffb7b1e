package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/workme/backend/internal/pkg/constants"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/models"
	natspkg "github.com/workme/backend/internal/pkg/nats"
	"github.com/workme/backend/services/match"
)

// NatsHandler consumes booking events for the match service
type NatsHandler struct {
	matchUC    match.MatchUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(matchUC match.MatchUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		matchUC:    matchUC,
		natsClient: natsClient,
	}
}

// Start subscribes to the subjects the service consumes
func (h *NatsHandler) Start() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectBookingCreated, h.handleBookingCreated)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)
	return nil
}

// handleBookingCreated withdraws a booked professional from matching so
// they stop appearing in searches while engaged.
func (h *NatsHandler) handleBookingCreated(msg *nats.Msg) {
	var event models.BookingEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode booking created event", logger.Err(err))
		return
	}

	if err := h.matchUC.ClearAvailability(context.Background(), event.ProfessionalID); err != nil {
		logger.Error("Failed to clear availability for booked professional",
			logger.String("professional_id", event.ProfessionalID.String()),
			logger.Err(err),
		)
	}
}
