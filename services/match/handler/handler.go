package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/match/handler/http"
	"github.com/workme/backend/services/match/handler/nats"
)

// Handler coordinates all protocol handlers for the match service
type Handler struct {
	matchHandler *http.MatchHandler
	natsHandler  *nats.NatsHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	matchHandler *http.MatchHandler,
	natsHandler *nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		matchHandler: matchHandler,
		natsHandler:  natsHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	protected.PUT("/availability", h.matchHandler.SetAvailability)
	protected.DELETE("/availability", h.matchHandler.ClearAvailability)
	protected.POST("/matches", h.matchHandler.FindProfessionals)
}

// StartConsumers subscribes the NATS handlers
func (h *Handler) StartConsumers() error {
	return h.natsHandler.Start()
}
