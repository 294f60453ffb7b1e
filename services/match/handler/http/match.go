package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/internal/utils"
	"github.com/workme/backend/services/match"
)

// MatchHandler handles HTTP requests for availability and matching
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// SetAvailability announces the caller as available for work
func (h *MatchHandler) SetAvailability(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.matchUC.SetAvailability(c.Request().Context(), userID, middleware.UserRole(c), &req); err != nil {
		logger.Error("Failed to set availability",
			logger.String("professional_id", userID.String()),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Availability updated", nil)
}

// ClearAvailability withdraws the caller from matching
func (h *MatchHandler) ClearAvailability(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.matchUC.ClearAvailability(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Availability cleared", nil)
}

// FindProfessionals returns available professionals near the caller
func (h *MatchHandler) FindProfessionals(c echo.Context) error {
	var req models.MatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.matchUC.FindProfessionals(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Matches retrieved successfully", result)
}
