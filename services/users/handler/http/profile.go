package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/internal/utils"
	"github.com/workme/backend/services/users"
)

// ProfileHandler handles HTTP requests for profiles and the catalogue
type ProfileHandler struct {
	userUC users.UserUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userUC users.UserUC) *ProfileHandler {
	return &ProfileHandler{userUC: userUC}
}

// ListCategories returns the service category catalogue
func (h *ProfileHandler) ListCategories(c echo.Context) error {
	return utils.SuccessResponse(c, nethttp.StatusOK, "Categories retrieved successfully", h.userUC.ListCategories())
}

// ListProfessionals returns professionals offering a category
func (h *ProfileHandler) ListProfessionals(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return utils.BadRequestResponse(c, "category query parameter is required")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	profiles, err := h.userUC.ListProfessionals(c.Request().Context(), category, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Professionals retrieved successfully", profiles)
}

// GetProfessionalProfile returns a professional's public profile
func (h *ProfileHandler) GetProfessionalProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid professional ID")
	}

	profile, err := h.userUC.GetProfessionalProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfessionalProfile stores the caller's professional profile edits
func (h *ProfileHandler) UpdateProfessionalProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfessionalProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.userUC.UpdateProfessionalProfile(c.Request().Context(), userID, middleware.UserRole(c), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile updated successfully", profile)
}

// GetClientProfile returns the caller's client profile
func (h *ProfileHandler) GetClientProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userUC.GetClientProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateClientProfile stores the caller's client profile edits
func (h *ProfileHandler) UpdateClientProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateClientProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.userUC.UpdateClientProfile(c.Request().Context(), userID, middleware.UserRole(c), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile updated successfully", profile)
}
