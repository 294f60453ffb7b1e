package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/internal/utils"
	"github.com/workme/backend/services/users"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles user registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to register user",
			logger.String("email", req.Email),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "User registered successfully", resp)
}

// Login handles user login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Login successful", resp)
}

// Me returns the authenticated user's own record
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "User retrieved successfully", user)
}
