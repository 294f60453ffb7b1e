package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/users/handler/http"
)

// Handler coordinates all protocol handlers for the users service
type Handler struct {
	authHandler    *http.AuthHandler
	profileHandler *http.ProfileHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	profileHandler *http.ProfileHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// The catalogue and professional listings are public browse surfaces
	e.GET("/categories", h.profileHandler.ListCategories)
	e.GET("/professionals", h.profileHandler.ListProfessionals)
	e.GET("/professionals/:id", h.profileHandler.GetProfessionalProfile)

	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/users/me", h.authHandler.Me)

	profileGroup := protected.Group("/profiles")
	profileGroup.PUT("/professional", h.profileHandler.UpdateProfessionalProfile)
	profileGroup.GET("/client", h.profileHandler.GetClientProfile)
	profileGroup.PUT("/client", h.profileHandler.UpdateClientProfile)
}
