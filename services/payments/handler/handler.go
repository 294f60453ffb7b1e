package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/payments/handler/http"
)

// Handler coordinates all protocol handlers for the payments service
type Handler struct {
	bookingHandler *http.BookingHandler
	walletHandler  *http.WalletHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	bookingHandler *http.BookingHandler,
	walletHandler *http.WalletHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
		walletHandler:  walletHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// The deposit confirmation is the processor's callback, not a user call
	e.POST("/wallet/deposits/confirm", h.walletHandler.ConfirmDeposit)

	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	bookingGroup := protected.Group("/bookings")
	bookingGroup.POST("", h.bookingHandler.CreateBooking)
	bookingGroup.GET("", h.bookingHandler.ListBookings)
	bookingGroup.GET("/:id", h.bookingHandler.GetBooking)
	bookingGroup.PATCH("/:id/status", h.bookingHandler.UpdateBookingStatus)
	bookingGroup.POST("/:id/complete", h.bookingHandler.CompleteBooking)
	bookingGroup.POST("/:id/review", h.bookingHandler.ReviewBooking)

	walletGroup := protected.Group("/wallet")
	walletGroup.GET("", h.walletHandler.GetWallet)
	walletGroup.GET("/transactions", h.walletHandler.ListTransactions)
	walletGroup.POST("/deposits", h.walletHandler.Deposit)
	walletGroup.POST("/withdrawals", h.walletHandler.Withdraw)

	adminGroup := protected.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	adminGroup.POST("/bookings/:id/refund", h.bookingHandler.ForceRefundBooking)
}
