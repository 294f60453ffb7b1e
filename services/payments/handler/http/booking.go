package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/internal/utils"
	"github.com/workme/backend/services/payments"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	paymentUC payments.PaymentUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(paymentUC payments.PaymentUC) *BookingHandler {
	return &BookingHandler{paymentUC: paymentUC}
}

// CreateBooking handles booking creation with the escrow hold
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.paymentUC.CreateBooking(c.Request().Context(), actorID, middleware.UserRole(c), &req)
	if err != nil {
		logger.Error("Failed to create booking",
			logger.String("client_id", actorID.String()),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Booking created successfully", booking)
}

// GetBooking handles booking retrieval requests
func (h *BookingHandler) GetBooking(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.paymentUC.GetBooking(c.Request().Context(), actorID, bookingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking retrieved successfully", booking)
}

// ListBookings returns the caller's bookings, newest first
func (h *BookingHandler) ListBookings(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	bookings, err := h.paymentUC.ListBookings(c.Request().Context(), actorID, middleware.UserRole(c), limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Bookings retrieved successfully", bookings)
}

// UpdateBookingStatus moves a booking along its lifecycle
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.paymentUC.UpdateBookingStatus(c.Request().Context(), bookingID, actorID, req.Status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking status updated", booking)
}

// CompleteBooking releases escrow for a booking
func (h *BookingHandler) CompleteBooking(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	settlement, err := h.paymentUC.CompleteBooking(c.Request().Context(), bookingID, actorID)
	if err != nil {
		logger.Error("Failed to complete booking",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking completed, escrow released", settlement)
}

// ReviewBooking records the client's rating for a completed booking
func (h *BookingHandler) ReviewBooking(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.paymentUC.ReviewBooking(c.Request().Context(), bookingID, actorID, req.Rating, req.Review); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Review recorded", nil)
}

// ForceRefundBooking is the admin dispute override
func (h *BookingHandler) ForceRefundBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.paymentUC.ForceRefundBooking(c.Request().Context(), bookingID, middleware.UserRole(c))
	if err != nil {
		logger.Error("Failed to force refund",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Booking refunded", booking)
}
