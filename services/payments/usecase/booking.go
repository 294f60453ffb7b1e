package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/models"
)

// statusTransitions lists the legal lifecycle moves callable through
// UpdateBookingStatus. Completion is excluded: it only happens through
// CompleteBooking so escrow release can never be skipped.
var statusTransitions = map[string][]string{
	models.BookingStatusPending:    {models.BookingStatusAccepted, models.BookingStatusCancelled},
	models.BookingStatusAccepted:   {models.BookingStatusInProgress, models.BookingStatusCancelled},
	models.BookingStatusInProgress: {models.BookingStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CreateBooking books a professional for a client. The escrow hold happens
// inside one database transaction: booking row, ledger entry, conditional
// wallet debit and the payment-status move all commit or roll back together.
func (uc *paymentUC) CreateBooking(ctx context.Context, clientID uuid.UUID, role string, req *models.CreateBookingRequest) (*models.ServiceBooking, error) {
	if role != models.RoleClient {
		return nil, apperrors.New(apperrors.KindForbidden, "only clients can create bookings")
	}
	if req.ProfessionalID == uuid.Nil {
		return nil, apperrors.New(apperrors.KindValidation, "professional_id is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.New(apperrors.KindValidation, "booking amount must be positive")
	}

	// Serialize per-client money flows across instances
	lockToken, err := uc.locker.Lock(ctx, clientID)
	if err != nil {
		return nil, err
	}
	defer uc.locker.Unlock(ctx, clientID, lockToken)

	// Pre-check the balance so an underfunded request fails before any row
	// is written; the conditional debit below stays as the real guard.
	wallet, err := uc.wallets.GetOrCreate(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if wallet.Balance.LessThan(req.Amount) {
		return nil, apperrors.New(apperrors.KindInsufficientFunds, "insufficient wallet balance")
	}

	booking := &models.ServiceBooking{
		ID:              uuid.New(),
		ClientID:        clientID,
		ProfessionalID:  req.ProfessionalID,
		ServiceCategory: req.ServiceCategory,
		Description:     req.Description,
		Amount:          req.Amount,
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		ScheduledDate:   req.ScheduledDate,
	}

	err = uc.txm.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.bookings.Create(ctx, booking); err != nil {
			return err
		}

		hold := &models.Transaction{
			UserID:      clientID,
			Amount:      req.Amount.Neg(),
			Currency:    uc.cfg.Pricing.Currency,
			Type:        models.TransactionTypeEscrowHold,
			Status:      models.TransactionStatusCompleted,
			Description: fmt.Sprintf("Escrow hold for booking %s", booking.ID),
			Metadata:    models.Metadata{models.MetadataKeyBookingID: booking.ID.String()},
		}
		if err := uc.txns.Create(ctx, hold); err != nil {
			return err
		}

		if err := uc.wallets.DebitBalance(ctx, clientID, req.Amount); err != nil {
			return err
		}

		if err := uc.bookings.MarkEscrowed(ctx, booking.ID, hold.ID); err != nil {
			return err
		}

		booking.PaymentStatus = models.PaymentStatusEscrowed
		booking.EscrowTransactionID = &hold.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishBookingCreated(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking created event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err),
		)
	}

	return booking, nil
}

// GetBooking returns a booking to one of its participants
func (uc *paymentUC) GetBooking(ctx context.Context, actorID, bookingID uuid.UUID) (*models.ServiceBooking, error) {
	booking, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != actorID && booking.ProfessionalID != actorID {
		return nil, apperrors.New(apperrors.KindForbidden, "not a participant of this booking")
	}
	return booking, nil
}

// ListBookings returns the caller's bookings
func (uc *paymentUC) ListBookings(ctx context.Context, actorID uuid.UUID, role string, limit int) ([]models.ServiceBooking, error) {
	return uc.bookings.ListByUser(ctx, actorID, role, limit)
}

// UpdateBookingStatus moves a booking along its lifecycle. Cancelling an
// escrowed booking refunds the hold back to the client's spendable balance.
func (uc *paymentUC) UpdateBookingStatus(ctx context.Context, bookingID, actorID uuid.UUID, newStatus string) (*models.ServiceBooking, error) {
	booking, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != actorID && booking.ProfessionalID != actorID {
		return nil, apperrors.New(apperrors.KindForbidden, "not a participant of this booking")
	}
	if !transitionAllowed(booking.Status, newStatus) {
		return nil, apperrors.New(apperrors.KindInvalidState,
			fmt.Sprintf("cannot move booking from %s to %s", booking.Status, newStatus))
	}

	if newStatus == models.BookingStatusCancelled {
		if err := uc.refundEscrow(ctx, booking, "booking cancelled"); err != nil {
			return nil, err
		}
		booking.Status = models.BookingStatusCancelled

		if err := uc.gw.PublishBookingCancelled(ctx, booking); err != nil {
			logger.Warn("Failed to publish booking cancelled event",
				logger.String("booking_id", booking.ID.String()),
				logger.Err(err),
			)
		}
		return booking, nil
	}

	if err := uc.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	booking.Status = newStatus
	return booking, nil
}

// ForceRefundBooking is the admin override for disputes: it refunds an
// escrowed booking regardless of participants. Requires the admin role.
func (uc *paymentUC) ForceRefundBooking(ctx context.Context, bookingID uuid.UUID, actorRole string) (*models.ServiceBooking, error) {
	if actorRole != models.RoleAdmin {
		return nil, apperrors.New(apperrors.KindForbidden, "admin role required")
	}

	booking, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.refundEscrow(ctx, booking, "refund forced by admin"); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusCancelled

	if err := uc.gw.PublishBookingCancelled(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking cancelled event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err),
		)
	}
	return booking, nil
}
