package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/models"
)

// settlementSplit computes the release split for a booking amount. The
// professional amount is derived by subtraction so fee + professional
// always reconciles to the total exactly.
func (uc *paymentUC) settlementSplit(total decimal.Decimal) (professional, fee, cashback decimal.Decimal) {
	fee = total.Mul(decimal.NewFromFloat(uc.cfg.Pricing.PlatformFeeRate)).Round(2)
	cashback = total.Mul(decimal.NewFromFloat(uc.cfg.Pricing.CashbackRate)).Round(2)
	professional = total.Sub(fee)
	return professional, fee, cashback
}

// CompleteBooking releases escrow: the professional is paid the booking
// amount minus the platform fee, the client earns cashback on the separate
// cashback balance, and the fee is credited to the platform ledger account.
// All writes commit or roll back as one unit.
func (uc *paymentUC) CompleteBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*models.SettlementResult, error) {
	booking, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != actorID {
		return nil, apperrors.New(apperrors.KindForbidden, "only the booking's client can complete it")
	}
	if booking.PaymentStatus != models.PaymentStatusEscrowed {
		return nil, apperrors.New(apperrors.KindInvalidState, "payment not in escrow")
	}

	professionalAmount, platformFee, cashbackAmount := uc.settlementSplit(booking.Amount)
	meta := models.Metadata{models.MetadataKeyBookingID: booking.ID.String()}

	err = uc.txm.WithinTx(ctx, func(ctx context.Context) error {
		release := &models.Transaction{
			UserID:      booking.ProfessionalID,
			Amount:      professionalAmount,
			Currency:    uc.cfg.Pricing.Currency,
			Type:        models.TransactionTypeEscrowRelease,
			Status:      models.TransactionStatusCompleted,
			Description: fmt.Sprintf("Escrow release for booking %s", booking.ID),
			Metadata:    meta,
		}
		if err := uc.txns.Create(ctx, release); err != nil {
			return err
		}

		cashback := &models.Transaction{
			UserID:      booking.ClientID,
			Amount:      cashbackAmount,
			Currency:    uc.cfg.Pricing.Currency,
			Type:        models.TransactionTypeCashback,
			Status:      models.TransactionStatusCompleted,
			Description: fmt.Sprintf("Cashback for booking %s", booking.ID),
			Metadata:    meta,
		}
		if err := uc.txns.Create(ctx, cashback); err != nil {
			return err
		}

		// The fee is recorded against the platform ledger account so every
		// release reconciles to zero against its hold.
		if platformAccount, err := uuid.Parse(uc.cfg.Pricing.PlatformAccountID); err == nil {
			feeEntry := &models.Transaction{
				UserID:      platformAccount,
				Amount:      platformFee,
				Currency:    uc.cfg.Pricing.Currency,
				Type:        models.TransactionTypePayment,
				Status:      models.TransactionStatusCompleted,
				Description: fmt.Sprintf("Platform fee for booking %s", booking.ID),
				Metadata:    meta,
			}
			if err := uc.txns.Create(ctx, feeEntry); err != nil {
				return err
			}
		} else {
			logger.Warn("Platform account not configured, fee recorded implicitly",
				logger.String("booking_id", booking.ID.String()),
			)
		}

		// Wallets are created lazily; the professional may never have
		// touched a wallet endpoint before their first payout.
		if _, err := uc.wallets.GetOrCreate(ctx, booking.ProfessionalID); err != nil {
			return err
		}
		if err := uc.wallets.CreditBalance(ctx, booking.ProfessionalID, professionalAmount); err != nil {
			return err
		}
		if err := uc.wallets.CreditCashback(ctx, booking.ClientID, cashbackAmount); err != nil {
			return err
		}

		// Guarded move escrowed -> released; a concurrent completion loses
		// here and the whole transaction rolls back, so nothing double-pays.
		return uc.bookings.MarkReleased(ctx, booking.ID)
	})
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatusCompleted
	booking.PaymentStatus = models.PaymentStatusReleased
	now := time.Now()
	booking.CompletedDate = &now

	if err := uc.gw.PublishBookingCompleted(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking completed event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err),
		)
	}
	if err := uc.gw.PublishPaymentReleased(ctx, &models.PaymentReleasedEvent{
		BookingID:          booking.ID,
		ProfessionalID:     booking.ProfessionalID,
		ClientID:           booking.ClientID,
		ProfessionalAmount: professionalAmount,
		PlatformFee:        platformFee,
		CashbackAmount:     cashbackAmount,
		Timestamp:          now.UTC(),
	}); err != nil {
		logger.Warn("Failed to publish payment released event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err),
		)
	}

	return &models.SettlementResult{
		BookingID:          booking.ID,
		ProfessionalAmount: professionalAmount,
		PlatformFee:        platformFee,
		CashbackAmount:     cashbackAmount,
	}, nil
}

// refundEscrow cancels a booking and returns the held amount to the
// client's spendable balance. Bookings whose payment never reached escrow
// are simply cancelled with no money movement.
func (uc *paymentUC) refundEscrow(ctx context.Context, booking *models.ServiceBooking, reason string) error {
	if booking.IsTerminal() {
		return apperrors.New(apperrors.KindInvalidState, "booking is already finished")
	}

	if booking.PaymentStatus != models.PaymentStatusEscrowed {
		if booking.PaymentStatus != models.PaymentStatusPending {
			return apperrors.New(apperrors.KindInvalidState, "payment not in escrow")
		}
		return uc.bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled)
	}

	err := uc.txm.WithinTx(ctx, func(ctx context.Context) error {
		refund := &models.Transaction{
			UserID:      booking.ClientID,
			Amount:      booking.Amount,
			Currency:    uc.cfg.Pricing.Currency,
			Type:        models.TransactionTypeEscrowRelease,
			Status:      models.TransactionStatusCompleted,
			Description: fmt.Sprintf("Escrow refund for booking %s", booking.ID),
			Metadata: models.Metadata{
				models.MetadataKeyBookingID: booking.ID.String(),
				models.MetadataKeyReason:    reason,
			},
		}
		if err := uc.txns.Create(ctx, refund); err != nil {
			return err
		}

		if _, err := uc.wallets.GetOrCreate(ctx, booking.ClientID); err != nil {
			return err
		}
		if err := uc.wallets.CreditBalance(ctx, booking.ClientID, booking.Amount); err != nil {
			return err
		}

		return uc.bookings.MarkRefunded(ctx, booking.ID)
	})
	if err != nil {
		return err
	}

	booking.PaymentStatus = models.PaymentStatusRefunded
	return nil
}
