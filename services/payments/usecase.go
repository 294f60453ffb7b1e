package payments

import (
	"context"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/models"
)

// PaymentUC is the escrow/settlement core: booking lifecycle, the escrow
// hold/release/refund flows, wallet operations and the ledger.
type PaymentUC interface {
	// Booking state machine + escrow controller
	CreateBooking(ctx context.Context, clientID uuid.UUID, role string, req *models.CreateBookingRequest) (*models.ServiceBooking, error)
	GetBooking(ctx context.Context, actorID, bookingID uuid.UUID) (*models.ServiceBooking, error)
	ListBookings(ctx context.Context, actorID uuid.UUID, role string, limit int) ([]models.ServiceBooking, error)
	UpdateBookingStatus(ctx context.Context, bookingID, actorID uuid.UUID, newStatus string) (*models.ServiceBooking, error)
	CompleteBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*models.SettlementResult, error)
	ReviewBooking(ctx context.Context, bookingID, actorID uuid.UUID, rating int, review string) error
	ForceRefundBooking(ctx context.Context, bookingID uuid.UUID, actorRole string) (*models.ServiceBooking, error)

	// Wallet + ledger
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
	Deposit(ctx context.Context, userID uuid.UUID, req *models.DepositRequest) (*models.DepositIntent, error)
	ConfirmDeposit(ctx context.Context, paymentIntentID string) (*models.Transaction, error)
	Withdraw(ctx context.Context, userID uuid.UUID, req *models.WithdrawRequest) (uuid.UUID, error)
}
