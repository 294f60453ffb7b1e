package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workme/backend/internal/pkg/models"
)

// TxManager runs a function inside a single database transaction. The
// transaction is carried on the context; repository methods called with
// that context participate in it. Any error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WalletRepo is the wallet store. Debits are atomic conditional updates so
// a balance can never go negative, even under concurrent requests.
type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	DebitBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
	CreditBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
	CreditCashback(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
}

// TransactionRepo is the append-only ledger. Entries are never deleted;
// only pending entries may change status, exactly once.
type TransactionRepo interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
}

// BookingRepo persists service bookings and guards payment-status
// transitions in SQL (pending -> escrowed -> released|refunded).
type BookingRepo interface {
	Create(ctx context.Context, booking *models.ServiceBooking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceBooking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, role string, limit int) ([]models.ServiceBooking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	MarkEscrowed(ctx context.Context, id uuid.UUID, escrowTransactionID uuid.UUID) error
	MarkReleased(ctx context.Context, id uuid.UUID) error
	MarkRefunded(ctx context.Context, id uuid.UUID) error
	SetReview(ctx context.Context, id uuid.UUID, rating int, review string) error
	ProfessionalRatingStats(ctx context.Context, professionalID uuid.UUID) (avg float64, count int, err error)
}

// ProfileRepo updates the professional's aggregate rating after a review
type ProfileRepo interface {
	UpdateProfessionalRating(ctx context.Context, professionalID uuid.UUID, rating float64, reviewsCount int) error
}

// UserLocker serializes money flows per user across service instances.
// Lock returns a token identifying the acquisition; Unlock releases the
// lock only while that token still owns it.
type UserLocker interface {
	Lock(ctx context.Context, userID uuid.UUID) (string, error)
	Unlock(ctx context.Context, userID uuid.UUID, token string)
}
