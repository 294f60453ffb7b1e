package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workme/backend/internal/pkg/models"
)

// PaymentGW covers the service's outbound edges: domain events on NATS and
// the external payment rails.
type PaymentGW interface {
	// Events
	PublishBookingCreated(ctx context.Context, booking *models.ServiceBooking) error
	PublishBookingCompleted(ctx context.Context, booking *models.ServiceBooking) error
	PublishBookingCancelled(ctx context.Context, booking *models.ServiceBooking) error
	PublishPaymentReleased(ctx context.Context, event *models.PaymentReleasedEvent) error
	PublishDepositConfirmed(ctx context.Context, event *models.DepositConfirmedEvent) error

	// Payment processor collaborator: funds are not credited until the
	// processor confirms the intent.
	CreatePaymentIntent(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method string) (string, error)

	// Payout rail collaborator for withdrawals
	RequestPayout(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, destination string) error
}
