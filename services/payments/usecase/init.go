package usecase

import (
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/payments"
)

// paymentUC implements the payments.PaymentUC interface
type paymentUC struct {
	cfg      *models.Config
	txm      payments.TxManager
	wallets  payments.WalletRepo
	txns     payments.TransactionRepo
	bookings payments.BookingRepo
	profiles payments.ProfileRepo
	locker   payments.UserLocker
	gw       payments.PaymentGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	txm payments.TxManager,
	wallets payments.WalletRepo,
	txns payments.TransactionRepo,
	bookings payments.BookingRepo,
	profiles payments.ProfileRepo,
	locker payments.UserLocker,
	gw payments.PaymentGW,
) payments.PaymentUC {
	return &paymentUC{
		cfg:      cfg,
		txm:      txm,
		wallets:  wallets,
		txns:     txns,
		bookings: bookings,
		profiles: profiles,
		locker:   locker,
		gw:       gw,
	}
}
