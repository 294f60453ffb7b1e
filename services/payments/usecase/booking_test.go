package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/payments/mocks"
)

type ucMocks struct {
	txm      *mocks.MockTxManager
	wallets  *mocks.MockWalletRepo
	txns     *mocks.MockTransactionRepo
	bookings *mocks.MockBookingRepo
	profiles *mocks.MockProfileRepo
	locker   *mocks.MockUserLocker
	gw       *mocks.MockPaymentGW
}

func newTestUC(ctrl *gomock.Controller) (*paymentUC, *ucMocks) {
	m := &ucMocks{
		txm:      mocks.NewMockTxManager(ctrl),
		wallets:  mocks.NewMockWalletRepo(ctrl),
		txns:     mocks.NewMockTransactionRepo(ctrl),
		bookings: mocks.NewMockBookingRepo(ctrl),
		profiles: mocks.NewMockProfileRepo(ctrl),
		locker:   mocks.NewMockUserLocker(ctrl),
		gw:       mocks.NewMockPaymentGW(ctrl),
	}

	cfg := &models.Config{
		Pricing: models.PricingConfig{
			Currency:          "BRL",
			PlatformFeeRate:   0.05,
			CashbackRate:      0.02,
			PlatformAccountID: "00000000-0000-0000-0000-000000000001",
		},
	}

	uc := NewPaymentUC(cfg, m.txm, m.wallets, m.txns, m.bookings, m.profiles, m.locker, m.gw)
	return uc.(*paymentUC), m
}

// passThroughTx makes the mocked transaction manager run the body directly
func passThroughTx(m *mocks.MockTxManager) {
	m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestCreateBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	clientID := uuid.New()
	professionalID := uuid.New()
	amount := decimal.NewFromFloat(150.00)

	// The unlock must present the token this acquisition was granted
	m.locker.EXPECT().Lock(gomock.Any(), clientID).Return("acq-token-1", nil)
	m.locker.EXPECT().Unlock(gomock.Any(), clientID, "acq-token-1")

	m.wallets.EXPECT().GetOrCreate(gomock.Any(), clientID).Return(&models.Wallet{
		UserID:  clientID,
		Balance: decimal.NewFromFloat(200.00),
	}, nil)

	m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	var holdID uuid.UUID
	m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			holdID = txn.ID
			assert.Equal(t, models.TransactionTypeEscrowHold, txn.Type)
			assert.True(t, txn.Amount.Equal(amount.Neg()), "hold entry must debit the client")
			assert.Equal(t, clientID, txn.UserID)
			return nil
		},
	)

	m.wallets.EXPECT().DebitBalance(gomock.Any(), clientID, amount).Return(nil)
	m.bookings.EXPECT().MarkEscrowed(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, escrowTxnID uuid.UUID) error {
			assert.Equal(t, holdID, escrowTxnID)
			return nil
		},
	)
	m.gw.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := uc.CreateBooking(context.Background(), clientID, models.RoleClient, &models.CreateBookingRequest{
		ProfessionalID:  professionalID,
		ServiceCategory: "limpeza",
		Amount:          amount,
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, models.PaymentStatusEscrowed, booking.PaymentStatus)
	require.NotNil(t, booking.EscrowTransactionID)
	assert.Equal(t, holdID, *booking.EscrowTransactionID)
}

func TestCreateBooking_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	clientID := uuid.New()

	m.locker.EXPECT().Lock(gomock.Any(), clientID).Return("acq-token-1", nil)
	m.locker.EXPECT().Unlock(gomock.Any(), clientID, "acq-token-1")

	m.wallets.EXPECT().GetOrCreate(gomock.Any(), clientID).Return(&models.Wallet{
		UserID:  clientID,
		Balance: decimal.NewFromFloat(10.00),
	}, nil)

	_, err := uc.CreateBooking(context.Background(), clientID, models.RoleClient, &models.CreateBookingRequest{
		ProfessionalID: uuid.New(),
		Amount:         decimal.NewFromFloat(150.00),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInsufficientFunds))
}

func TestCreateBooking_ProfessionalCannotBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	_, err := uc.CreateBooking(context.Background(), uuid.New(), models.RoleProfessional, &models.CreateBookingRequest{
		ProfessionalID: uuid.New(),
		Amount:         decimal.NewFromFloat(50.00),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestCreateBooking_DebitFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	clientID := uuid.New()
	amount := decimal.NewFromFloat(80.00)

	m.locker.EXPECT().Lock(gomock.Any(), clientID).Return("acq-token-1", nil)
	m.locker.EXPECT().Unlock(gomock.Any(), clientID, "acq-token-1")

	m.wallets.EXPECT().GetOrCreate(gomock.Any(), clientID).Return(&models.Wallet{
		UserID:  clientID,
		Balance: decimal.NewFromFloat(100.00),
	}, nil)

	m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	// Another request raced in between the pre-check and the debit
	m.wallets.EXPECT().DebitBalance(gomock.Any(), clientID, amount).
		Return(apperrors.New(apperrors.KindInsufficientFunds, "insufficient wallet balance"))

	_, err := uc.CreateBooking(context.Background(), clientID, models.RoleClient, &models.CreateBookingRequest{
		ProfessionalID: uuid.New(),
		Amount:         amount,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInsufficientFunds))
}

func TestUpdateBookingStatus_IllegalTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	clientID := uuid.New()
	booking := &models.ServiceBooking{
		ID:            uuid.New(),
		ClientID:      clientID,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusEscrowed,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)

	// pending cannot jump straight to in_progress
	_, err := uc.UpdateBookingStatus(context.Background(), booking.ID, clientID, models.BookingStatusInProgress)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestUpdateBookingStatus_CompletionNotReachableDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	clientID := uuid.New()
	booking := &models.ServiceBooking{
		ID:            uuid.New(),
		ClientID:      clientID,
		Status:        models.BookingStatusInProgress,
		PaymentStatus: models.PaymentStatusEscrowed,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := uc.UpdateBookingStatus(context.Background(), booking.ID, clientID, models.BookingStatusCompleted)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestUpdateBookingStatus_CancelRefundsEscrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	clientID := uuid.New()
	amount := decimal.NewFromFloat(120.00)
	booking := &models.ServiceBooking{
		ID:            uuid.New(),
		ClientID:      clientID,
		Amount:        amount,
		Status:        models.BookingStatusAccepted,
		PaymentStatus: models.PaymentStatusEscrowed,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)

	m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			assert.Equal(t, models.TransactionTypeEscrowRelease, txn.Type)
			assert.True(t, txn.Amount.Equal(amount), "refund credits the full held amount")
			assert.Equal(t, clientID, txn.UserID)
			return nil
		},
	)
	m.wallets.EXPECT().GetOrCreate(gomock.Any(), clientID).
		Return(&models.Wallet{UserID: clientID}, nil)
	m.wallets.EXPECT().CreditBalance(gomock.Any(), clientID, amount).Return(nil)
	m.bookings.EXPECT().MarkRefunded(gomock.Any(), booking.ID).Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.UpdateBookingStatus(context.Background(), booking.ID, clientID, models.BookingStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	assert.Equal(t, models.PaymentStatusRefunded, updated.PaymentStatus)
}

func TestUpdateBookingStatus_NotParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	booking := &models.ServiceBooking{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: uuid.New(),
		Status:         models.BookingStatusPending,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := uc.UpdateBookingStatus(context.Background(), booking.ID, uuid.New(), models.BookingStatusAccepted)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestForceRefundBooking_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	_, err := uc.ForceRefundBooking(context.Background(), uuid.New(), models.RoleClient)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestForceRefundBooking_AdminRefundsEscrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	clientID := uuid.New()
	amount := decimal.NewFromFloat(300.00)
	booking := &models.ServiceBooking{
		ID:            uuid.New(),
		ClientID:      clientID,
		Amount:        amount,
		Status:        models.BookingStatusInProgress,
		PaymentStatus: models.PaymentStatusEscrowed,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.wallets.EXPECT().GetOrCreate(gomock.Any(), clientID).
		Return(&models.Wallet{UserID: clientID}, nil)
	m.wallets.EXPECT().CreditBalance(gomock.Any(), clientID, amount).Return(nil)
	m.bookings.EXPECT().MarkRefunded(gomock.Any(), booking.ID).Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.ForceRefundBooking(context.Background(), booking.ID, models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
}
