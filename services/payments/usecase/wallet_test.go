package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
)

func TestDeposit_CreatesPendingIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	userID := uuid.New()
	amount := decimal.NewFromFloat(250.00)

	m.gw.EXPECT().CreatePaymentIntent(gomock.Any(), userID, amount, "pix").Return("pi_123", nil)
	m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			assert.Equal(t, models.TransactionTypeDeposit, txn.Type)
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			assert.Equal(t, "pi_123", txn.Metadata[models.MetadataKeyPaymentIntentID])
			return nil
		},
	)

	intent, err := uc.Deposit(context.Background(), userID, &models.DepositRequest{
		Amount:        amount,
		PaymentMethod: "pix",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.PaymentIntentID)
	assert.Equal(t, models.TransactionStatusPending, intent.Status)
}

func TestDeposit_NonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	_, err := uc.Deposit(context.Background(), uuid.New(), &models.DepositRequest{
		Amount: decimal.Zero,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestConfirmDeposit_CreditsWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	userID := uuid.New()
	amount := decimal.NewFromFloat(250.00)
	pending := &models.Transaction{
		ID:     uuid.New(),
		UserID: userID,
		Amount: amount,
		Type:   models.TransactionTypeDeposit,
		Status: models.TransactionStatusPending,
	}

	m.txns.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_123").Return(pending, nil)
	m.txns.EXPECT().UpdateStatus(gomock.Any(), pending.ID, models.TransactionStatusCompleted).Return(nil)
	m.wallets.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&models.Wallet{UserID: userID}, nil)
	m.wallets.EXPECT().CreditBalance(gomock.Any(), userID, amount).Return(nil)
	m.gw.EXPECT().PublishDepositConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	txn, err := uc.ConfirmDeposit(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
}

func TestConfirmDeposit_SecondCallbackCreditsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	settled := &models.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: decimal.NewFromFloat(250.00),
		Type:   models.TransactionTypeDeposit,
		Status: models.TransactionStatusCompleted,
	}

	m.txns.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_123").Return(settled, nil)
	m.txns.EXPECT().UpdateStatus(gomock.Any(), settled.ID, models.TransactionStatusCompleted).
		Return(apperrors.New(apperrors.KindInvalidTransition, "transaction is not pending"))

	// No CreditBalance expectation: the guarded status move fails first
	_, err := uc.ConfirmDeposit(context.Background(), "pi_123")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
}

func TestConfirmDeposit_UnknownIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	m.txns.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_missing").
		Return(nil, apperrors.New(apperrors.KindNotFound, "payment intent not found"))

	_, err := uc.ConfirmDeposit(context.Background(), "pi_missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestWithdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	userID := uuid.New()
	amount := decimal.NewFromFloat(75.00)

	m.locker.EXPECT().Lock(gomock.Any(), userID).Return("acq-token-1", nil)
	m.locker.EXPECT().Unlock(gomock.Any(), userID, "acq-token-1")

	m.wallets.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&models.Wallet{
		UserID:  userID,
		Balance: decimal.NewFromFloat(100.00),
	}, nil)

	var txnID uuid.UUID
	m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			txnID = txn.ID
			assert.Equal(t, models.TransactionTypeWithdrawal, txn.Type)
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			assert.True(t, txn.Amount.Equal(amount.Neg()))
			return nil
		},
	)
	m.wallets.EXPECT().DebitBalance(gomock.Any(), userID, amount).Return(nil)
	m.gw.EXPECT().RequestPayout(gomock.Any(), userID, amount, "br-pix-key").Return(nil)
	m.txns.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.TransactionStatusCompleted).Return(nil)

	gotID, err := uc.Withdraw(context.Background(), userID, &models.WithdrawRequest{
		Amount:            amount,
		PayoutDestination: "br-pix-key",
	})

	require.NoError(t, err)
	assert.Equal(t, txnID, gotID)
}

func TestWithdraw_PayoutFailureReversesReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	userID := uuid.New()
	amount := decimal.NewFromFloat(75.00)

	m.locker.EXPECT().Lock(gomock.Any(), userID).Return("acq-token-1", nil)
	m.locker.EXPECT().Unlock(gomock.Any(), userID, "acq-token-1")

	m.wallets.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&models.Wallet{
		UserID:  userID,
		Balance: decimal.NewFromFloat(100.00),
	}, nil)

	m.txns.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) error {
			txn.ID = uuid.New()
			return nil
		},
	)
	m.wallets.EXPECT().DebitBalance(gomock.Any(), userID, amount).Return(nil)
	m.gw.EXPECT().RequestPayout(gomock.Any(), userID, amount, "br-pix-key").
		Return(errors.New("payout provider unavailable"))

	// Compensation: the entry is marked failed and the debit is credited back
	m.txns.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), models.TransactionStatusFailed).Return(nil)
	m.wallets.EXPECT().CreditBalance(gomock.Any(), userID, amount).Return(nil)

	_, err := uc.Withdraw(context.Background(), userID, &models.WithdrawRequest{
		Amount:            amount,
		PayoutDestination: "br-pix-key",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInternal))
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	userID := uuid.New()

	m.locker.EXPECT().Lock(gomock.Any(), userID).Return("acq-token-1", nil)
	m.locker.EXPECT().Unlock(gomock.Any(), userID, "acq-token-1")

	m.wallets.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&models.Wallet{
		UserID:  userID,
		Balance: decimal.NewFromFloat(10.00),
	}, nil)

	_, err := uc.Withdraw(context.Background(), userID, &models.WithdrawRequest{
		Amount:            decimal.NewFromFloat(75.00),
		PayoutDestination: "br-pix-key",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInsufficientFunds))
}

func TestWithdraw_CashbackNotSpendable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	userID := uuid.New()

	m.locker.EXPECT().Lock(gomock.Any(), userID).Return("acq-token-1", nil)
	m.locker.EXPECT().Unlock(gomock.Any(), userID, "acq-token-1")

	// A large cashback balance does not make the withdrawal affordable
	m.wallets.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&models.Wallet{
		UserID:          userID,
		Balance:         decimal.NewFromFloat(10.00),
		CashbackBalance: decimal.NewFromFloat(500.00),
	}, nil)

	_, err := uc.Withdraw(context.Background(), userID, &models.WithdrawRequest{
		Amount:            decimal.NewFromFloat(75.00),
		PayoutDestination: "br-pix-key",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInsufficientFunds))
}
