package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/models"
)

// GetWallet returns the caller's wallet, creating it on first access
func (uc *paymentUC) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return uc.wallets.GetOrCreate(ctx, userID)
}

// ListTransactions returns the caller's ledger entries, newest first
func (uc *paymentUC) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	return uc.txns.ListByUser(ctx, userID, limit)
}

// Deposit opens a payment intent with the processor and records a pending
// ledger entry. The wallet balance does not move until ConfirmDeposit.
func (uc *paymentUC) Deposit(ctx context.Context, userID uuid.UUID, req *models.DepositRequest) (*models.DepositIntent, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.New(apperrors.KindValidation, "deposit amount must be positive")
	}

	intentID, err := uc.gw.CreatePaymentIntent(ctx, userID, req.Amount, req.PaymentMethod)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "payment processor unavailable", err)
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Currency:    uc.cfg.Pricing.Currency,
		Type:        models.TransactionTypeDeposit,
		Status:      models.TransactionStatusPending,
		Description: "Wallet deposit",
		Metadata:    models.Metadata{models.MetadataKeyPaymentIntentID: intentID},
	}
	if err := uc.txns.Create(ctx, txn); err != nil {
		return nil, err
	}

	return &models.DepositIntent{
		PaymentIntentID: intentID,
		TransactionID:   txn.ID,
		Amount:          req.Amount,
		Status:          models.TransactionStatusPending,
	}, nil
}

// ConfirmDeposit settles a pending deposit after the processor's callback.
// The guarded status move makes confirmation idempotent: a second callback
// for the same intent fails the pending check and credits nothing.
func (uc *paymentUC) ConfirmDeposit(ctx context.Context, paymentIntentID string) (*models.Transaction, error) {
	if paymentIntentID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "payment_intent_id is required")
	}

	txn, err := uc.txns.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	err = uc.txm.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.txns.UpdateStatus(ctx, txn.ID, models.TransactionStatusCompleted); err != nil {
			return err
		}
		if _, err := uc.wallets.GetOrCreate(ctx, txn.UserID); err != nil {
			return err
		}
		return uc.wallets.CreditBalance(ctx, txn.UserID, txn.Amount)
	})
	if err != nil {
		return nil, err
	}
	txn.Status = models.TransactionStatusCompleted

	if err := uc.gw.PublishDepositConfirmed(ctx, &models.DepositConfirmedEvent{
		UserID:        txn.UserID,
		TransactionID: txn.ID,
		Amount:        txn.Amount,
		Timestamp:     time.Now().UTC(),
	}); err != nil {
		logger.Warn("Failed to publish deposit confirmed event",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err),
		)
	}

	return txn, nil
}

// Withdraw reserves funds first (debit plus a pending ledger entry in one
// database transaction), then calls the payout rail. A payout failure is
// compensated by crediting the reservation back and marking the entry
// failed, so the balance is never short while a payout is in flight.
func (uc *paymentUC) Withdraw(ctx context.Context, userID uuid.UUID, req *models.WithdrawRequest) (uuid.UUID, error) {
	if !req.Amount.IsPositive() {
		return uuid.Nil, apperrors.New(apperrors.KindValidation, "withdrawal amount must be positive")
	}
	if req.PayoutDestination == "" {
		return uuid.Nil, apperrors.New(apperrors.KindValidation, "payout_destination is required")
	}

	lockToken, err := uc.locker.Lock(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	defer uc.locker.Unlock(ctx, userID, lockToken)

	wallet, err := uc.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if wallet.Balance.LessThan(req.Amount) {
		return uuid.Nil, apperrors.New(apperrors.KindInsufficientFunds, "insufficient wallet balance")
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount.Neg(),
		Currency:    uc.cfg.Pricing.Currency,
		Type:        models.TransactionTypeWithdrawal,
		Status:      models.TransactionStatusPending,
		Description: fmt.Sprintf("Withdrawal to %s", req.PayoutDestination),
	}

	err = uc.txm.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.txns.Create(ctx, txn); err != nil {
			return err
		}
		return uc.wallets.DebitBalance(ctx, userID, req.Amount)
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := uc.gw.RequestPayout(ctx, userID, req.Amount, req.PayoutDestination); err != nil {
		logger.Error("Payout failed, reversing withdrawal reservation",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err),
		)
		compErr := uc.txm.WithinTx(ctx, func(ctx context.Context) error {
			if err := uc.txns.UpdateStatus(ctx, txn.ID, models.TransactionStatusFailed); err != nil {
				return err
			}
			return uc.wallets.CreditBalance(ctx, userID, req.Amount)
		})
		if compErr != nil {
			// Funds stay reserved against the pending entry; a ledger sweep
			// can retry the reversal from the pending withdrawal row.
			logger.Error("Failed to reverse withdrawal reservation",
				logger.String("transaction_id", txn.ID.String()),
				logger.Err(compErr),
			)
		}
		return uuid.Nil, apperrors.Wrap(apperrors.KindInternal, "payout provider rejected the withdrawal", err)
	}

	if err := uc.txns.UpdateStatus(ctx, txn.ID, models.TransactionStatusCompleted); err != nil {
		logger.Error("Payout sent but ledger entry still pending",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err),
		)
	}

	return txn.ID, nil
}
