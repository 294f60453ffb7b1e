package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/payments"
)

// WalletRepo implements the payments.WalletRepo interface on PostgreSQL
type WalletRepo struct {
	db       *sqlx.DB
	currency string
}

// NewWalletRepo creates a new wallet repository
func NewWalletRepo(db *sqlx.DB, currency string) payments.WalletRepo {
	return &WalletRepo{db: db, currency: currency}
}

// GetOrCreate returns the user's wallet, creating an empty one on first
// access. Wallets are never deleted.
func (r *WalletRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	ex := executor(ctx, r.db)
	now := time.Now()

	_, err := ex.ExecContext(ctx, `
		INSERT INTO wallets (user_id, balance, cashback_balance, currency, created_at, updated_at)
		VALUES ($1, 0, 0, $2, $3, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, r.currency, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	var wallet models.Wallet
	err = sqlx.GetContext(ctx, ex, &wallet, `
		SELECT user_id, balance, cashback_balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "wallet not found")
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &wallet, nil
}

// DebitBalance atomically subtracts amount from the spendable balance.
// The conditional update keeps the balance from ever going negative.
func (r *WalletRepo) DebitBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE wallets
		SET balance = balance - $1, updated_at = NOW()
		WHERE user_id = $2 AND balance >= $1
	`, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read debit result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindInsufficientFunds, "insufficient wallet balance")
	}
	return nil
}

// CreditBalance adds amount to the spendable balance
func (r *WalletRepo) CreditBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	return r.credit(ctx, userID, "balance", amount)
}

// CreditCashback adds amount to the cashback balance. Cashback is tracked
// apart from the spendable balance and is not spendable on bookings.
func (r *WalletRepo) CreditCashback(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	return r.credit(ctx, userID, "cashback_balance", amount)
}

func (r *WalletRepo) credit(ctx context.Context, userID uuid.UUID, column string, amount decimal.Decimal) error {
	ex := executor(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE wallets
		SET %s = %s + $1, updated_at = NOW()
		WHERE user_id = $2
	`, column, column)

	result, err := ex.ExecContext(ctx, query, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read credit result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "wallet not found")
	}
	return nil
}
