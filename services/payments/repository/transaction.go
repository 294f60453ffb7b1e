package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/payments"
)

// terminalStatuses are the states a pending ledger entry may move to
var terminalStatuses = map[string]bool{
	models.TransactionStatusCompleted: true,
	models.TransactionStatusFailed:    true,
	models.TransactionStatusCancelled: true,
}

// TransactionRepo implements the payments.TransactionRepo interface on
// PostgreSQL. The transactions table is the append-only audit trail for
// every balance-affecting event.
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(db *sqlx.DB) payments.TransactionRepo {
	return &TransactionRepo{db: db}
}

// Create appends a new ledger entry
func (r *TransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	ex := executor(ctx, r.db)

	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	_, err := sqlx.NamedExecContext(ctx, ex, `
		INSERT INTO transactions (
			id, user_id, amount, currency, type, status,
			payment_method, description, metadata, created_at, updated_at
		) VALUES (
			:id, :user_id, :amount, :currency, :type, :status,
			:payment_method, :description, :metadata, :created_at, :updated_at
		)
	`, txn)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a ledger entry by id
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	ex := executor(ctx, r.db)

	var txn models.Transaction
	err := sqlx.GetContext(ctx, ex, &txn, `
		SELECT id, user_id, amount, currency, type, status,
		       payment_method, description, metadata, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "transaction not found")
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// GetByPaymentIntentID retrieves the deposit entry tied to a processor
// payment intent.
func (r *TransactionRepo) GetByPaymentIntentID(ctx context.Context, intentID string) (*models.Transaction, error) {
	ex := executor(ctx, r.db)

	var txn models.Transaction
	err := sqlx.GetContext(ctx, ex, &txn, `
		SELECT id, user_id, amount, currency, type, status,
		       payment_method, description, metadata, created_at, updated_at
		FROM transactions
		WHERE type = $1 AND metadata->>'payment_intent_id' = $2
	`, models.TransactionTypeDeposit, intentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "payment intent not found")
		}
		return nil, fmt.Errorf("failed to get transaction by intent: %w", err)
	}
	return &txn, nil
}

// UpdateStatus transitions a pending entry to a terminal status. The WHERE
// guard makes the transition a compare-and-swap: anything other than one
// pending -> terminal move is rejected.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) error {
	if !terminalStatuses[newStatus] {
		return apperrors.New(apperrors.KindInvalidTransition,
			fmt.Sprintf("transaction status %q is not a permitted transition target", newStatus))
	}

	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, newStatus, id, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read status update result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindInvalidTransition, "transaction is not pending")
	}
	return nil
}

// ListByUser returns the user's ledger entries, newest first
func (r *TransactionRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	ex := executor(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	txns := []models.Transaction{}
	err := sqlx.SelectContext(ctx, ex, &txns, `
		SELECT id, user_id, amount, currency, type, status,
		       payment_method, description, metadata, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
