package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/services/payments"
)

type txKey struct{}

// TxManager runs multi-write flows inside one database transaction. The
// open transaction rides on the context so every repository call between
// begin and commit hits the same tx.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *sqlx.DB) payments.TxManager {
	return &TxManager{db: db}
}

// WithinTx executes fn inside a transaction, rolling back on any error
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := txFromContext(ctx); tx != nil {
		// Already inside a transaction; join it
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr.Error() != "sql: transaction has already been committed or rolled back" {
			logger.Warn("Failed to rollback transaction", logger.Err(rbErr))
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func txFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// executor returns the context transaction when present, the pool otherwise
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
