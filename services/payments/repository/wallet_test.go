package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/services/payments/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestGetOrCreate_NewWallet(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepo(db, "BRL")

	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallets")).
		WithArgs(userID, "BRL", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance, cashback_balance")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_id", "balance", "cashback_balance", "currency", "created_at", "updated_at"},
		).AddRow(userID, "0", "0", "BRL", time.Now(), time.Now()))

	wallet, err := repo.GetOrCreate(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, userID, wallet.UserID)
	assert.True(t, wallet.Balance.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitBalance_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepo(db, "BRL")

	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DebitBalance(context.Background(), userID, decimal.NewFromFloat(50.00))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitBalance_InsufficientFunds(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepo(db, "BRL")

	userID := uuid.New()

	// The balance guard matched no row
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DebitBalance(context.Background(), userID, decimal.NewFromFloat(9999.00))
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInsufficientFunds))
}

func TestCreditBalance_UnknownWallet(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepo(db, "BRL")

	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreditBalance(context.Background(), userID, decimal.NewFromFloat(10.00))
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
