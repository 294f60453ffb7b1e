package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/payments/repository"
)

func TestTransactionCreate_AssignsID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(db)

	txn := &models.Transaction{
		UserID:   uuid.New(),
		Amount:   decimal.NewFromFloat(100.00),
		Currency: "BRL",
		Type:     models.TransactionTypeDeposit,
		Status:   models.TransactionStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), txn)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionUpdateStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
		WithArgs(models.TransactionStatusCompleted, id, models.TransactionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, models.TransactionStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionUpdateStatus_NotPending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(db)

	id := uuid.New()

	// The pending guard matched no row: the entry already settled
	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
		WithArgs(models.TransactionStatusFailed, id, models.TransactionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, models.TransactionStatusFailed)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
}

func TestTransactionUpdateStatus_PendingIsNotATarget(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := repository.NewTransactionRepo(db)

	// Entries cannot be reset back to pending
	err := repo.UpdateStatus(context.Background(), uuid.New(), models.TransactionStatusPending)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidTransition))
}

func TestGetByPaymentIntentID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(models.TransactionTypeDeposit, "pi_missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByPaymentIntentID(context.Background(), "pi_missing")
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestListByUser_DefaultLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(db)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "amount", "currency", "type", "status",
		"payment_method", "description", "metadata", "created_at", "updated_at",
	}).AddRow(uuid.New(), userID, "100", "BRL", models.TransactionTypeDeposit,
		models.TransactionStatusCompleted, "", "Wallet deposit", "{}", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(userID, 50).
		WillReturnRows(rows)

	txns, err := repo.ListByUser(context.Background(), userID, 0)
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
