package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/payments/mocks"
)

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", role)
	return c
}

func TestDeposit_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPaymentUC := mocks.NewMockPaymentUC(ctrl)
	walletHandler := NewWalletHandler(mockPaymentUC)

	e := echo.New()
	requestBody := `{"amount": "150.00", "payment_method": "pix"}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/deposits", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	userID := uuid.New()
	c := authedContext(e, req, rec, userID, models.RoleClient)

	mockPaymentUC.EXPECT().
		Deposit(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, r *models.DepositRequest) (*models.DepositIntent, error) {
			assert.True(t, r.Amount.Equal(decimal.NewFromInt(150)))
			return &models.DepositIntent{
				PaymentIntentID: "pi_abc123",
				TransactionID:   uuid.New(),
				Amount:          r.Amount,
				Status:          models.TransactionStatusPending,
			}, nil
		})

	// Act
	err := walletHandler.Deposit(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "pi_abc123", data["payment_intent_id"])
	assert.Equal(t, models.TransactionStatusPending, data["status"])
}

func TestDeposit_Unauthenticated(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletHandler := NewWalletHandler(mocks.NewMockPaymentUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/wallet/deposits", strings.NewReader(`{"amount": "150.00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := walletHandler.Deposit(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPaymentUC := mocks.NewMockPaymentUC(ctrl)
	walletHandler := NewWalletHandler(mockPaymentUC)

	e := echo.New()
	requestBody := `{"amount": "500.00", "payout_destination": "pix:maria@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/withdrawals", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	userID := uuid.New()
	c := authedContext(e, req, rec, userID, models.RoleProfessional)

	mockPaymentUC.EXPECT().
		Withdraw(gomock.Any(), userID, gomock.Any()).
		Return(uuid.Nil, apperrors.New(apperrors.KindInsufficientFunds, "insufficient balance"))

	// Act
	err := walletHandler.Withdraw(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, string(apperrors.KindInsufficientFunds), response["kind"])
}

func TestConfirmDeposit_UnknownIntent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPaymentUC := mocks.NewMockPaymentUC(ctrl)
	walletHandler := NewWalletHandler(mockPaymentUC)

	e := echo.New()
	requestBody := `{"payment_intent_id": "pi_missing"}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/deposits/confirm", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockPaymentUC.EXPECT().
		ConfirmDeposit(gomock.Any(), "pi_missing").
		Return(nil, apperrors.New(apperrors.KindNotFound, "deposit not found"))

	// Act
	err := walletHandler.ConfirmDeposit(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWallet_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPaymentUC := mocks.NewMockPaymentUC(ctrl)
	walletHandler := NewWalletHandler(mockPaymentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
	rec := httptest.NewRecorder()

	userID := uuid.New()
	c := authedContext(e, req, rec, userID, models.RoleClient)

	mockPaymentUC.EXPECT().
		GetWallet(gomock.Any(), userID).
		Return(&models.Wallet{
			UserID:          userID,
			Balance:         decimal.NewFromFloat(320.50),
			CashbackBalance: decimal.NewFromFloat(6.41),
			Currency:        "BRL",
		}, nil)

	// Act
	err := walletHandler.GetWallet(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "320.5", data["balance"])
	assert.Equal(t, "BRL", data["currency"])
}
