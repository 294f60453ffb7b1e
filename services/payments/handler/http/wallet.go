package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/middleware"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/internal/utils"
	"github.com/workme/backend/services/payments"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	paymentUC payments.PaymentUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(paymentUC payments.PaymentUC) *WalletHandler {
	return &WalletHandler{paymentUC: paymentUC}
}

// GetWallet returns the caller's balances
func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	wallet, err := h.paymentUC.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Wallet retrieved successfully", wallet)
}

// ListTransactions returns the caller's ledger history
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	txns, err := h.paymentUC.ListTransactions(c.Request().Context(), userID, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Transactions retrieved successfully", txns)
}

// Deposit opens a payment intent for a wallet top-up
func (h *WalletHandler) Deposit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	intent, err := h.paymentUC.Deposit(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Error("Failed to open deposit intent",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusAccepted, "Deposit intent created", intent)
}

// ConfirmDeposit settles a pending deposit from the processor's callback
func (h *WalletHandler) ConfirmDeposit(c echo.Context) error {
	var req models.DepositConfirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.paymentUC.ConfirmDeposit(c.Request().Context(), req.PaymentIntentID)
	if err != nil {
		logger.Error("Failed to confirm deposit",
			logger.String("payment_intent_id", req.PaymentIntentID),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Deposit confirmed", txn)
}

// Withdraw reserves balance and sends it to the payout rail
func (h *WalletHandler) Withdraw(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txnID, err := h.paymentUC.Withdraw(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Error("Failed to withdraw",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Withdrawal completed", map[string]interface{}{
		"transaction_id": txnID,
	})
}
