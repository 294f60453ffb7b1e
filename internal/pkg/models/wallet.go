package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds a user's balances. Balance is the spendable amount;
// CashbackBalance is earned via cashback and is not spendable on bookings
// (loyalty-points style, there is no conversion back into Balance).
type Wallet struct {
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`
	Balance         decimal.Decimal `json:"balance" db:"balance"`
	CashbackBalance decimal.Decimal `json:"cashback_balance" db:"cashback_balance"`
	Currency        string          `json:"currency" db:"currency"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// DepositRequest asks the payment processor for a new payment intent
type DepositRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

// DepositIntent is returned to the caller; the wallet is only credited once
// the processor confirms the intent.
type DepositIntent struct {
	PaymentIntentID string          `json:"payment_intent_id"`
	TransactionID   uuid.UUID       `json:"transaction_id"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
}

// DepositConfirmRequest is the processor's confirmation callback payload
type DepositConfirmRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

// WithdrawRequest moves spendable balance out to an external payout destination
type WithdrawRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	PayoutDestination string          `json:"payout_destination"`
}

// DepositConfirmedEvent is published on NATS once a deposit settles
type DepositConfirmedEvent struct {
	UserID        uuid.UUID       `json:"user_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
}
