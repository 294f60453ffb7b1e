package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types. Amounts are signed: negative entries debit the owner's
// wallet, positive entries credit it.
const (
	TransactionTypeDeposit       = "deposit"
	TransactionTypeWithdrawal    = "withdrawal"
	TransactionTypePayment       = "payment"
	TransactionTypeCashback      = "cashback"
	TransactionTypeEscrowHold    = "escrow_hold"
	TransactionTypeEscrowRelease = "escrow_release"
)

// Transaction statuses. A pending entry may move to exactly one of the
// other states, once; completed entries are immutable.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)

// Metadata stores free-form key/value context on a ledger entry (e.g. the
// booking id an escrow hold belongs to) as a JSONB column.
type Metadata map[string]string

// Value implements driver.Valuer
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for metadata: %T", src)
	}
	return json.Unmarshal(data, m)
}

// Metadata keys used by the escrow controller.
const (
	MetadataKeyBookingID       = "booking_id"
	MetadataKeyPaymentIntentID = "payment_intent_id"
	MetadataKeyReason          = "reason"
)

// Transaction is an append-only ledger entry. The ledger is the source of
// truth for balance changes; wallet balances are derived running totals.
type Transaction struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Currency      string          `json:"currency" db:"currency"`
	Type          string          `json:"type" db:"type"`
	Status        string          `json:"status" db:"status"`
	PaymentMethod string          `json:"payment_method" db:"payment_method"`
	Description   string          `json:"description" db:"description"`
	Metadata      Metadata        `json:"metadata" db:"metadata"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
