package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking lifecycle states. Cancelled is reachable from any non-terminal
// state; completed is only reached through the escrow release flow.
const (
	BookingStatusPending    = "pending"
	BookingStatusAccepted   = "accepted"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Payment states for a booking. Transitions only move
// pending -> escrowed -> released|refunded.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusEscrowed = "escrowed"
	PaymentStatusReleased = "released"
	PaymentStatusRefunded = "refunded"
)

// ServiceBooking represents one requested service engagement between a
// client and a professional.
type ServiceBooking struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	ClientID            uuid.UUID       `json:"client_id" db:"client_id"`
	ProfessionalID      uuid.UUID       `json:"professional_id" db:"professional_id"`
	ServiceCategory     string          `json:"service_category" db:"service_category"`
	Description         string          `json:"description" db:"description"`
	Amount              decimal.Decimal `json:"amount" db:"amount"`
	Status              string          `json:"status" db:"status"`
	PaymentStatus       string          `json:"payment_status" db:"payment_status"`
	EscrowTransactionID *uuid.UUID      `json:"escrow_transaction_id,omitempty" db:"escrow_transaction_id"`
	ScheduledDate       time.Time       `json:"scheduled_date" db:"scheduled_date"`
	CompletedDate       *time.Time      `json:"completed_date,omitempty" db:"completed_date"`
	ClientRating        *int            `json:"client_rating,omitempty" db:"client_rating"`
	ClientReview        *string         `json:"client_review,omitempty" db:"client_review"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

// IsTerminal reports whether the booking can no longer change status
func (b *ServiceBooking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// CreateBookingRequest is the payload for booking a professional
type CreateBookingRequest struct {
	ProfessionalID  uuid.UUID       `json:"professional_id"`
	ServiceCategory string          `json:"service_category"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	ScheduledDate   time.Time       `json:"scheduled_date"`
}

// UpdateBookingStatusRequest moves a booking along its lifecycle
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// ReviewRequest is the payload for the client's post-completion review
type ReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// SettlementResult reports the split applied when escrow is released
type SettlementResult struct {
	BookingID          uuid.UUID       `json:"booking_id"`
	ProfessionalAmount decimal.Decimal `json:"professional_amount"`
	PlatformFee        decimal.Decimal `json:"platform_fee"`
	CashbackAmount     decimal.Decimal `json:"cashback_amount"`
}

// BookingEvent is published on NATS for booking lifecycle changes
type BookingEvent struct {
	BookingID       uuid.UUID       `json:"booking_id"`
	ClientID        uuid.UUID       `json:"client_id"`
	ProfessionalID  uuid.UUID       `json:"professional_id"`
	ServiceCategory string          `json:"service_category"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	Timestamp       time.Time       `json:"timestamp"`
}

// PaymentReleasedEvent is published on NATS when escrow is released
type PaymentReleasedEvent struct {
	BookingID          uuid.UUID       `json:"booking_id"`
	ProfessionalID     uuid.UUID       `json:"professional_id"`
	ClientID           uuid.UUID       `json:"client_id"`
	ProfessionalAmount decimal.Decimal `json:"professional_amount"`
	PlatformFee        decimal.Decimal `json:"platform_fee"`
	CashbackAmount     decimal.Decimal `json:"cashback_amount"`
	Timestamp          time.Time       `json:"timestamp"`
}
