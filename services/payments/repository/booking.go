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

// BookingRepo implements the payments.BookingRepo interface on PostgreSQL
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(db *sqlx.DB) payments.BookingRepo {
	return &BookingRepo{db: db}
}

// Create persists a new booking
func (r *BookingRepo) Create(ctx context.Context, booking *models.ServiceBooking) error {
	ex := executor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := sqlx.NamedExecContext(ctx, ex, `
		INSERT INTO bookings (
			id, client_id, professional_id, service_category, description,
			amount, status, payment_status, scheduled_date, created_at, updated_at
		) VALUES (
			:id, :client_id, :professional_id, :service_category, :description,
			:amount, :status, :payment_status, :scheduled_date, :created_at, :updated_at
		)
	`, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by id
func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceBooking, error) {
	ex := executor(ctx, r.db)

	var booking models.ServiceBooking
	err := sqlx.GetContext(ctx, ex, &booking, `
		SELECT id, client_id, professional_id, service_category, description,
		       amount, status, payment_status, escrow_transaction_id,
		       scheduled_date, completed_date, client_rating, client_review,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ListByUser returns the bookings a user participates in, newest first.
// Clients see their own bookings, professionals the ones booked with them.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, role string, limit int) ([]models.ServiceBooking, error) {
	ex := executor(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	column := "client_id"
	if role == models.RoleProfessional {
		column = "professional_id"
	}

	bookings := []models.ServiceBooking{}
	query := fmt.Sprintf(`
		SELECT id, client_id, professional_id, service_category, description,
		       amount, status, payment_status, escrow_transaction_id,
		       scheduled_date, completed_date, client_rating, client_review,
		       created_at, updated_at
		FROM bookings
		WHERE %s = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, column)

	if err := sqlx.SelectContext(ctx, ex, &bookings, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus sets the lifecycle status without touching payment state
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return checkBookingUpdated(result)
}

// MarkEscrowed records the escrow hold on the booking. The payment-status
// guard makes pending -> escrowed the only path in.
func (r *BookingRepo) MarkEscrowed(ctx context.Context, id uuid.UUID, escrowTransactionID uuid.UUID) error {
	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE bookings
		SET payment_status = $1, escrow_transaction_id = $2, updated_at = NOW()
		WHERE id = $3 AND payment_status = $4
	`, models.PaymentStatusEscrowed, escrowTransactionID, id, models.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark booking escrowed: %w", err)
	}
	return checkBookingUpdated(result)
}

// MarkReleased completes the booking and releases escrow. Only escrowed
// bookings qualify; the escrow_transaction_id stays for audit.
func (r *BookingRepo) MarkReleased(ctx context.Context, id uuid.UUID) error {
	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, payment_status = $2, completed_date = NOW(), updated_at = NOW()
		WHERE id = $3 AND payment_status = $4
	`, models.BookingStatusCompleted, models.PaymentStatusReleased, id, models.PaymentStatusEscrowed)
	if err != nil {
		return fmt.Errorf("failed to mark booking released: %w", err)
	}
	return checkBookingUpdated(result)
}

// MarkRefunded cancels the booking and refunds escrow to the client
func (r *BookingRepo) MarkRefunded(ctx context.Context, id uuid.UUID) error {
	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, payment_status = $2, updated_at = NOW()
		WHERE id = $3 AND payment_status = $4
	`, models.BookingStatusCancelled, models.PaymentStatusRefunded, id, models.PaymentStatusEscrowed)
	if err != nil {
		return fmt.Errorf("failed to mark booking refunded: %w", err)
	}
	return checkBookingUpdated(result)
}

// SetReview stores the client's rating and review on a completed booking
func (r *BookingRepo) SetReview(ctx context.Context, id uuid.UUID, rating int, review string) error {
	ex := executor(ctx, r.db)

	result, err := ex.ExecContext(ctx, `
		UPDATE bookings
		SET client_rating = $1, client_review = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, rating, review, id, models.BookingStatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to set booking review: %w", err)
	}
	return checkBookingUpdated(result)
}

// ProfessionalRatingStats computes the mean client rating and rated-booking
// count over the professional's completed bookings.
func (r *BookingRepo) ProfessionalRatingStats(ctx context.Context, professionalID uuid.UUID) (float64, int, error) {
	ex := executor(ctx, r.db)

	var stats struct {
		Avg   float64 `db:"avg"`
		Count int     `db:"count"`
	}
	err := sqlx.GetContext(ctx, ex, &stats, `
		SELECT COALESCE(AVG(client_rating), 0) AS avg, COUNT(client_rating) AS count
		FROM bookings
		WHERE professional_id = $1 AND status = $2 AND client_rating IS NOT NULL
	`, professionalID, models.BookingStatusCompleted)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute rating stats: %w", err)
	}
	return stats.Avg, stats.Count, nil
}

func checkBookingUpdated(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read booking update result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindInvalidState, "booking is not in a state that permits this operation")
	}
	return nil
}
