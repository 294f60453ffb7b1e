package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/workme/backend/internal/pkg/constants"
	"github.com/workme/backend/internal/pkg/models"
)

// PublishBookingCreated publishes a booking.created event
func (g *PaymentGW) PublishBookingCreated(ctx context.Context, booking *models.ServiceBooking) error {
	return g.publishBookingEvent(constants.SubjectBookingCreated, booking)
}

// PublishBookingCompleted publishes a booking.completed event
func (g *PaymentGW) PublishBookingCompleted(ctx context.Context, booking *models.ServiceBooking) error {
	return g.publishBookingEvent(constants.SubjectBookingCompleted, booking)
}

// PublishBookingCancelled publishes a booking.cancelled event
func (g *PaymentGW) PublishBookingCancelled(ctx context.Context, booking *models.ServiceBooking) error {
	return g.publishBookingEvent(constants.SubjectBookingCancelled, booking)
}

// PublishPaymentReleased publishes a payment.released event
func (g *PaymentGW) PublishPaymentReleased(ctx context.Context, event *models.PaymentReleasedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment released event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectPaymentReleased, data)
}

// PublishDepositConfirmed publishes a wallet.deposit.confirmed event
func (g *PaymentGW) PublishDepositConfirmed(ctx context.Context, event *models.DepositConfirmedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal deposit confirmed event: %w", err)
	}
	return g.natsClient.Publish(constants.SubjectDepositConfirmed, data)
}

func (g *PaymentGW) publishBookingEvent(subject string, booking *models.ServiceBooking) error {
	event := models.BookingEvent{
		BookingID:       booking.ID,
		ClientID:        booking.ClientID,
		ProfessionalID:  booking.ProfessionalID,
		ServiceCategory: booking.ServiceCategory,
		Amount:          booking.Amount,
		Status:          booking.Status,
		PaymentStatus:   booking.PaymentStatus,
		Timestamp:       time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}
	return g.natsClient.Publish(subject, data)
}
