package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
)

// ReviewBooking records the client's rating for a completed booking and
// recomputes the professional's aggregate inside the same transaction, so
// the profile's average always matches the stored reviews.
func (uc *paymentUC) ReviewBooking(ctx context.Context, bookingID, actorID uuid.UUID, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5")
	}

	booking, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.ClientID != actorID {
		return apperrors.New(apperrors.KindForbidden, "only the booking's client can leave a review")
	}
	if booking.Status != models.BookingStatusCompleted {
		return apperrors.New(apperrors.KindInvalidState, "only completed bookings can be reviewed")
	}
	if booking.ClientRating != nil {
		return apperrors.New(apperrors.KindConflict, "booking already reviewed")
	}

	return uc.txm.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.bookings.SetReview(ctx, bookingID, rating, review); err != nil {
			return err
		}

		avg, count, err := uc.bookings.ProfessionalRatingStats(ctx, booking.ProfessionalID)
		if err != nil {
			return err
		}
		rounded := math.Round(avg*10) / 10

		return uc.profiles.UpdateProfessionalRating(ctx, booking.ProfessionalID, rounded, count)
	})
}
