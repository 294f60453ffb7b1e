package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
)

func TestReviewBooking_UpdatesAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)
	passThroughTx(m.txm)

	clientID := uuid.New()
	professionalID := uuid.New()
	booking := &models.ServiceBooking{
		ID:             uuid.New(),
		ClientID:       clientID,
		ProfessionalID: professionalID,
		Status:         models.BookingStatusCompleted,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)
	m.bookings.EXPECT().SetReview(gomock.Any(), booking.ID, 4, "pontual e caprichoso").Return(nil)
	m.bookings.EXPECT().ProfessionalRatingStats(gomock.Any(), professionalID).Return(4.333333, 3, nil)
	// The stored aggregate is rounded to one decimal place
	m.profiles.EXPECT().UpdateProfessionalRating(gomock.Any(), professionalID, 4.3, 3).Return(nil)

	err := uc.ReviewBooking(context.Background(), booking.ID, clientID, 4, "pontual e caprichoso")

	require.NoError(t, err)
}

func TestReviewBooking_RatingOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(ctrl)

	err := uc.ReviewBooking(context.Background(), uuid.New(), uuid.New(), 6, "")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestReviewBooking_OnlyCompletedBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	clientID := uuid.New()
	booking := &models.ServiceBooking{
		ID:       uuid.New(),
		ClientID: clientID,
		Status:   models.BookingStatusInProgress,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)

	err := uc.ReviewBooking(context.Background(), booking.ID, clientID, 5, "")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestReviewBooking_OnlyClientCanReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	booking := &models.ServiceBooking{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: uuid.New(),
		Status:         models.BookingStatusCompleted,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)

	err := uc.ReviewBooking(context.Background(), booking.ID, booking.ProfessionalID, 5, "")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestReviewBooking_AlreadyReviewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(ctrl)

	clientID := uuid.New()
	rating := 5
	booking := &models.ServiceBooking{
		ID:           uuid.New(),
		ClientID:     clientID,
		Status:       models.BookingStatusCompleted,
		ClientRating: &rating,
	}

	m.bookings.EXPECT().GetByID(gomock.Any(), booking.ID).Return(booking, nil)

	err := uc.ReviewBooking(context.Background(), booking.ID, clientID, 4, "")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}
