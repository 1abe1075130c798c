package impl

import (
	"context"
	"testing"
	"time"

	"homely/internal/domain/entity"
	domainerrors "homely/internal/domain/errors"
	"homely/internal/domain/repository"
	mockRepo "homely/internal/mocks/repository"
	"homely/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_CreateBooking_Defaults(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	ctx := context.Background()

	mockBookingRepo.EXPECT().
		CreateBooking(ctx, mock.AnythingOfType("*entity.Booking")).
		Return(nil)

	booking, err := service.CreateBooking(ctx, "user-1", &usecase.CreateBookingInput{
		ServiceName: "Deep Cleaning",
		Cost:        120,
		DateTime:    time.Now().Add(48 * time.Hour),
		Name:        "Ada",
		Email:       "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, int64(1), booking.Version)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingService_CreateBooking_RepoError(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	ctx := context.Background()

	mockBookingRepo.EXPECT().
		CreateBooking(ctx, mock.AnythingOfType("*entity.Booking")).
		Return(errors.New("insert failed"))

	booking, err := service.CreateBooking(ctx, "user-1", &usecase.CreateBookingInput{
		ServiceName: "Deep Cleaning",
		DateTime:    time.Now(),
		Name:        "Ada",
		Email:       "ada@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, booking)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestBookingService_GetUserBooking_NotFound(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	ctx := context.Background()

	mockBookingRepo.EXPECT().
		FindUserBookingByID(ctx, "user-1", "missing").
		Return(nil, repository.ErrBookingNotFound)

	booking, err := service.GetUserBooking(ctx, "user-1", "missing")
	require.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	assert.Nil(t, booking)
}

func TestBookingService_UpdateUserBooking_EmptyPatch(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	_, err := service.UpdateUserBooking(context.Background(), "user-1", "b1", &repository.BookingPatch{})
	require.ErrorIs(t, err, domainerrors.ErrNoUpdateData)

	_, err = service.UpdateUserBooking(context.Background(), "user-1", "b1", nil)
	require.ErrorIs(t, err, domainerrors.ErrNoUpdateData)
}

func TestBookingService_UpdateUserBooking_OnlyCancellationAllowed(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	status := entity.BookingStatusConfirmed
	_, err := service.UpdateUserBooking(context.Background(), "user-1", "b1", &repository.BookingPatch{
		Status: &status,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestBookingService_UpdateUserBooking_CancelTwiceIsIdempotent(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	ctx := context.Background()
	status := entity.BookingStatusCancelled
	patch := &repository.BookingPatch{Status: &status}

	mockBookingRepo.EXPECT().
		FindUserBookingByID(ctx, "user-1", "b1").
		Return(&entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusCancelled, Version: 2}, nil)

	mockBookingRepo.EXPECT().
		UpdateUserBooking(ctx, "user-1", "b1", patch).
		Return(&entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusCancelled, Version: 3}, nil)

	// Re-cancelling an already cancelled booking is the one allowed
	// transition out of the terminal state.
	booking, err := service.UpdateUserBooking(ctx, "user-1", "b1", patch)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestBookingService_UpdateUserBooking_Cancel(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	ctx := context.Background()
	status := entity.BookingStatusCancelled
	patch := &repository.BookingPatch{Status: &status}

	mockBookingRepo.EXPECT().
		FindUserBookingByID(ctx, "user-1", "b1").
		Return(&entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusPending, Version: 1}, nil)

	mockBookingRepo.EXPECT().
		UpdateUserBooking(ctx, "user-1", "b1", patch).
		Return(&entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusCancelled, Version: 2}, nil)

	booking, err := service.UpdateUserBooking(ctx, "user-1", "b1", patch)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
	assert.Equal(t, int64(2), booking.Version)
}

func TestBookingService_UpdateUserBooking_ContactFieldsOnly(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	ctx := context.Background()
	name := "Grace"
	patch := &repository.BookingPatch{Name: &name}

	// No status change means no pre-read; the scoped update is atomic.
	mockBookingRepo.EXPECT().
		UpdateUserBooking(ctx, "user-1", "b1", patch).
		Return(&entity.Booking{ID: "b1", UserID: "user-1", Name: name, Status: entity.BookingStatusPending, Version: 2}, nil)

	booking, err := service.UpdateUserBooking(ctx, "user-1", "b1", patch)
	require.NoError(t, err)
	assert.Equal(t, "Grace", booking.Name)
}

func TestBookingService_UpdateUserBooking_NotOwned(t *testing.T) {
	mockBookingRepo := mockRepo.NewMockBookingRepository(t)
	service := NewBookingService(mockBookingRepo)

	ctx := context.Background()
	name := "Grace"
	patch := &repository.BookingPatch{Name: &name}

	mockBookingRepo.EXPECT().
		UpdateUserBooking(ctx, "intruder", "b1", patch).
		Return(nil, repository.ErrBookingNotFound)

	_, err := service.UpdateUserBooking(ctx, "intruder", "b1", patch)
	// Ownership mismatch is indistinguishable from a missing booking.
	require.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}
