// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"time"

	"homely/internal/domain/entity"
	domainerrors "homely/internal/domain/errors"
	"homely/internal/domain/repository"
	"homely/internal/usecase"

	"github.com/pkg/errors"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
}

// NewBookingService creates a new booking service instance
func NewBookingService(bookingRepo repository.BookingRepository) usecase.BookingUsecase {
	return &bookingService{bookingRepo: bookingRepo}
}

// CreateBooking persists a new booking owned by userID.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	booking := &entity.Booking{
		ServiceName: input.ServiceName,
		Cost:        input.Cost,
		DateTime:    input.DateTime,
		Name:        input.Name,
		Email:       input.Email,
		Status:      entity.BookingStatusPending,
		UserID:      userID,
		Version:     1,
		CreatedAt:   time.Now(),
	}

	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	return booking, nil
}

// ListUserBookings returns every booking owned by userID.
func (s *bookingService) ListUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.FindBookingsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list bookings")
	}

	return bookings, nil
}

// GetUserBooking returns a single booking scoped to its owner.
func (s *bookingService) GetUserBooking(ctx context.Context, userID string, bookingID string) (*entity.Booking, error) {
	booking, err := s.bookingRepo.FindUserBookingByID(ctx, userID, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find booking")
	}

	return booking, nil
}

// UpdateUserBooking applies a partial update to a booking owned by userID.
// Users may only move a booking to the cancelled state; other status values
// are reserved for the provider side.
func (s *bookingService) UpdateUserBooking(ctx context.Context, userID string, bookingID string, patch *repository.BookingPatch) (*entity.Booking, error) {
	if patch == nil || patch.Empty() {
		return nil, domainerrors.ErrNoUpdateData
	}

	if patch.Status != nil {
		if *patch.Status != entity.BookingStatusCancelled {
			return nil, domainerrors.ErrInvalidStatusTransition
		}

		current, err := s.bookingRepo.FindUserBookingByID(ctx, userID, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return nil, domainerrors.ErrBookingNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find booking")
		}

		if !current.Status.CanTransitionTo(*patch.Status) {
			return nil, domainerrors.ErrInvalidStatusTransition
		}
	}

	updated, err := s.bookingRepo.UpdateUserBooking(ctx, userID, bookingID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update booking")
	}

	return updated, nil
}
