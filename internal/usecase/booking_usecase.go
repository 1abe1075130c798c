// Package usecase defines the application's business logic interfaces.
package usecase

import (
	"context"
	"time"

	"homely/internal/domain/entity"
	"homely/internal/domain/repository"
)

// CreateBookingInput carries the fields a user supplies when booking a service.
type CreateBookingInput struct {
	ServiceName string
	Cost        float64
	DateTime    time.Time
	Name        string
	Email       string
}

// BookingUsecase owns the booking lifecycle for authenticated users.
type BookingUsecase interface {
	// CreateBooking persists a new booking owned by userID, starting in the
	// pending state at version 1.
	CreateBooking(ctx context.Context, userID string, input *CreateBookingInput) (*entity.Booking, error)

	// ListUserBookings returns every booking owned by userID.
	ListUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error)

	// GetUserBooking returns a single booking if it exists and belongs to userID.
	GetUserBooking(ctx context.Context, userID string, bookingID string) (*entity.Booking, error)

	// UpdateUserBooking applies a partial update to a booking owned by userID
	// and returns the post-update record.
	UpdateUserBooking(ctx context.Context, userID string, bookingID string, patch *repository.BookingPatch) (*entity.Booking, error)
}
