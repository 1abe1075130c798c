// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"homely/internal/domain/entity"
	"homely/internal/errors"
)

// Domain-specific errors for booking persistence.
var (
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
)

// BookingPatch carries the mutable booking fields of a partial update.
// Nil fields are left untouched.
type BookingPatch struct {
	Status   *entity.BookingStatus
	Name     *string
	Email    *string
	DateTime *time.Time
}

// Empty reports whether the patch changes nothing.
func (p *BookingPatch) Empty() bool {
	return p.Status == nil && p.Name == nil && p.Email == nil && p.DateTime == nil
}

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	// CreateBooking persists a new booking and assigns its identifier.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// FindBookingsByUser retrieves all bookings owned by the given user.
	FindBookingsByUser(ctx context.Context, userID string) ([]*entity.Booking, error)

	// FindUserBookingByID retrieves a booking scoped to its owner.
	// Returns ErrBookingNotFound when no booking matches both id and userID.
	FindUserBookingByID(ctx context.Context, userID, id string) (*entity.Booking, error)

	// UpdateUserBooking applies a partial update scoped to id AND userID and
	// returns the post-update document, with the version counter incremented.
	// Returns ErrBookingNotFound when no booking matches both id and userID.
	UpdateUserBooking(ctx context.Context, userID, id string, patch *BookingPatch) (*entity.Booking, error)

	// FindBookingByID retrieves a booking by identifier without ownership
	// scoping. Used by the change-feed watcher to hydrate update events.
	FindBookingByID(ctx context.Context, id string) (*entity.Booking, error)
}

// BookingChange is a single mutation event observed on the booking store.
// Change events may carry only a partial document, so consumers must always
// re-read the full record by its identifier.
type BookingChange struct {
	BookingID     string
	OperationType string
}

// BookingChangeFeed exposes the store's native mutation stream for bookings.
type BookingChangeFeed interface {
	// Updates opens the feed and returns a channel of update events. The
	// channel is closed when the feed terminates, either because the context
	// was canceled or because the underlying stream failed; Err distinguishes
	// the two.
	Updates(ctx context.Context) (<-chan BookingChange, error)

	// Err returns the reason the feed terminated, or nil after a clean stop.
	Err() error
}
