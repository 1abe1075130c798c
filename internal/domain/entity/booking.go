// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingStatusPending is the initial state of every new booking.
	BookingStatusPending BookingStatus = "Pending"
	// BookingStatusConfirmed marks a booking accepted by the provider.
	BookingStatusConfirmed BookingStatus = "Confirmed"
	// BookingStatusCancelled marks a booking cancelled by its owner.
	// Cancellation is a status value, not a delete; cancelled bookings
	// stay in the store.
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Valid reports whether the status is one of the known values.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}

	return false
}

// CanTransitionTo reports whether a caller-initiated transition to next is
// allowed. Transitions are caller-validated, not store-enforced; the only
// hard rule is that Cancelled is terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == BookingStatusCancelled {
		return next == BookingStatusCancelled
	}

	return true
}

// Booking represents a home-service booking owned by a single user.
type Booking struct {
	ID          string        `json:"id"`          // Store-assigned identifier, immutable after creation.
	ServiceName string        `json:"serviceName"` // Name of the booked service.
	Cost        float64       `json:"cost"`        // Quoted cost at booking time.
	DateTime    time.Time     `json:"dateTime"`    // Scheduled service time.
	Name        string        `json:"name"`        // Contact name supplied by the owner.
	Email       string        `json:"email"`       // Contact email supplied by the owner.
	Status      BookingStatus `json:"status"`      // Current lifecycle state.
	UserID      string        `json:"userId"`      // Owning principal; set at creation, never reassigned.
	Version     int64         `json:"version"`     // Monotonic update counter, incremented on every update.
	CreatedAt   time.Time     `json:"createdAt"`   // Timestamp of creation.
}
