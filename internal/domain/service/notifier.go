package service

import (
	"context"
	"fmt"

	"homely/internal/domain/entity"
)

// BookingNotification is the payload shape of the push transports (Web Push,
// FCM): a display title and body plus the full booking record. The live
// socket does not use this wrapper; it sends the booking record directly.
type BookingNotification struct {
	Title string          `json:"title"`
	Body  string          `json:"body"`
	Data  *entity.Booking `json:"data"`
}

// NewBookingUpdateNotification builds the notification payload for an updated
// booking record.
func NewBookingUpdateNotification(booking *entity.Booking) *BookingNotification {
	return &BookingNotification{
		Title: "Booking Update",
		Body:  fmt.Sprintf("Booking status changed to %s", booking.Status),
		Data:  booking,
	}
}

// Notifier is a single delivery transport for booking updates. The dispatcher
// iterates over every registered Notifier without knowing which transports are
// active; implementations must isolate per-recipient failures internally and
// only return an error when the whole transport is unavailable.
type Notifier interface {
	// Name identifies the transport in logs.
	Name() string

	// NotifyBookingUpdate delivers one hydrated booking record to this
	// transport's recipients.
	NotifyBookingUpdate(ctx context.Context, booking *entity.Booking) error
}
