package service

import (
	"context"
)

// BookingEvent represents a booking update to be processed asynchronously,
// e.g. by an out-of-process fan-out worker.
type BookingEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	BookingID   string `json:"booking_id"`
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
	ServiceName string `json:"service_name"`
	Version     int64  `json:"version"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingEvent publishes a booking update event for async processing
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
