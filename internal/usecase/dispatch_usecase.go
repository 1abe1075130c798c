package usecase

import (
	"context"

	"homely/internal/domain/entity"
)

// NotificationDispatcher fans a hydrated booking record out to every
// registered delivery transport. Dispatch never returns an error: transport
// failures are logged and isolated so one broken channel cannot suppress the
// others.
type NotificationDispatcher interface {
	DispatchBookingUpdate(ctx context.Context, booking *entity.Booking)
}
