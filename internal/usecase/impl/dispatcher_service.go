package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "homely/internal/delivery/context"
	"homely/internal/domain/entity"
	"homely/internal/domain/service"
	"homely/internal/usecase"
)

// maxTrackedVersions caps the stale-drop bookkeeping. When the map is full it
// is reset instead of evicting individual entries: delivery is at-least-once,
// so the worst case after a reset is one duplicate, never a lost update.
const maxTrackedVersions = 4096

type dispatcherService struct {
	notifiers []service.Notifier
	publisher service.EventPublisher

	mu       sync.Mutex
	lastSeen map[string]int64 // booking ID -> highest dispatched version
}

// NewNotificationDispatcher creates the fan-out dispatcher. The publisher is
// optional; when nil, updates are delivered to the in-process notifiers only.
func NewNotificationDispatcher(
	notifiers []service.Notifier,
	publisher service.EventPublisher,
) usecase.NotificationDispatcher {
	return &dispatcherService{
		notifiers: notifiers,
		publisher: publisher,
		lastSeen:  make(map[string]int64),
	}
}

// DispatchBookingUpdate fans one hydrated booking record out to every
// registered transport. Each transport is attempted independently: a failure
// is logged against that transport and never suppresses the remaining ones.
func (s *dispatcherService) DispatchBookingUpdate(ctx context.Context, booking *entity.Booking) {
	if booking == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default())

	if s.isStale(booking) {
		logger.DebugContext(ctx, "Dropping stale booking update",
			slog.String("bookingID", booking.ID),
			slog.Int64("version", booking.Version),
		)
		return
	}

	for _, notifier := range s.notifiers {
		if notifier == nil {
			continue
		}

		if err := notifier.NotifyBookingUpdate(ctx, booking); err != nil {
			logger.ErrorContext(ctx, "Failed to deliver booking update",
				slog.String("notifier", notifier.Name()),
				slog.String("bookingID", booking.ID),
				slog.Any("error", err),
			)
		}
	}

	if s.publisher != nil {
		event := &service.BookingEvent{
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			Status:      string(booking.Status),
			ServiceName: booking.ServiceName,
			Version:     booking.Version,
		}
		if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish booking event",
				slog.String("bookingID", booking.ID),
				slog.Any("error", err),
			)
		}
	}
}

// isStale records the booking version and reports whether a newer version of
// the same booking has already been dispatched. Out-of-order updates from the
// change feed are dropped rather than delivered backwards.
func (s *dispatcherService) isStale(booking *entity.Booking) bool {
	if booking.Version == 0 {
		// Records written before versioning never carry a version; always deliver.
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	last, tracked := s.lastSeen[booking.ID]
	if tracked && booking.Version <= last {
		return true
	}

	if !tracked && len(s.lastSeen) >= maxTrackedVersions {
		s.lastSeen = make(map[string]int64)
	}

	s.lastSeen[booking.ID] = booking.Version

	return false
}
