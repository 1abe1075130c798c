// Package watcher turns the booking store's change feed into dispatched
// notifications.
package watcher

import (
	"context"
	"log/slog"

	"homely/internal/delivery"
	"homely/internal/domain/repository"
	"homely/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WatcherParams holds dependencies for the booking watcher, injected by Fx.
type WatcherParams struct {
	fx.In

	Feed        repository.BookingChangeFeed
	BookingRepo repository.BookingRepository
	Dispatcher  usecase.NotificationDispatcher
	Logger      *slog.Logger
}

// bookingWatcher consumes the booking change feed, re-reads each updated
// record, and hands it to the dispatcher exactly once per observed event.
type bookingWatcher struct {
	feed        repository.BookingChangeFeed
	bookingRepo repository.BookingRepository
	dispatcher  usecase.NotificationDispatcher
	logger      *slog.Logger
}

// New creates the booking watcher delivery.
func New(params WatcherParams) delivery.Delivery {
	return &bookingWatcher{
		feed:        params.Feed,
		bookingRepo: params.BookingRepo,
		dispatcher:  params.Dispatcher,
		logger:      params.Logger,
	}
}

// Serve consumes the change feed until the context is canceled or the feed
// fails. A feed failure is returned to the caller so the process exits
// loudly instead of running without live notifications.
func (w *bookingWatcher) Serve(ctx context.Context) error {
	changes, err := w.feed.Updates(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to open booking change feed")
	}

	w.logger.Info("Booking watcher started")

	for change := range changes {
		w.handleChange(ctx, change)
	}

	if err := w.feed.Err(); err != nil {
		return errors.Wrap(err, "booking change feed failed")
	}

	w.logger.Info("Booking watcher stopped")

	return nil
}

// handleChange hydrates one change event into a full booking record and
// dispatches it. Change events may carry partial documents only, so the
// record is always re-read by its identifier.
func (w *bookingWatcher) handleChange(ctx context.Context, change repository.BookingChange) {
	booking, err := w.bookingRepo.FindBookingByID(ctx, change.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			// The record vanished between the event and the re-read;
			// nothing to notify about.
			w.logger.Warn("Updated booking not found",
				slog.String("bookingID", change.BookingID))

			return
		}

		w.logger.Error("Failed to load updated booking",
			slog.String("bookingID", change.BookingID),
			slog.Any("error", err))

		return
	}

	w.dispatcher.DispatchBookingUpdate(ctx, booking)
}
