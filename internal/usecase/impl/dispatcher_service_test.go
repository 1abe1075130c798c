package impl

import (
	"context"
	"fmt"
	"testing"

	"homely/internal/domain/entity"
	"homely/internal/domain/service"
	mockSvc "homely/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testBooking(id string, version int64) *entity.Booking {
	return &entity.Booking{
		ID:          id,
		ServiceName: "Deep Cleaning",
		Status:      entity.BookingStatusConfirmed,
		UserID:      "user-1",
		Version:     version,
	}
}

func TestDispatcherService_DispatchBookingUpdate_AllNotifiersCalled(t *testing.T) {
	socketNotifier := mockSvc.NewMockNotifier(t)
	pushNotifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{socketNotifier, pushNotifier}, nil)

	ctx := context.Background()
	booking := testBooking("b1", 1)

	socketNotifier.EXPECT().NotifyBookingUpdate(ctx, booking).Return(nil)
	pushNotifier.EXPECT().NotifyBookingUpdate(ctx, booking).Return(nil)

	dispatcher.DispatchBookingUpdate(ctx, booking)
}

func TestDispatcherService_DispatchBookingUpdate_FailureDoesNotSuppressOthers(t *testing.T) {
	failing := mockSvc.NewMockNotifier(t)
	healthy := mockSvc.NewMockNotifier(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{failing, healthy}, nil)

	ctx := context.Background()
	booking := testBooking("b1", 1)

	failing.EXPECT().NotifyBookingUpdate(ctx, booking).Return(errors.New("transport down"))
	failing.EXPECT().Name().Return("socket")
	healthy.EXPECT().NotifyBookingUpdate(ctx, booking).Return(nil)

	dispatcher.DispatchBookingUpdate(ctx, booking)
}

func TestDispatcherService_DispatchBookingUpdate_SkipsNilNotifiers(t *testing.T) {
	healthy := mockSvc.NewMockNotifier(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{nil, healthy}, nil)

	ctx := context.Background()
	booking := testBooking("b1", 1)

	healthy.EXPECT().NotifyBookingUpdate(ctx, booking).Return(nil)

	dispatcher.DispatchBookingUpdate(ctx, booking)
}

func TestDispatcherService_DispatchBookingUpdate_DropsStaleVersions(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{notifier}, nil)

	ctx := context.Background()

	notifier.EXPECT().NotifyBookingUpdate(ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Twice()

	dispatcher.DispatchBookingUpdate(ctx, testBooking("b1", 3))
	// Stale: an older version of the same booking arrives late.
	dispatcher.DispatchBookingUpdate(ctx, testBooking("b1", 2))
	// Same version again is also dropped.
	dispatcher.DispatchBookingUpdate(ctx, testBooking("b1", 3))
	// A newer version goes through.
	dispatcher.DispatchBookingUpdate(ctx, testBooking("b1", 4))
}

func TestDispatcherService_DispatchBookingUpdate_VersionMapBounded(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{notifier}, nil).(*dispatcherService)

	ctx := context.Background()

	// Fill the bookkeeping to its cap with other bookings.
	for i := 0; i < maxTrackedVersions; i++ {
		dispatcher.lastSeen[fmt.Sprintf("old-%d", i)] = 1
	}

	notifier.EXPECT().NotifyBookingUpdate(ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)

	// A new booking still gets delivered; the full map is reset rather than
	// growing past the cap.
	dispatcher.DispatchBookingUpdate(ctx, testBooking("b-new", 1))

	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	require.Len(t, dispatcher.lastSeen, 1)
	require.Equal(t, int64(1), dispatcher.lastSeen["b-new"])
}

func TestDispatcherService_DispatchBookingUpdate_UnversionedAlwaysDelivered(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{notifier}, nil)

	ctx := context.Background()

	notifier.EXPECT().NotifyBookingUpdate(ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Twice()

	dispatcher.DispatchBookingUpdate(ctx, testBooking("legacy", 0))
	dispatcher.DispatchBookingUpdate(ctx, testBooking("legacy", 0))
}

func TestDispatcherService_DispatchBookingUpdate_PublishesEvent(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{notifier}, publisher)

	ctx := context.Background()
	booking := testBooking("b1", 2)

	notifier.EXPECT().NotifyBookingUpdate(ctx, booking).Return(nil)
	publisher.EXPECT().
		PublishBookingEvent(ctx, mock.AnythingOfType("*service.BookingEvent")).
		Run(func(_ context.Context, event *service.BookingEvent) {
			require.Equal(t, "b1", event.BookingID)
			require.Equal(t, "user-1", event.UserID)
			require.Equal(t, string(entity.BookingStatusConfirmed), event.Status)
			require.Equal(t, int64(2), event.Version)
		}).
		Return(nil)

	dispatcher.DispatchBookingUpdate(ctx, booking)
}

func TestDispatcherService_DispatchBookingUpdate_PublisherFailureNonFatal(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{notifier}, publisher)

	ctx := context.Background()
	booking := testBooking("b1", 1)

	notifier.EXPECT().NotifyBookingUpdate(ctx, booking).Return(nil)
	publisher.EXPECT().
		PublishBookingEvent(ctx, mock.AnythingOfType("*service.BookingEvent")).
		Return(errors.New("broker unavailable"))

	dispatcher.DispatchBookingUpdate(ctx, booking)
}

func TestDispatcherService_DispatchBookingUpdate_NilBooking(t *testing.T) {
	notifier := mockSvc.NewMockNotifier(t)
	dispatcher := NewNotificationDispatcher([]service.Notifier{notifier}, nil)

	dispatcher.DispatchBookingUpdate(context.Background(), nil)
}
