package notification

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"homely/config"
	"homely/internal/domain/entity"
	mockRepo "homely/internal/mocks/repository"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

func subscriptionRow(endpoint string) *entity.PushSubscription {
	return &entity.PushSubscription{
		Endpoint: endpoint,
		Keys: entity.SubscriptionKeys{
			P256dh: "p256dh-key",
			Auth:   "auth-secret",
		},
	}
}

func newTestWebPushService(t *testing.T, send sendFunc) (*mockRepo.MockPushSubscriptionRepository, *webPushService) {
	mockSubRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	svc := &webPushService{
		subscriptionRepo: mockSubRepo,
		cfg: &config.WebPushConfig{
			Subject:    "mailto:ops@example.com",
			PublicKey:  "vapid-public",
			PrivateKey: "vapid-private",
			TTL:        60,
		},
		logger: slog.Default(),
		send:   send,
	}

	return mockSubRepo, svc
}

func TestWebPushService_NotifyBookingUpdate_FanOut(t *testing.T) {
	var sent []string
	mockSubRepo, svc := newTestWebPushService(t, func(_ context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
		sent = append(sent, s.Endpoint)
		assert.Equal(t, "mailto:ops@example.com", options.Subscriber)
		assert.Contains(t, string(message), "Booking Update")

		return pushResponse(http.StatusCreated), nil
	})

	mockSubRepo.EXPECT().ListAll(context.Background()).Return([]*entity.PushSubscription{
		subscriptionRow("https://push.example.com/a"),
		subscriptionRow("https://push.example.com/b"),
	}, nil)

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed}
	require.NoError(t, svc.NotifyBookingUpdate(context.Background(), booking))
	assert.Equal(t, []string{"https://push.example.com/a", "https://push.example.com/b"}, sent)
}

func TestWebPushService_NotifyBookingUpdate_PrunesGoneEndpoints(t *testing.T) {
	ctx := context.Background()

	mockSubRepo, svc := newTestWebPushService(t, func(_ context.Context, _ []byte, s *webpush.Subscription, _ *webpush.Options) (*http.Response, error) {
		if s.Endpoint == "https://push.example.com/gone" {
			return pushResponse(http.StatusGone), nil
		}

		return pushResponse(http.StatusCreated), nil
	})

	mockSubRepo.EXPECT().ListAll(ctx).Return([]*entity.PushSubscription{
		subscriptionRow("https://push.example.com/a"),
		subscriptionRow("https://push.example.com/gone"),
		subscriptionRow("https://push.example.com/b"),
	}, nil)

	// Only the endpoint reported gone is removed.
	mockSubRepo.EXPECT().Remove(ctx, "https://push.example.com/gone").Return(nil).Once()

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusCancelled}
	require.NoError(t, svc.NotifyBookingUpdate(ctx, booking))
}

func TestWebPushService_NotifyBookingUpdate_TransientFailureKeepsRow(t *testing.T) {
	ctx := context.Background()

	var attempts int
	mockSubRepo, svc := newTestWebPushService(t, func(_ context.Context, _ []byte, s *webpush.Subscription, _ *webpush.Options) (*http.Response, error) {
		attempts++
		switch s.Endpoint {
		case "https://push.example.com/flaky":
			return nil, errors.New("connection reset")
		case "https://push.example.com/overloaded":
			return pushResponse(http.StatusInternalServerError), nil
		default:
			return pushResponse(http.StatusCreated), nil
		}
	})

	// Neither a transport error nor a 5xx removes the subscription, and the
	// remaining endpoints are still attempted.
	mockSubRepo.EXPECT().ListAll(ctx).Return([]*entity.PushSubscription{
		subscriptionRow("https://push.example.com/flaky"),
		subscriptionRow("https://push.example.com/overloaded"),
		subscriptionRow("https://push.example.com/a"),
	}, nil)

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed}
	require.NoError(t, svc.NotifyBookingUpdate(ctx, booking))
	assert.Equal(t, 3, attempts)
}

func TestWebPushService_NotifyBookingUpdate_NoSubscriptions(t *testing.T) {
	mockSubRepo, svc := newTestWebPushService(t, func(context.Context, []byte, *webpush.Subscription, *webpush.Options) (*http.Response, error) {
		t.Fatal("send must not be called without subscriptions")

		return nil, nil
	})

	mockSubRepo.EXPECT().ListAll(context.Background()).Return(nil, nil)

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed}
	require.NoError(t, svc.NotifyBookingUpdate(context.Background(), booking))
}

func TestWebPushService_NotifyBookingUpdate_ListFailure(t *testing.T) {
	mockSubRepo, svc := newTestWebPushService(t, func(context.Context, []byte, *webpush.Subscription, *webpush.Options) (*http.Response, error) {
		return pushResponse(http.StatusCreated), nil
	})

	mockSubRepo.EXPECT().ListAll(context.Background()).Return(nil, errors.New("find failed"))

	booking := &entity.Booking{ID: "b1", UserID: "user-1", Status: entity.BookingStatusConfirmed}
	err := svc.NotifyBookingUpdate(context.Background(), booking)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list push subscriptions")
}
