// Package notification contains the push delivery transports for booking updates.
package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"homely/config"
	"homely/internal/domain/entity"
	"homely/internal/domain/repository"
	"homely/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const webPushNotifierName = "webpush"

// sendFunc matches webpush.SendNotificationWithContext; injectable for tests.
type sendFunc func(ctx context.Context, message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error)

// webPushService delivers booking updates to every registered Web Push
// endpoint. Per-endpoint failures are isolated: a dead endpoint is pruned,
// a transient failure is logged, and the remaining endpoints are always
// attempted.
type webPushService struct {
	subscriptionRepo repository.PushSubscriptionRepository
	cfg              *config.WebPushConfig
	logger           *slog.Logger
	send             sendFunc
}

// NewWebPushService creates a new Web Push notifier instance
func NewWebPushService(
	subscriptionRepo repository.PushSubscriptionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) service.Notifier {
	return &webPushService{
		subscriptionRepo: subscriptionRepo,
		cfg:              cfg.WebPush,
		logger:           logger,
		send:             webpush.SendNotificationWithContext,
	}
}

// Name identifies the transport in logs.
func (s *webPushService) Name() string {
	return webPushNotifierName
}

// NotifyBookingUpdate pushes the booking update payload to every registered
// subscription. The returned error covers transport-level failures only
// (listing subscriptions, encoding the payload); individual endpoint failures
// never abort the fan-out.
func (s *webPushService) NotifyBookingUpdate(ctx context.Context, booking *entity.Booking) error {
	subscriptions, err := s.subscriptionRepo.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list push subscriptions")
	}

	if len(subscriptions) == 0 {
		return nil
	}

	payload, err := json.Marshal(service.NewBookingUpdateNotification(booking))
	if err != nil {
		return errors.Wrap(err, "failed to encode push payload")
	}

	for _, subscription := range subscriptions {
		s.pushToEndpoint(ctx, payload, subscription)
	}

	return nil
}

// pushToEndpoint sends one payload to one endpoint and handles its failure
// modes: a 404 or 410 response prunes the subscription, anything else is
// logged and the row kept for the next attempt.
func (s *webPushService) pushToEndpoint(ctx context.Context, payload []byte, subscription *entity.PushSubscription) {
	sendCtx := ctx
	if s.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.cfg.SendTimeout)
		defer cancel()
	}

	resp, err := s.send(sendCtx, payload, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.Keys.P256dh,
			Auth:   subscription.Keys.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.cfg.Subject,
		VAPIDPublicKey:  s.cfg.PublicKey,
		VAPIDPrivateKey: s.cfg.PrivateKey,
		TTL:             s.cfg.TTL,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to send web push",
			slog.String("endpoint", subscription.Endpoint),
			slog.Any("error", err))

		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		// The push service says this endpoint no longer exists; prune it so
		// future fan-outs skip it.
		if err := s.subscriptionRepo.Remove(ctx, subscription.Endpoint); err != nil {
			s.logger.ErrorContext(ctx, "Failed to prune gone subscription",
				slog.String("endpoint", subscription.Endpoint),
				slog.Any("error", err))
		} else {
			s.logger.InfoContext(ctx, "Pruned gone push subscription",
				slog.String("endpoint", subscription.Endpoint))
		}
	default:
		if resp.StatusCode >= http.StatusBadRequest {
			s.logger.WarnContext(ctx, "Web push rejected",
				slog.String("endpoint", subscription.Endpoint),
				slog.Int("status", resp.StatusCode))
		}
	}
}
