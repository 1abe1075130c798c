package impl

import (
	"context"
	"time"

	"homely/config"
	"homely/internal/domain/entity"
	domainerrors "homely/internal/domain/errors"
	"homely/internal/domain/repository"
	"homely/internal/usecase"
)

type subscriptionService struct {
	subscriptionRepo repository.PushSubscriptionRepository
	webPushCfg       *config.WebPushConfig
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	subscriptionRepo repository.PushSubscriptionRepository,
	cfg *config.Config,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		webPushCfg:       cfg.WebPush,
	}
}

// RegisterSubscription validates and stores a browser push subscription.
// Registrations are append-only; the same endpoint may be stored more than
// once and duplicates are pruned lazily on delivery failure.
func (s *subscriptionService) RegisterSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	if subscription == nil || subscription.Endpoint == "" ||
		subscription.Keys.P256dh == "" || subscription.Keys.Auth == "" {
		return domainerrors.ErrInvalidSubscription
	}

	subscription.CreatedAt = time.Now()

	if err := s.subscriptionRepo.Register(ctx, subscription); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save push subscription")
	}

	return nil
}

// VAPIDPublicKey returns the key clients need to create a push subscription.
func (s *subscriptionService) VAPIDPublicKey() string {
	return s.webPushCfg.PublicKey
}
