package usecase

import (
	"context"

	"homely/internal/domain/entity"
)

// SubscriptionUsecase manages Web Push subscription registrations.
type SubscriptionUsecase interface {
	// RegisterSubscription validates and stores a browser push subscription.
	RegisterSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// VAPIDPublicKey returns the server's VAPID public key for client-side
	// subscription setup.
	VAPIDPublicKey() string
}
