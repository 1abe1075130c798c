// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"homely/internal/domain/entity"
)

// PushSubscriptionRepository defines durable storage of Web Push endpoints.
// There is no business logic here beyond insert and conditional delete:
// registrations are not deduplicated, and rows are pruned lazily when a
// delivery attempt reports the endpoint is gone.
type PushSubscriptionRepository interface {
	// Register inserts a subscription row. No uniqueness is enforced;
	// duplicate registrations produce duplicate rows.
	Register(ctx context.Context, subscription *entity.PushSubscription) error

	// Remove deletes rows matching the exact endpoint. Removing an endpoint
	// that is already absent is not an error (last write wins).
	Remove(ctx context.Context, endpoint string) error

	// ListAll returns every subscription row. Full scan; acceptable only
	// because subscriber counts are small.
	ListAll(ctx context.Context) ([]*entity.PushSubscription, error)
}
