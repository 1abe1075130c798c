// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"homely/internal/domain/entity"
)

// ServiceListingRepository defines catalog storage for bookable services.
type ServiceListingRepository interface {
	// CreateServiceListing persists a new catalog entry and assigns its identifier.
	CreateServiceListing(ctx context.Context, listing *entity.ServiceListing) error

	// FindServiceListings retrieves catalog entries, optionally filtered by
	// category (empty category returns everything).
	FindServiceListings(ctx context.Context, category string) ([]*entity.ServiceListing, error)
}
