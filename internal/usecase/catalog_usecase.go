package usecase

import (
	"context"

	"homely/internal/domain/entity"
)

// CatalogUsecase exposes the bookable service catalog.
type CatalogUsecase interface {
	// CreateServiceListing adds a new entry to the catalog.
	CreateServiceListing(ctx context.Context, listing *entity.ServiceListing) error

	// ListServiceListings returns catalog entries, optionally filtered by category.
	ListServiceListings(ctx context.Context, category string) ([]*entity.ServiceListing, error)
}
