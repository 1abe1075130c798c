package impl

import (
	"context"

	"homely/internal/domain/entity"
	domainerrors "homely/internal/domain/errors"
	"homely/internal/domain/repository"
	"homely/internal/usecase"
)

type catalogService struct {
	listingRepo repository.ServiceListingRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(listingRepo repository.ServiceListingRepository) usecase.CatalogUsecase {
	return &catalogService{listingRepo: listingRepo}
}

func (s *catalogService) CreateServiceListing(ctx context.Context, listing *entity.ServiceListing) error {
	if err := s.listingRepo.CreateServiceListing(ctx, listing); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service listing")
	}

	return nil
}

func (s *catalogService) ListServiceListings(ctx context.Context, category string) ([]*entity.ServiceListing, error) {
	listings, err := s.listingRepo.FindServiceListings(ctx, category)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list service listings")
	}

	return listings, nil
}
