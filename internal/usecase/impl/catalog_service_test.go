package impl

import (
	"context"
	"testing"

	"homely/internal/domain/entity"
	domainerrors "homely/internal/domain/errors"
	mockRepo "homely/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListServiceListings(t *testing.T) {
	mockListingRepo := mockRepo.NewMockServiceListingRepository(t)
	service := NewCatalogService(mockListingRepo)

	ctx := context.Background()
	listings := []*entity.ServiceListing{
		{ID: "s1", Name: "Deep Cleaning", Category: "cleaning", Price: 120},
		{ID: "s2", Name: "Pipe Repair", Category: "plumbing", Price: 90},
	}

	mockListingRepo.EXPECT().FindServiceListings(ctx, "").Return(listings, nil)

	got, err := service.ListServiceListings(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, listings, got)
}

func TestCatalogService_ListServiceListings_ByCategory(t *testing.T) {
	mockListingRepo := mockRepo.NewMockServiceListingRepository(t)
	service := NewCatalogService(mockListingRepo)

	ctx := context.Background()

	mockListingRepo.EXPECT().FindServiceListings(ctx, "cleaning").Return([]*entity.ServiceListing{
		{ID: "s1", Name: "Deep Cleaning", Category: "cleaning"},
	}, nil)

	got, err := service.ListServiceListings(ctx, "cleaning")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cleaning", got[0].Category)
}

func TestCatalogService_CreateServiceListing_RepoError(t *testing.T) {
	mockListingRepo := mockRepo.NewMockServiceListingRepository(t)
	service := NewCatalogService(mockListingRepo)

	ctx := context.Background()
	listing := &entity.ServiceListing{Name: "Deep Cleaning", Category: "cleaning"}

	mockListingRepo.EXPECT().CreateServiceListing(ctx, listing).Return(errors.New("insert failed"))

	err := service.CreateServiceListing(ctx, listing)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
