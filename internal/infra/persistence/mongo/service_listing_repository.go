package mongo

import (
	"context"

	"homely/internal/domain/entity"
	"homely/internal/domain/repository"
	"homely/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// serviceListingRepository implements the repository.ServiceListingRepository interface.
type serviceListingRepository struct {
	coll *mongo.Collection
}

// NewServiceListingRepository is the constructor for serviceListingRepository.
func NewServiceListingRepository(db *mongo.Database) repository.ServiceListingRepository {
	return &serviceListingRepository{
		coll: db.Collection(collServiceListings),
	}
}

// CreateServiceListing persists a new catalog entry.
func (repo *serviceListingRepository) CreateServiceListing(ctx context.Context, listing *entity.ServiceListing) error {
	listingM := model.ServiceListingModelFromDomain(listing)

	result, err := repo.coll.InsertOne(ctx, listingM)
	if err != nil {
		return errors.Wrap(err, "failed to insert service listing")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid.Hex()
	}

	return nil
}

// FindServiceListings retrieves catalog entries, optionally filtered by category.
func (repo *serviceListingRepository) FindServiceListings(ctx context.Context, category string) ([]*entity.ServiceListing, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service listings")
	}
	defer cursor.Close(ctx)

	var models []*model.ServiceListingModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode service listings")
	}

	listings := make([]*entity.ServiceListing, 0, len(models))
	for _, m := range models {
		listings = append(listings, m.ToDomain())
	}

	return listings, nil
}
