package mongo

import (
	"context"

	"homely/internal/domain/entity"
	"homely/internal/domain/repository"
	"homely/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// subscriptionRepository implements the repository.PushSubscriptionRepository interface.
type subscriptionRepository struct {
	coll *mongo.Collection
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *mongo.Database) repository.PushSubscriptionRepository {
	return &subscriptionRepository{
		coll: db.Collection(collPushSubscriptions),
	}
}

// Register inserts a subscription row. Endpoints are intentionally not
// deduplicated; stale duplicates are pruned when a push attempt reports the
// endpoint gone.
func (repo *subscriptionRepository) Register(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := model.PushSubscriptionModelFromDomain(subscription)

	if _, err := repo.coll.InsertOne(ctx, subscriptionM); err != nil {
		return errors.Wrap(err, "failed to insert push subscription")
	}

	return nil
}

// Remove deletes every row matching the exact endpoint. Deleting an endpoint
// that is already gone is not an error.
func (repo *subscriptionRepository) Remove(ctx context.Context, endpoint string) error {
	if _, err := repo.coll.DeleteMany(ctx, bson.M{"endpoint": endpoint}); err != nil {
		return errors.Wrap(err, "failed to delete push subscription")
	}

	return nil
}

// ListAll returns every subscription row.
func (repo *subscriptionRepository) ListAll(ctx context.Context) ([]*entity.PushSubscription, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list push subscriptions")
	}
	defer cursor.Close(ctx)

	var models []*model.PushSubscriptionModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode push subscriptions")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(models))
	for _, m := range models {
		subscriptions = append(subscriptions, m.ToDomain())
	}

	return subscriptions, nil
}
