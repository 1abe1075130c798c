package mongo

import (
	"context"
	"sync"

	"homely/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// changeEvent is the subset of the change stream document the feed needs.
// Update events never carry the full post-image here; consumers re-read the
// record by its identifier.
type changeEvent struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID primitive.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
}

// bookingChangeFeed implements repository.BookingChangeFeed on top of a
// MongoDB change stream. Requires the server to run as a replica set.
type bookingChangeFeed struct {
	coll *mongo.Collection

	mu  sync.Mutex
	err error
}

// NewBookingChangeFeed is the constructor for bookingChangeFeed.
func NewBookingChangeFeed(db *mongo.Database) repository.BookingChangeFeed {
	return &bookingChangeFeed{
		coll: db.Collection(collBookings),
	}
}

// Updates opens the change stream filtered to update operations and pumps its
// events into the returned channel. The channel closes when the stream ends;
// Err reports whether the end was a failure or a clean context stop.
func (feed *bookingChangeFeed) Updates(ctx context.Context) (<-chan repository.BookingChange, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "operationType", Value: "update"}}}},
	}

	stream, err := feed.coll.Watch(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open booking change stream")
	}

	changes := make(chan repository.BookingChange)

	go func() {
		defer close(changes)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event changeEvent
			if err := stream.Decode(&event); err != nil {
				feed.setErr(errors.Wrap(err, "failed to decode change event"))

				return
			}

			select {
			case changes <- repository.BookingChange{
				BookingID:     event.DocumentKey.ID.Hex(),
				OperationType: event.OperationType,
			}:
			case <-ctx.Done():
				return
			}
		}

		// Next returns false on context cancellation as well as stream
		// failure; only the latter is an error.
		if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
			feed.setErr(errors.Wrap(err, "booking change stream terminated"))
		}
	}()

	return changes, nil
}

// Err returns the reason the feed terminated, or nil after a clean stop.
func (feed *bookingChangeFeed) Err() error {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	return feed.err
}

func (feed *bookingChangeFeed) setErr(err error) {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	feed.err = err
}
