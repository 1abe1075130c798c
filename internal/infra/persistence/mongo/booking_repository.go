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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &bookingRepository{
		coll: db.Collection(collBookings),
	}
}

// CreateBooking persists a new booking and assigns the generated identifier
// back onto the entity.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	bookingM, err := model.BookingModelFromDomain(booking)
	if err != nil {
		return errors.Wrap(err, "invalid booking ID")
	}

	result, err := repo.coll.InsertOne(ctx, bookingM)
	if err != nil {
		return errors.Wrap(err, "failed to insert booking")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}

	return nil
}

// FindBookingsByUser retrieves all bookings owned by the given user.
func (repo *bookingRepository) FindBookingsByUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user")
	}
	defer cursor.Close(ctx)

	var models []*model.BookingModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode bookings")
	}

	bookings := make([]*entity.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, m.ToDomain())
	}

	return bookings, nil
}

// FindUserBookingByID retrieves a booking scoped to its owner.
func (repo *bookingRepository) FindUserBookingByID(ctx context.Context, userID, id string) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier can never match a stored booking.
		return nil, repository.ErrBookingNotFound
	}

	var bookingM model.BookingModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&bookingM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return bookingM.ToDomain(), nil
}

// UpdateUserBooking applies a partial update scoped to id AND userID in a
// single findOneAndUpdate, returning the post-update document. The version
// counter is incremented atomically with the field changes.
func (repo *bookingRepository) UpdateUserBooking(ctx context.Context, userID, id string, patch *repository.BookingPatch) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrBookingNotFound
	}

	set := bson.M{}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.DateTime != nil {
		set["dateTime"] = *patch.DateTime
	}

	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var bookingM model.BookingModel
	if err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "userId": userID}, update, opts).Decode(&bookingM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to update booking")
	}

	return bookingM.ToDomain(), nil
}

// FindBookingByID retrieves a booking without ownership scoping. The
// change-feed watcher uses this to hydrate update events into full records.
func (repo *bookingRepository) FindBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrBookingNotFound
	}

	var bookingM model.BookingModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&bookingM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return bookingM.ToDomain(), nil
}
