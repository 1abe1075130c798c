// Package model defines the persistence representations of the domain entities.
package model

import (
	"time"

	"homely/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingModel is the MongoDB document shape for a booking.
type BookingModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ServiceName string             `bson:"serviceName"`
	Cost        float64            `bson:"cost"`
	DateTime    time.Time          `bson:"dateTime"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Status      string             `bson:"status"`
	UserID      string             `bson:"userId"`
	Version     int64              `bson:"version,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
}

// ToDomain converts the document to a domain entity.
func (m *BookingModel) ToDomain() *entity.Booking {
	return &entity.Booking{
		ID:          m.ID.Hex(),
		ServiceName: m.ServiceName,
		Cost:        m.Cost,
		DateTime:    m.DateTime,
		Name:        m.Name,
		Email:       m.Email,
		Status:      entity.BookingStatus(m.Status),
		UserID:      m.UserID,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
	}
}

// BookingModelFromDomain converts a domain entity to its document shape.
// A blank entity ID maps to the zero ObjectID so inserts get a generated one.
func BookingModelFromDomain(booking *entity.Booking) (*BookingModel, error) {
	m := &BookingModel{
		ServiceName: booking.ServiceName,
		Cost:        booking.Cost,
		DateTime:    booking.DateTime,
		Name:        booking.Name,
		Email:       booking.Email,
		Status:      string(booking.Status),
		UserID:      booking.UserID,
		Version:     booking.Version,
		CreatedAt:   booking.CreatedAt,
	}

	if booking.ID != "" {
		oid, err := primitive.ObjectIDFromHex(booking.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}
