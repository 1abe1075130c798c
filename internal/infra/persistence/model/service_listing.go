package model

import (
	"homely/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceListingModel is the MongoDB document shape for a catalog entry.
type ServiceListingModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	Duration    string             `bson:"duration"`
	Photo       string             `bson:"photo"`
	Rating      float64            `bson:"rating"`
	Description string             `bson:"description"`
}

// ToDomain converts the document to a domain entity.
func (m *ServiceListingModel) ToDomain() *entity.ServiceListing {
	return &entity.ServiceListing{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		Duration:    m.Duration,
		Photo:       m.Photo,
		Rating:      m.Rating,
		Description: m.Description,
	}
}

// ServiceListingModelFromDomain converts a domain entity to its document shape.
func ServiceListingModelFromDomain(listing *entity.ServiceListing) *ServiceListingModel {
	return &ServiceListingModel{
		Name:        listing.Name,
		Category:    listing.Category,
		Price:       listing.Price,
		Duration:    listing.Duration,
		Photo:       listing.Photo,
		Rating:      listing.Rating,
		Description: listing.Description,
	}
}
