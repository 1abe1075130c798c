package model

import (
	"time"

	"homely/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PushSubscriptionModel is the MongoDB document shape for a Web Push
// subscription, mirroring the browser's PushSubscription JSON.
type PushSubscriptionModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Endpoint string             `bson:"endpoint"`
	Keys     struct {
		P256dh string `bson:"p256dh"`
		Auth   string `bson:"auth"`
	} `bson:"keys"`
	CreatedAt time.Time `bson:"createdAt,omitempty"`
}

// ToDomain converts the document to a domain entity.
func (m *PushSubscriptionModel) ToDomain() *entity.PushSubscription {
	return &entity.PushSubscription{
		Endpoint: m.Endpoint,
		Keys: entity.SubscriptionKeys{
			P256dh: m.Keys.P256dh,
			Auth:   m.Keys.Auth,
		},
		CreatedAt: m.CreatedAt,
	}
}

// PushSubscriptionModelFromDomain converts a domain entity to its document shape.
func PushSubscriptionModelFromDomain(subscription *entity.PushSubscription) *PushSubscriptionModel {
	m := &PushSubscriptionModel{
		Endpoint:  subscription.Endpoint,
		CreatedAt: subscription.CreatedAt,
	}
	m.Keys.P256dh = subscription.Keys.P256dh
	m.Keys.Auth = subscription.Keys.Auth

	return m
}
