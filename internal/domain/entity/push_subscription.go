// Package entity contains the core business objects of the project.
package entity

import "time"

// SubscriptionKeys is the encryption material required to address a Web Push
// subscriber.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"` // Client public key for payload encryption.
	Auth   string `json:"auth"`   // Client authentication secret.
}

// PushSubscription represents a browser push registration. Duplicate rows for
// the same physical client are tolerated; each is attempted and pruned
// independently.
type PushSubscription struct {
	Endpoint  string           `json:"endpoint"` // Opaque delivery address issued by the push service.
	Keys      SubscriptionKeys `json:"keys"`
	CreatedAt time.Time        `json:"createdAt"`
}
