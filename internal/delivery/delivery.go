// Package delivery defines the contract every transport entry point
// (HTTP server, change-feed watcher, worker) satisfies so main can start
// them uniformly.
package delivery

import "context"

// Delivery is a long-running transport started by the application entry point.
type Delivery interface {
	// Serve runs the delivery until it fails or the context is canceled.
	Serve(ctx context.Context) error
}
