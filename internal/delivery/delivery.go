// Package delivery defines the entry points that expose the application.
package delivery

import "context"

// Delivery is a long-running transport, started once the container is up.
type Delivery interface {
	Serve(ctx context.Context) error
}
