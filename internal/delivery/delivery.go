// Package delivery defines the inbound transport abstraction served by the
// application entrypoint.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the server
// stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
