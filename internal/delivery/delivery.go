// Package delivery defines the inbound transport boundary of the
// application.
package delivery

import "context"

// Delivery is a server that accepts requests until its context is canceled
// or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
