// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a long-running entry point of the application, such as an HTTP
// server or a background worker. Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
