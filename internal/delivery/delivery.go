// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// container. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
