// Package delivery contains the ways the application is driven from outside.
package delivery

import "context"

// Delivery is a long running front end started by the fx application.
type Delivery interface {
	// Serve blocks until the front end stops or fails.
	Serve(ctx context.Context) error
}
