// Package delivery defines the servers that expose the service.
package delivery

import "context"

// Delivery is a long-running server started by the application and stopped through fx lifecycle hooks
type Delivery interface {
	Serve(ctx context.Context) error
}
