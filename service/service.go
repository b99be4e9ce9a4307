package service

import "context"

// Service is a long-running component that is run by the app until the given
// context.Context is done.
type Service interface {
	// Run the service. A returned error stops all other services.
	Run(ctx context.Context) error
}
