package repository

import "context"

// Gateway hands out one store connection per unit of work and always releases it
type Gateway interface {
	// WithinConnection runs fn with a dedicated connection bound to ctx
	WithinConnection(ctx context.Context, fn func(ctx context.Context) error) error

	// WithinTransaction runs fn inside a transaction: commit on nil, rollback otherwise
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
