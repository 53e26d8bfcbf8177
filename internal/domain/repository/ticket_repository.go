package repository

import (
	"context"

	"github.com/pasajes-microservice/internal/domain"
)

// TicketRepository reads and writes ticket records
type TicketRepository interface {
	// List returns tickets newest travel date first, optionally only for one route
	List(ctx context.Context, routeID *domain.ID) ([]domain.TicketView, error)

	// Create inserts the ticket and returns the generated id
	Create(ctx context.Context, ticket *domain.Ticket) (domain.ID, error)

	// Delete removes the ticket and reports whether a row matched
	Delete(ctx context.Context, id domain.ID) (bool, error)
}
