package repository

import (
	"context"

	"github.com/pasajes-microservice/internal/domain"
)

// ReferenceRepository reads routes, vehicles and fare types
type ReferenceRepository interface {
	// ListRoutes returns all routes ordered by name
	ListRoutes(ctx context.Context) ([]domain.Route, error)

	// ListVehicles returns all vehicles ordered by disc number
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)

	// ListFareTypes returns all fare types ordered by description
	ListFareTypes(ctx context.Context) ([]domain.FareType, error)

	// GetRouteBasePrice fails with errors.ErrRouteNotFound when the route does not exist
	GetRouteBasePrice(ctx context.Context, routeID domain.ID) (float64, error)

	// GetFareTypeDiscount fails with errors.ErrFareTypeNotFound when the fare type does not exist
	GetFareTypeDiscount(ctx context.Context, fareTypeID domain.ID) (float64, error)
}
