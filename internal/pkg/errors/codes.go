package errors

import "net/http"

// Every kind is reported as 500 on the wire; codes keep them apart inside the service.
var (
	ErrDatabaseUnavailable = New(
		"DATABASE_UNAVAILABLE",
		"Database connection failed",
		http.StatusInternalServerError,
	).Opaque()

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusInternalServerError,
	)

	ErrFareTypeNotFound = New(
		"FARE_TYPE_NOT_FOUND",
		"Fare type not found",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
