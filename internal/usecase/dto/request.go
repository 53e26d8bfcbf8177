package dto

import "github.com/pasajes-microservice/internal/domain"

// CreateTicketRequest - запрос на продажу билета
type CreateTicketRequest struct {
	RouteID       domain.ID `json:"id_ruta" validate:"required"`
	VehicleID     domain.ID `json:"id_unidad" validate:"required"`
	FareTypeID    domain.ID `json:"id_tipo" validate:"required"`
	TravelDate    string    `json:"fecha__viaje" validate:"required"` // YYYY-MM-DD HH:MM
	PassengerName string    `json:"nombre_pasajero"`
}
