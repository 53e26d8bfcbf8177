package dto

import (
	"github.com/samber/lo"

	"github.com/pasajes-microservice/internal/domain"
)

// MetadataResponse - справочные данные для формы продажи
type MetadataResponse struct {
	Routes    []RouteResponse    `json:"rutas"`
	Vehicles  []VehicleResponse  `json:"unidades"`
	FareTypes []FareTypeResponse `json:"tipos"`
}

type RouteResponse struct {
	ID   domain.ID `json:"id"`
	Name string    `json:"nombre"`
}

type VehicleResponse struct {
	ID         domain.ID `json:"id"`
	DiscNumber int64     `json:"disco"`
	Plate      string    `json:"placa"`
}

type FareTypeResponse struct {
	ID          domain.ID `json:"id"`
	Description string    `json:"descripcion"`
	Discount    float64   `json:"descuento"`
}

// TicketResponse - строка списка билетов; ключи совпадают с колонками
type TicketResponse struct {
	ID            domain.ID `json:"ID_PASAJE"`
	TravelDate    *string   `json:"FECHA_VIAJE"`
	RouteName     string    `json:"NOMBRE_RUTA"`
	DiscNumber    int64     `json:"NUMERO_DISCO"`
	Description   string    `json:"DESCRIPCION"`
	FinalValue    float64   `json:"VALOR_FINAL"`
	PassengerName *string   `json:"NOMBRE_PASAJERO"`
}

// CreateTicketResponse - ответ на продажу билета
type CreateTicketResponse struct {
	Message string  `json:"message"`
	Value   float64 `json:"valor"`
}

// ConvertMetadata converts the reference-data aggregate to its wire shape
func ConvertMetadata(m *domain.Metadata) *MetadataResponse {
	return &MetadataResponse{
		Routes: lo.Map(m.Routes, func(r domain.Route, _ int) RouteResponse {
			return RouteResponse{ID: r.ID, Name: r.Name}
		}),
		Vehicles: lo.Map(m.Vehicles, func(v domain.Vehicle, _ int) VehicleResponse {
			return VehicleResponse{ID: v.ID, DiscNumber: v.DiscNumber, Plate: v.Plate}
		}),
		FareTypes: lo.Map(m.FareTypes, func(f domain.FareType, _ int) FareTypeResponse {
			return FareTypeResponse{ID: f.ID, Description: f.Description, Discount: f.DiscountPercentage}
		}),
	}
}

// ConvertTicket converts a joined ticket row; the travel date becomes an ISO string or null
func ConvertTicket(t domain.TicketView) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		TravelDate:    domain.FormatTravelDate(t.TravelDate),
		RouteName:     t.RouteName,
		DiscNumber:    t.DiscNumber,
		Description:   t.Description,
		FinalValue:    t.FinalValue,
		PassengerName: t.PassengerName,
	}
}
