package domain

import (
	"fmt"
	"time"
)

const (
	// TravelDateLayout - input format of the travel date-time
	TravelDateLayout = "2006-01-02 15:04"

	// TravelDateISOLayout - ISO-8601 rendering of the stored timestamp (no zone, as stored)
	TravelDateISOLayout = "2006-01-02T15:04:05"
)

// Ticket - sold fare as written to the store
type Ticket struct {
	ID            ID        `db:"id_pasaje"`
	TravelDate    time.Time `db:"fecha_viaje"`
	RouteID       ID        `db:"id_ruta"`
	VehicleID     ID        `db:"id_unidad"`
	FareTypeID    ID        `db:"id_tipo_pasaje"`
	FinalValue    float64   `db:"valor_final"`
	PassengerName string    `db:"nombre_pasajero"`
}

// TicketView - ticket joined with its route, vehicle and fare type
type TicketView struct {
	ID            ID         `db:"id_pasaje"`
	TravelDate    *time.Time `db:"fecha_viaje"`
	RouteName     string     `db:"nombre_ruta"`
	DiscNumber    int64      `db:"numero_disco"`
	Description   string     `db:"descripcion"`
	FinalValue    float64    `db:"valor_final"`
	PassengerName *string    `db:"nombre_pasajero"` // nil when sold without a name
}

// FinalValue computes base_price * (1 - discount/100)
func FinalValue(basePrice, discountPercentage float64) float64 {
	return basePrice * (1 - discountPercentage/100)
}

// ParseTravelDate parses "YYYY-MM-DD HH:MM"; anything else is rejected
func ParseTravelDate(s string) (time.Time, error) {
	t, err := time.Parse(TravelDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha__viaje %q no coincide con el formato YYYY-MM-DD HH:MM", s)
	}
	return t, nil
}

// FormatTravelDate renders a stored travel date as ISO-8601, nil stays nil
func FormatTravelDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TravelDateISOLayout)
	return &s
}
