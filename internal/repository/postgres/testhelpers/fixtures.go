package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// CountTickets returns the number of rows in pasajes
func CountTickets(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM pasajes").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return n, nil
}

// InsertTicket writes a ticket row directly, bypassing the application (nil date and passenger allowed)
func InsertTicket(db *sql.DB, travelDate interface{}, routeID, vehicleID, fareTypeID int64, value float64, passenger interface{}) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO pasajes (fecha_viaje, id_ruta, id_unidad, id_tipo_pasaje, valor_final, nombre_pasajero)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_pasaje`,
		travelDate, routeID, vehicleID, fareTypeID, value, passenger,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert ticket: %w", err)
	}
	return id, nil
}
