package domain

// Route - transit line with its base ticket price
type Route struct {
	ID        ID      `db:"id_ruta"`
	Name      string  `db:"nombre_ruta"`
	BasePrice float64 `db:"precio_base"`
}

// Vehicle - physical unit identified by its disc number and plate
type Vehicle struct {
	ID         ID     `db:"id_unidad"`
	DiscNumber int64  `db:"numero_disco"`
	Plate      string `db:"placa"`
}

// FareType - passenger category with a percentage discount (0-100)
type FareType struct {
	ID                 ID      `db:"id_tipo_pasaje"`
	Description        string  `db:"descripcion"`
	DiscountPercentage float64 `db:"porcentaje_descuento"`
}

// Metadata - the three reference lists used to populate selection controls
type Metadata struct {
	Routes    []Route
	Vehicles  []Vehicle
	FareTypes []FareType
}
