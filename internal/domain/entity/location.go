package entity

import "time"

// Tipos de ubicación física donde se almacena stock.
const (
	LocationTypeWarehouse    = "warehouse"     // almacén
	LocationTypePointOfSale  = "point_of_sale" // punto de venta
	LocationTypeStand        = "stand"         // stand / puesto
)

// Location representa una ubicación física (almacén, punto de venta o stand).
// Las cantidades por elemento se materializan en celdas de la tabla stock y
// solo las muta el motor de ejecución.
type Location struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidLocationType indica si el tipo de ubicación es uno de los conocidos.
func ValidLocationType(t string) bool {
	switch t {
	case LocationTypeWarehouse, LocationTypePointOfSale, LocationTypeStand:
		return true
	}
	return false
}
