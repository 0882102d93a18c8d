package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario.
// El núcleo de inventario solo la referencia, nunca la muta.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
