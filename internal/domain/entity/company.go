package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// Todo Product, Warehouse y Supplier pertenece exactamente a una Company;
// las referencias cruzadas entre empresas están prohibidas.
type Company struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria, obligatoria y única
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
