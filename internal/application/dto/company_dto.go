package dto

import "time"

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name string `json:"name"`
	NIT  string `json:"nit"`
}

// CompanyResponse representación de una empresa en respuestas.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
