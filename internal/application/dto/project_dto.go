package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest alta de proyecto bajo un cliente.
// Budget es opcional: nil = proyecto sin presupuesto declarado.
type CreateProjectRequest struct {
	ClientID  string           `json:"client_id"`
	Name      string           `json:"name"`
	Budget    *decimal.Decimal `json:"budget"`
	StartDate string           `json:"start_date"` // YYYY-MM-DD, opcional
	EndDate   string           `json:"end_date"`   // YYYY-MM-DD, opcional
}

// UpdateProjectRequest cambios sobre un proyecto.
type UpdateProjectRequest struct {
	Name      string           `json:"name"`
	Budget    *decimal.Decimal `json:"budget"`
	Status    string           `json:"status"` // active, archived
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
}

// ProjectResponse proyecto serializado. Budget es null cuando no hay presupuesto.
type ProjectResponse struct {
	ID        string           `json:"id"`
	ClientID  string           `json:"client_id"`
	Name      string           `json:"name"`
	Budget    *decimal.Decimal `json:"budget"`
	Status    string           `json:"status"`
	StartDate string           `json:"start_date,omitempty"`
	EndDate   string           `json:"end_date,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CreatePositionRequest alta de puesto bajo un proyecto.
// Budget y HourlyRate opcionales; si hay valor debe ser no negativo.
type CreatePositionRequest struct {
	ProjectID  string           `json:"project_id"`
	Name       string           `json:"name"`
	Budget     *decimal.Decimal `json:"budget"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// UpdatePositionRequest cambios sobre un puesto.
type UpdatePositionRequest struct {
	Name       string           `json:"name"`
	Budget     *decimal.Decimal `json:"budget"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// PositionResponse puesto serializado. Campos monetarios null cuando no aplican.
type PositionResponse struct {
	ID         string           `json:"id"`
	ProjectID  string           `json:"project_id"`
	Name       string           `json:"name"`
	Budget     *decimal.Decimal `json:"budget"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
