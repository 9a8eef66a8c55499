package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTimeEntryRequest alta de imputación de horas.
type CreateTimeEntryRequest struct {
	PositionID  string          `json:"position_id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

// UpdateTimeEntryRequest cambios sobre una imputación.
type UpdateTimeEntryRequest struct {
	PositionID  string          `json:"position_id"`
	Date        string          `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

// TimeEntryResponse imputación serializada.
type TimeEntryResponse struct {
	ID          string          `json:"id"`
	PositionID  string          `json:"position_id"`
	UserID      string          `json:"user_id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TimeEntryListRequest filtros de listado de imputaciones.
type TimeEntryListRequest struct {
	UserID     string `query:"user_id"`
	PositionID string `query:"position_id"`
	ProjectID  string `query:"project_id"`
	From       string `query:"from"` // YYYY-MM-DD
	To         string `query:"to"`   // YYYY-MM-DD
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}
