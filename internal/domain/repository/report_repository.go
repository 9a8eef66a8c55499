package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ── Filas crudas para el motor de consumo de presupuesto ──────────────────────

// PositionHoursRow es un Position con sus horas totales imputadas ya sumadas.
// TotalHours llega en 0 (nunca NULL) cuando el puesto no tiene imputaciones.
type PositionHoursRow struct {
	PositionID string
	ProjectID  string
	ClientID   string
	Name       string
	Budget     decimal.NullDecimal
	HourlyRate decimal.NullDecimal
	TotalHours decimal.Decimal
}

// ProjectBudgetRow cabecera de proyecto para el reporte de presupuesto.
type ProjectBudgetRow struct {
	ProjectID string
	ClientID  string
	Name      string
	Budget    decimal.NullDecimal
}

// ClientBudgetRow cabecera de cliente. TotalBudget es SUM(budget) de sus
// proyectos: NULL solo cuando ningún proyecto tiene presupuesto (semántica
// del agregado SQL, que ignora NULLs individuales).
type ClientBudgetRow struct {
	ClientID    string
	Name        string
	TotalBudget decimal.NullDecimal
}

// ── Filas crudas para utilización y booking ───────────────────────────────────

// UserHoursRow horas totales y facturables de un usuario en un período.
// Facturable = imputado contra un Position con tarifa no NULL.
type UserHoursRow struct {
	UserID        string
	UserName      string
	TotalHours    decimal.Decimal
	BillableHours decimal.Decimal
	EntryCount    int
}

// BookingRow una imputación con los nombres de toda la jerarquía resueltos.
// Amount = hours × hourly_rate, 0 cuando la tarifa es NULL.
type BookingRow struct {
	EntryID      string
	Date         time.Time
	UserName     string
	ClientName   string
	ProjectName  string
	PositionName string
	Hours        decimal.Decimal
	Amount       decimal.Decimal
	Description  string
}

// BookingFilter filtros del reporte de booking. Campos vacíos / nil no filtran.
type BookingFilter struct {
	UserID    string
	ProjectID string
	ClientID  string
	From      *time.Time
	To        *time.Time
}

// ReportRepository consultas de solo lectura para los tres reportes agregados.
// Las sumas de horas se resuelven en SQL; la aritmética monetaria
// (consumo, porcentajes, restante) vive en el caso de uso con decimales
// de punto fijo para evitar deriva de flotantes.
type ReportRepository interface {
	// Motor de consumo de presupuesto
	PositionWithHours(ctx context.Context, positionID string) (*PositionHoursRow, error)
	PositionsByProject(ctx context.Context, projectID string) ([]PositionHoursRow, error)
	PositionsByClient(ctx context.Context, clientID string) ([]PositionHoursRow, error)
	AllPositionsWithHours(ctx context.Context) ([]PositionHoursRow, error)
	ProjectHeader(ctx context.Context, projectID string) (*ProjectBudgetRow, error)
	ClientHeader(ctx context.Context, clientID string) (*ClientBudgetRow, error)
	BudgetedProjects(ctx context.Context) ([]ProjectBudgetRow, error)
	ClientsWithBudgetedProjects(ctx context.Context) ([]ClientBudgetRow, error)

	// Utilización
	HoursByUser(ctx context.Context, from, to time.Time) ([]UserHoursRow, error)

	// Booking
	Bookings(ctx context.Context, filter BookingFilter, limit, offset int) ([]BookingRow, error)
}
