package dto

import "github.com/shopspring/decimal"

// ── Consumo de presupuesto ────────────────────────────────────────────────────

// Valores de EntityType en BudgetReportDTO.
const (
	BudgetEntityPosition = "position"
	BudgetEntityProject  = "project"
	BudgetEntityClient   = "client"
)

// BudgetReportRequest filtro de GET /api/reports/budget.
// A lo sumo uno de los tres IDs; si llegan varios, la precedencia es
// position_id, luego project_id, luego client_id. Sin IDs = reporte global.
type BudgetReportRequest struct {
	PositionID string `query:"position_id"`
	ProjectID  string `query:"project_id"`
	ClientID   string `query:"client_id"`
}

// BudgetReportDTO consumo de presupuesto de una entidad.
//   - TotalBudget null = la entidad no declara presupuesto.
//   - ConsumedAmount siempre presente (0 sin horas facturables).
//   - ConsumptionRate = consumido/presupuesto×100; 0 si el presupuesto es
//     null o cero. Puede superar 100 (sin clamping).
//   - RemainingBudget = presupuesto − consumido; null si no hay presupuesto.
//     Puede ser negativo.
type BudgetReportDTO struct {
	EntityType      string           `json:"entity_type"` // position | project | client
	EntityID        string           `json:"entity_id"`
	EntityName      string           `json:"entity_name"`
	TotalBudget     *decimal.Decimal `json:"total_budget"`
	ConsumedAmount  decimal.Decimal  `json:"consumed_amount"`
	ConsumptionRate decimal.Decimal  `json:"consumption_rate"`
	RemainingBudget *decimal.Decimal `json:"remaining_budget"`
}

// ── Utilización ───────────────────────────────────────────────────────────────

// UtilizationReportRequest parámetros de GET /api/reports/utilization.
type UtilizationReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; por defecto hoy
}

// UserUtilizationDTO utilización de un usuario en el período.
type UserUtilizationDTO struct {
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	BillableHours  decimal.Decimal `json:"billable_hours"`
	CapacityHours  decimal.Decimal `json:"capacity_hours"`  // días hábiles × horas/día
	UtilizationPct decimal.Decimal `json:"utilization_pct"` // total/capacidad × 100
	BillablePct    decimal.Decimal `json:"billable_pct"`    // facturable/total × 100
	EntryCount     int             `json:"entry_count"`
}

// UtilizationReportDTO respuesta completa del reporte de utilización.
type UtilizationReportDTO struct {
	Period PeriodDTO            `json:"period"`
	Users  []UserUtilizationDTO `json:"users"`
}

// ── Booking ───────────────────────────────────────────────────────────────────

// BookingReportRequest parámetros de GET /api/reports/bookings.
type BookingReportRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	UserID    string `query:"user_id"`
	ProjectID string `query:"project_id"`
	ClientID  string `query:"client_id"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}

// BookingLineDTO una imputación con su jerarquía resuelta.
type BookingLineDTO struct {
	EntryID      string          `json:"entry_id"`
	Date         string          `json:"date"` // YYYY-MM-DD
	UserName     string          `json:"user_name"`
	ClientName   string          `json:"client_name"`
	ProjectName  string          `json:"project_name"`
	PositionName string          `json:"position_name"`
	Hours        decimal.Decimal `json:"hours"`
	Amount       decimal.Decimal `json:"amount"` // hours × hourly_rate, 0 sin tarifa
	Description  string          `json:"description"`
}

// BookingReportDTO respuesta completa del reporte de booking.
type BookingReportDTO struct {
	Period      PeriodDTO        `json:"period"`
	Lines       []BookingLineDTO `json:"lines"`
	TotalHours  decimal.Decimal  `json:"total_hours"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
}

// PeriodDTO rango de fechas de un reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
