package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Project.
const (
	ProjectActive   = "active"
	ProjectArchived = "archived"
)

// Project representa un proyecto facturable de un Client.
// Budget es opcional: un proyecto sin presupuesto declarado no participa del
// reporte de consumo a nivel proyecto.
type Project struct {
	ID        string
	ClientID  string
	Name      string
	Budget    decimal.NullDecimal // monto total presupuestado (NULL = sin presupuesto)
	Status    string              // active, archived
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Position representa un rol/puesto dentro de un Project (ej. "Senior Developer").
// HourlyRate es la tarifa con la que se monetizan las horas imputadas; si es NULL
// las horas registradas no generan consumo monetario.
type Position struct {
	ID         string
	ProjectID  string
	Name       string
	Budget     decimal.NullDecimal // presupuesto propio del puesto (NULL = sin presupuesto)
	HourlyRate decimal.NullDecimal // tarifa por hora (NULL = horas no facturables)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
