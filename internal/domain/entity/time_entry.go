package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry representa horas imputadas por un usuario contra un Position.
// Hours es decimal con dos decimales y siempre positivo.
type TimeEntry struct {
	ID          string
	PositionID  string
	UserID      string
	Date        time.Time // día de la imputación (sin componente horario)
	Hours       decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
