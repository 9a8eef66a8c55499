package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate convierte YYYY-MM-DD en *time.Time; string vacío devuelve nil sin error.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

// formatDate serializa una fecha como YYYY-MM-DD; nil devuelve string vacío.
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// validOptionalAmount verifica que un monto opcional, si existe, sea no negativo.
func validOptionalAmount(d *decimal.Decimal) bool {
	return d == nil || !d.IsNegative()
}

// toNullDecimal convierte *decimal.Decimal en decimal.NullDecimal.
func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// fromNullDecimal convierte decimal.NullDecimal en *decimal.Decimal (nil si NULL).
func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
