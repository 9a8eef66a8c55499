package report

import (
	"time"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

// parsePeriod resuelve el rango de fechas de un reporte. Sin fecha de inicio
// se usa el primer día del mes actual; sin fecha de fin se usa hoy. Los
// valores por defecto se calculan en UTC, igual que las fechas parseadas.
func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var err error
	if startDate != "" {
		start, err = time.Parse(dateLayout, startDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if endDate != "" {
		end, err = time.Parse(dateLayout, endDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}

func periodDTO(start, end time.Time) dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}
}

// countBusinessDays cuenta los días lunes a viernes del rango, extremos
// incluidos.
func countBusinessDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
