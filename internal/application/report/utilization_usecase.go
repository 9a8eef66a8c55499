package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// UtilizationUseCase calcula la utilización por usuario en un período: horas
// imputadas contra la capacidad teórica (días hábiles × horas por día).
type UtilizationUseCase struct {
	repo        repository.ReportRepository
	hoursPerDay int
}

// NewUtilizationUseCase construye el caso de uso. hoursPerDay suele ser 8.
func NewUtilizationUseCase(repo repository.ReportRepository, hoursPerDay int) *UtilizationUseCase {
	if hoursPerDay <= 0 {
		hoursPerDay = 8
	}
	return &UtilizationUseCase{repo: repo, hoursPerDay: hoursPerDay}
}

// GetUtilization genera el reporte de utilización del período solicitado.
func (uc *UtilizationUseCase) GetUtilization(ctx context.Context, in dto.UtilizationReportRequest) (*dto.UtilizationReportDTO, error) {
	start, end, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.HoursByUser(ctx, start, end)
	if err != nil {
		return nil, err
	}

	capacity := decimal.NewFromInt(int64(countBusinessDays(start, end) * uc.hoursPerDay))
	users := make([]dto.UserUtilizationDTO, 0, len(rows))
	for _, row := range rows {
		u := dto.UserUtilizationDTO{
			UserID:        row.UserID,
			UserName:      row.UserName,
			TotalHours:    row.TotalHours.Round(2),
			BillableHours: row.BillableHours.Round(2),
			CapacityHours: capacity,
			EntryCount:    row.EntryCount,
		}
		if capacity.IsPositive() {
			u.UtilizationPct = row.TotalHours.Div(capacity).Mul(hundred).Round(2)
		}
		if row.TotalHours.IsPositive() {
			u.BillablePct = row.BillableHours.Div(row.TotalHours).Mul(hundred).Round(2)
		}
		users = append(users, u)
	}
	return &dto.UtilizationReportDTO{
		Period: periodDTO(start, end),
		Users:  users,
	}, nil
}
