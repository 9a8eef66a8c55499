package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// BookingUseCase arma el detalle de imputaciones con su jerarquía resuelta
// (usuario, cliente, proyecto, puesto) y los totales del período.
type BookingUseCase struct {
	repo     repository.ReportRepository
	pdf      BookingPDFGenerator
	pageSize int
}

// NewBookingUseCase construye el caso de uso. pageSize es el límite por
// defecto cuando el request no trae uno.
func NewBookingUseCase(repo repository.ReportRepository, pdf BookingPDFGenerator, pageSize int) *BookingUseCase {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &BookingUseCase{repo: repo, pdf: pdf, pageSize: pageSize}
}

// GetBookings genera el reporte de booking del período y filtros solicitados.
func (uc *BookingUseCase) GetBookings(ctx context.Context, in dto.BookingReportRequest) (*dto.BookingReportDTO, error) {
	start, end, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit <= 0 {
		limit = uc.pageSize
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	filter := repository.BookingFilter{
		UserID:    in.UserID,
		ProjectID: in.ProjectID,
		ClientID:  in.ClientID,
		From:      &start,
		To:        &end,
	}
	rows, err := uc.repo.Bookings(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.BookingLineDTO, 0, len(rows))
	totalHours := decimal.Zero
	totalAmount := decimal.Zero
	for _, row := range rows {
		lines = append(lines, dto.BookingLineDTO{
			EntryID:      row.EntryID,
			Date:         row.Date.Format(dateLayout),
			UserName:     row.UserName,
			ClientName:   row.ClientName,
			ProjectName:  row.ProjectName,
			PositionName: row.PositionName,
			Hours:        row.Hours.Round(2),
			Amount:       row.Amount.Round(2),
			Description:  row.Description,
		})
		totalHours = totalHours.Add(row.Hours)
		totalAmount = totalAmount.Add(row.Amount)
	}
	return &dto.BookingReportDTO{
		Period:      periodDTO(start, end),
		Lines:       lines,
		TotalHours:  totalHours.Round(2),
		TotalAmount: totalAmount.Round(2),
	}, nil
}

// ExportPDF genera el reporte y lo materializa como PDF.
func (uc *BookingUseCase) ExportPDF(ctx context.Context, in dto.BookingReportRequest) ([]byte, error) {
	report, err := uc.GetBookings(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(report)
}
