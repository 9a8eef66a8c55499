package report

import "github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"

// BookingPDFGenerator genera el PDF del reporte de booking.
type BookingPDFGenerator interface {
	Generate(report *dto.BookingReportDTO) ([]byte, error)
}
