package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/report"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

func booking(id, user, client, project, position, hours, amount string, day int) repository.BookingRow {
	return repository.BookingRow{
		EntryID:      id,
		Date:         time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
		UserName:     user,
		ClientName:   client,
		ProjectName:  project,
		PositionName: position,
		Hours:        dec(hours),
		Amount:       dec(amount),
	}
}

func TestBooking_LineasYTotales(t *testing.T) {
	repo := &fakeReportRepo{bookings: []repository.BookingRow{
		booking("e-1", "Ana", "ACME", "Portal", "Backend", "8", "800", 3),
		booking("e-2", "Luis", "ACME", "Portal", "Frontend", "6.5", "975", 4),
		booking("e-3", "Ana", "Globex", "CRM", "Data", "4", "0", 5), // puesto sin tarifa
	}}
	uc := report.NewBookingUseCase(repo, nil, 50)

	out, err := uc.GetBookings(context.Background(), dto.BookingReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	require.Len(t, out.Lines, 3)

	assert.Equal(t, "2025-03-03", out.Lines[0].Date)
	assert.Equal(t, "Ana", out.Lines[0].UserName)
	assert.Equal(t, "ACME", out.Lines[0].ClientName)
	requireDec(t, "18.5", out.TotalHours, "horas totales")
	requireDec(t, "1775", out.TotalAmount, "importe total")
	requireDec(t, "0", out.Lines[2].Amount, "sin tarifa el importe es cero")
}

func TestBooking_SinResultados(t *testing.T) {
	uc := report.NewBookingUseCase(&fakeReportRepo{}, nil, 50)

	out, err := uc.GetBookings(context.Background(), dto.BookingReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Lines)
	requireDec(t, "0", out.TotalHours, "sin líneas")
	requireDec(t, "0", out.TotalAmount, "sin líneas")
}

// La paginación se delega al repositorio; el límite por defecto viene de la
// configuración del caso de uso.
func TestBooking_PaginacionPorDefecto(t *testing.T) {
	rows := make([]repository.BookingRow, 0, 5)
	for i := 1; i <= 5; i++ {
		rows = append(rows, booking("e", "Ana", "ACME", "Portal", "Backend", "1", "100", i))
	}
	uc := report.NewBookingUseCase(&fakeReportRepo{bookings: rows}, nil, 2)

	out, err := uc.GetBookings(context.Background(), dto.BookingReportRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)
	assert.Len(t, out.Lines, 2, "el límite por defecto acota la página")

	// Los totales reflejan la página servida, no el universo completo.
	requireDec(t, "2", out.TotalHours, "horas de la página")
}

func TestBooking_RangoInvertido(t *testing.T) {
	uc := report.NewBookingUseCase(&fakeReportRepo{}, nil, 50)

	_, err := uc.GetBookings(context.Background(), dto.BookingReportRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-03-01",
	})
	assert.Error(t, err)
}
