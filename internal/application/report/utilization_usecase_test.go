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

// Enero 2025: del 1 al 31 hay 23 días hábiles → 184h de capacidad a 8h/día.
func TestUtilization_CalculaPorcentajes(t *testing.T) {
	repo := &fakeReportRepo{users: []repository.UserHoursRow{
		{UserID: "u-1", UserName: "Ana", TotalHours: dec("92"), BillableHours: dec("69"), EntryCount: 20},
		{UserID: "u-2", UserName: "Luis", TotalHours: dec("184"), BillableHours: dec("184"), EntryCount: 40},
	}}
	uc := report.NewUtilizationUseCase(repo, 8)

	out, err := uc.GetUtilization(context.Background(), dto.UtilizationReportRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
	})
	require.NoError(t, err)
	require.Len(t, out.Users, 2)

	assert.Equal(t, "2025-01-01", out.Period.StartDate)
	assert.Equal(t, "2025-01-31", out.Period.EndDate)

	ana := out.Users[0]
	requireDec(t, "184", ana.CapacityHours, "capacidad de enero")
	requireDec(t, "50", ana.UtilizationPct, "92 de 184 horas")
	requireDec(t, "75", ana.BillablePct, "69 de 92 horas")

	luis := out.Users[1]
	requireDec(t, "100", luis.UtilizationPct, "capacidad completa")
	requireDec(t, "100", luis.BillablePct, "todo facturable")
}

// Usuario sin horas: los porcentajes quedan en 0 sin división por cero.
func TestUtilization_UsuarioSinHoras(t *testing.T) {
	repo := &fakeReportRepo{users: []repository.UserHoursRow{
		{UserID: "u-1", UserName: "Eva", TotalHours: dec("0"), BillableHours: dec("0")},
	}}
	uc := report.NewUtilizationUseCase(repo, 8)

	out, err := uc.GetUtilization(context.Background(), dto.UtilizationReportRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
	})
	require.NoError(t, err)
	require.Len(t, out.Users, 1)

	requireDec(t, "0", out.Users[0].UtilizationPct, "sin horas")
	requireDec(t, "0", out.Users[0].BillablePct, "sin horas")
}

// Un solo día de fin de semana: capacidad 0 y porcentaje 0 aunque haya horas.
func TestUtilization_FinDeSemanaCapacidadCero(t *testing.T) {
	repo := &fakeReportRepo{users: []repository.UserHoursRow{
		{UserID: "u-1", UserName: "Ana", TotalHours: dec("4"), BillableHours: dec("4"), EntryCount: 1},
	}}
	uc := report.NewUtilizationUseCase(repo, 8)

	// 2025-01-04 es sábado
	out, err := uc.GetUtilization(context.Background(), dto.UtilizationReportRequest{
		StartDate: "2025-01-04",
		EndDate:   "2025-01-05",
	})
	require.NoError(t, err)
	require.Len(t, out.Users, 1)

	requireDec(t, "0", out.Users[0].CapacityHours, "sábado y domingo no suman capacidad")
	requireDec(t, "0", out.Users[0].UtilizationPct, "sin capacidad no hay porcentaje")
	requireDec(t, "100", out.Users[0].BillablePct, "facturable sobre total sigue aplicando")
}

// Sin fechas: el período por defecto va del primer día del mes actual hasta
// hoy, calculado en UTC sin importar la zona horaria del proceso.
func TestUtilization_PeriodoPorDefectoEnUTC(t *testing.T) {
	uc := report.NewUtilizationUseCase(&fakeReportRepo{}, 8)

	out, err := uc.GetUtilization(context.Background(), dto.UtilizationReportRequest{})
	require.NoError(t, err)

	now := time.Now().UTC()
	wantStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	wantEnd := now.Format("2006-01-02")
	assert.Equal(t, wantStart, out.Period.StartDate)
	assert.Equal(t, wantEnd, out.Period.EndDate)
}

// Rango invertido: error de validación.
func TestUtilization_RangoInvertido(t *testing.T) {
	uc := report.NewUtilizationUseCase(&fakeReportRepo{}, 8)

	_, err := uc.GetUtilization(context.Background(), dto.UtilizationReportRequest{
		StartDate: "2025-02-01",
		EndDate:   "2025-01-01",
	})
	assert.Error(t, err)
}

// Fecha malformada: error de validación.
func TestUtilization_FechaInvalida(t *testing.T) {
	uc := report.NewUtilizationUseCase(&fakeReportRepo{}, 8)

	_, err := uc.GetUtilization(context.Background(), dto.UtilizationReportRequest{
		StartDate: "01/01/2025",
	})
	assert.Error(t, err)
}
