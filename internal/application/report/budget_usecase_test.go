package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/report"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de reportes
// ──────────────────────────────────────────────────────────────────────────────

// fakeReportRepo sirve filas precargadas; la aritmética queda toda en el
// caso de uso, que es lo que estos tests ejercitan.
type fakeReportRepo struct {
	positions []repository.PositionHoursRow
	projects  []repository.ProjectBudgetRow
	clients   []repository.ClientBudgetRow
	users     []repository.UserHoursRow
	bookings  []repository.BookingRow
}

func (f *fakeReportRepo) PositionWithHours(_ context.Context, positionID string) (*repository.PositionHoursRow, error) {
	for _, p := range f.positions {
		if p.PositionID == positionID {
			row := p
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) PositionsByProject(_ context.Context, projectID string) ([]repository.PositionHoursRow, error) {
	var out []repository.PositionHoursRow
	for _, p := range f.positions {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) PositionsByClient(_ context.Context, clientID string) ([]repository.PositionHoursRow, error) {
	var out []repository.PositionHoursRow
	for _, p := range f.positions {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) AllPositionsWithHours(_ context.Context) ([]repository.PositionHoursRow, error) {
	return f.positions, nil
}

func (f *fakeReportRepo) ProjectHeader(_ context.Context, projectID string) (*repository.ProjectBudgetRow, error) {
	for _, p := range f.projects {
		if p.ProjectID == projectID {
			row := p
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) ClientHeader(_ context.Context, clientID string) (*repository.ClientBudgetRow, error) {
	for _, c := range f.clients {
		if c.ClientID == clientID {
			row := c
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) BudgetedProjects(_ context.Context) ([]repository.ProjectBudgetRow, error) {
	var out []repository.ProjectBudgetRow
	for _, p := range f.projects {
		if p.Budget.Valid {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ClientsWithBudgetedProjects(_ context.Context) ([]repository.ClientBudgetRow, error) {
	var out []repository.ClientBudgetRow
	for _, c := range f.clients {
		if c.TotalBudget.Valid {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) HoursByUser(_ context.Context, _, _ time.Time) ([]repository.UserHoursRow, error) {
	return f.users, nil
}

func (f *fakeReportRepo) Bookings(_ context.Context, _ repository.BookingFilter, limit, offset int) ([]repository.BookingRow, error) {
	if offset >= len(f.bookings) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.bookings) {
		end = len(f.bookings)
	}
	return f.bookings[offset:end], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func position(id, projectID, clientID, name string, budget, rate decimal.NullDecimal, hours string) repository.PositionHoursRow {
	return repository.PositionHoursRow{
		PositionID: id,
		ProjectID:  projectID,
		ClientID:   clientID,
		Name:       name,
		Budget:     budget,
		HourlyRate: rate,
		TotalHours: dec(hours),
	}
}

func requireDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got)
}

func requireDecPtr(t *testing.T, want string, got *decimal.Decimal, msg string) {
	t.Helper()
	require.NotNil(t, got, msg)
	requireDec(t, want, *got, msg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance puesto
// ──────────────────────────────────────────────────────────────────────────────

// Puesto con presupuesto 5000, tarifa 100 y dos imputaciones de 10h:
// consumido 2000, 40% del presupuesto, restante 3000.
func TestBudget_Puesto_ConsumoParcial(t *testing.T) {
	repo := &fakeReportRepo{positions: []repository.PositionHoursRow{
		position("pos-1", "proj-1", "cli-1", "Backend Senior", nullDec("5000"), nullDec("100"), "20"),
	}}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "pos-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	row := out[0]
	assert.Equal(t, dto.BudgetEntityPosition, row.EntityType)
	assert.Equal(t, "pos-1", row.EntityID)
	assert.Equal(t, "Backend Senior", row.EntityName)
	requireDecPtr(t, "5000", row.TotalBudget, "presupuesto total")
	requireDec(t, "2000", row.ConsumedAmount, "consumido")
	requireDec(t, "40", row.ConsumptionRate, "porcentaje de consumo")
	requireDecPtr(t, "3000", row.RemainingBudget, "restante")
}

// Sobreconsumo: presupuesto 1000, tarifa 100, 20h imputadas.
// El porcentaje supera 100 y el restante es negativo; no hay clamping.
func TestBudget_Puesto_SobreconsumoSinClamping(t *testing.T) {
	repo := &fakeReportRepo{positions: []repository.PositionHoursRow{
		position("pos-1", "proj-1", "cli-1", "Data Engineer", nullDec("1000"), nullDec("100"), "20"),
	}}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "pos-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	requireDec(t, "2000", out[0].ConsumedAmount, "consumido")
	requireDec(t, "200", out[0].ConsumptionRate, "porcentaje sin clamping")
	requireDecPtr(t, "-1000", out[0].RemainingBudget, "restante negativo")
}

// Puesto sin tarifa: aunque haya horas, el consumo es 0.
func TestBudget_Puesto_SinTarifaConsumeCero(t *testing.T) {
	repo := &fakeReportRepo{positions: []repository.PositionHoursRow{
		position("pos-1", "proj-1", "cli-1", "Interno", nullDec("3000"), decimal.NullDecimal{}, "40"),
	}}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "pos-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	requireDec(t, "0", out[0].ConsumedAmount, "sin tarifa no hay consumo")
	requireDec(t, "0", out[0].ConsumptionRate, "porcentaje")
	requireDecPtr(t, "3000", out[0].RemainingBudget, "restante intacto")
}

// Puesto sin presupuesto: porcentaje 0 y restante null; el consumo sí se calcula.
func TestBudget_Puesto_SinPresupuesto(t *testing.T) {
	repo := &fakeReportRepo{positions: []repository.PositionHoursRow{
		position("pos-1", "proj-1", "cli-1", "Freelance", decimal.NullDecimal{}, nullDec("80"), "10"),
	}}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "pos-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Nil(t, out[0].TotalBudget, "presupuesto null")
	requireDec(t, "800", out[0].ConsumedAmount, "consumido")
	requireDec(t, "0", out[0].ConsumptionRate, "porcentaje con presupuesto null")
	assert.Nil(t, out[0].RemainingBudget, "restante null sin presupuesto")
}

// Id desconocido: lista vacía, nunca error.
func TestBudget_Puesto_IdDesconocidoListaVacia(t *testing.T) {
	uc := report.NewBudgetUseCase(&fakeReportRepo{})

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "no-existe"})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance proyecto
// ──────────────────────────────────────────────────────────────────────────────

// Proyecto con presupuesto 10000 y dos puestos: tarifa 100 × 10h y tarifa
// 150 × 8h → consumido 2200, 22%, restante 7800. El alcance por proyecto
// produce una sola fila, la del proyecto.
func TestBudget_Proyecto_AgregaConsumoDePuestos(t *testing.T) {
	repo := &fakeReportRepo{
		positions: []repository.PositionHoursRow{
			position("pos-1", "proj-1", "cli-1", "Backend", decimal.NullDecimal{}, nullDec("100"), "10"),
			position("pos-2", "proj-1", "cli-1", "Frontend", decimal.NullDecimal{}, nullDec("150"), "8"),
		},
		projects: []repository.ProjectBudgetRow{
			{ProjectID: "proj-1", ClientID: "cli-1", Name: "Portal Web", Budget: nullDec("10000")},
		},
	}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{ProjectID: "proj-1"})
	require.NoError(t, err)
	require.Len(t, out, 1, "el alcance por proyecto reporta solo el proyecto")

	proj := out[0]
	assert.Equal(t, dto.BudgetEntityProject, proj.EntityType)
	assert.Equal(t, "Portal Web", proj.EntityName)
	requireDecPtr(t, "10000", proj.TotalBudget, "presupuesto del proyecto")
	requireDec(t, "2200", proj.ConsumedAmount, "consumo agregado")
	requireDec(t, "22", proj.ConsumptionRate, "porcentaje del proyecto")
	requireDecPtr(t, "7800", proj.RemainingBudget, "restante del proyecto")
}

// Proyecto sin puestos: consumo 0 y restante igual al presupuesto.
func TestBudget_Proyecto_SinPuestos(t *testing.T) {
	repo := &fakeReportRepo{
		projects: []repository.ProjectBudgetRow{
			{ProjectID: "proj-1", ClientID: "cli-1", Name: "Nuevo", Budget: nullDec("4000")},
		},
	}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{ProjectID: "proj-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	requireDec(t, "0", out[0].ConsumedAmount, "sin puestos no hay consumo")
	requireDecPtr(t, "4000", out[0].RemainingBudget, "restante")
}

func TestBudget_Proyecto_IdDesconocidoListaVacia(t *testing.T) {
	uc := report.NewBudgetUseCase(&fakeReportRepo{})

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{ProjectID: "no-existe"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance cliente
// ──────────────────────────────────────────────────────────────────────────────

// Cliente con dos proyectos presupuestados (5000 + 7000 = 12000) y dos
// puestos trabajados: tarifa 100 × 15h y tarifa 120 × 10h → consumido 2700,
// 22.5%, restante 9300. Una sola fila, la del cliente.
func TestBudget_Cliente_SumaProyectos(t *testing.T) {
	repo := &fakeReportRepo{
		positions: []repository.PositionHoursRow{
			position("pos-1", "proj-1", "cli-1", "Consultor A", decimal.NullDecimal{}, nullDec("100"), "15"),
			position("pos-2", "proj-2", "cli-1", "Consultor B", decimal.NullDecimal{}, nullDec("120"), "10"),
		},
		clients: []repository.ClientBudgetRow{
			{ClientID: "cli-1", Name: "ACME Corp", TotalBudget: nullDec("12000")},
		},
	}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{ClientID: "cli-1"})
	require.NoError(t, err)
	require.Len(t, out, 1, "el alcance por cliente reporta solo el cliente")

	cli := out[0]
	assert.Equal(t, dto.BudgetEntityClient, cli.EntityType)
	assert.Equal(t, "ACME Corp", cli.EntityName)
	requireDecPtr(t, "12000", cli.TotalBudget, "presupuesto sumado de proyectos")
	requireDec(t, "2700", cli.ConsumedAmount, "consumo del cliente")
	requireDec(t, "22.5", cli.ConsumptionRate, "porcentaje del cliente")
	requireDecPtr(t, "9300", cli.RemainingBudget, "restante del cliente")
}

// Cliente cuyos proyectos no declaran presupuesto: TotalBudget null,
// porcentaje 0 y restante null, pero el consumo se reporta.
func TestBudget_Cliente_SinProyectosPresupuestados(t *testing.T) {
	repo := &fakeReportRepo{
		positions: []repository.PositionHoursRow{
			position("pos-1", "proj-1", "cli-1", "Consultor", decimal.NullDecimal{}, nullDec("90"), "10"),
		},
		clients: []repository.ClientBudgetRow{
			{ClientID: "cli-1", Name: "Sin Presupuesto SA", TotalBudget: decimal.NullDecimal{}},
		},
	}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{ClientID: "cli-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Nil(t, out[0].TotalBudget)
	requireDec(t, "900", out[0].ConsumedAmount, "consumo sin presupuesto")
	assert.Nil(t, out[0].RemainingBudget)
}

func TestBudget_Cliente_IdDesconocidoListaVacia(t *testing.T) {
	uc := report.NewBudgetUseCase(&fakeReportRepo{})

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{ClientID: "no-existe"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance global y precedencia de filtros
// ──────────────────────────────────────────────────────────────────────────────

// Reporte global: clientes presupuestados primero, luego proyectos
// presupuestados, luego puestos presupuestados. El consumo de cada nivel se
// agrega a partir de las mismas filas de puestos.
func TestBudget_Global_OrdenYAgregados(t *testing.T) {
	repo := &fakeReportRepo{
		positions: []repository.PositionHoursRow{
			position("pos-1", "proj-1", "cli-1", "Dev", nullDec("2000"), nullDec("100"), "5"),
			position("pos-2", "proj-2", "cli-2", "QA", decimal.NullDecimal{}, nullDec("50"), "4"),
		},
		projects: []repository.ProjectBudgetRow{
			{ProjectID: "proj-1", ClientID: "cli-1", Name: "Alpha", Budget: nullDec("8000")},
			{ProjectID: "proj-2", ClientID: "cli-2", Name: "Beta", Budget: decimal.NullDecimal{}},
		},
		clients: []repository.ClientBudgetRow{
			{ClientID: "cli-1", Name: "ACME", TotalBudget: nullDec("8000")},
			{ClientID: "cli-2", Name: "Globex", TotalBudget: decimal.NullDecimal{}},
		},
	}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{})
	require.NoError(t, err)
	// 1 cliente presupuestado + 1 proyecto presupuestado + 1 puesto presupuestado
	require.Len(t, out, 3)

	assert.Equal(t, dto.BudgetEntityClient, out[0].EntityType)
	requireDec(t, "500", out[0].ConsumedAmount, "consumo agregado del cliente")

	assert.Equal(t, dto.BudgetEntityProject, out[1].EntityType)
	requireDec(t, "500", out[1].ConsumedAmount, "consumo agregado del proyecto")
	requireDecPtr(t, "7500", out[1].RemainingBudget, "restante del proyecto")

	assert.Equal(t, dto.BudgetEntityPosition, out[2].EntityType)
	assert.Equal(t, "pos-1", out[2].EntityID)
}

// Un puesto sin presupuesto no aparece como fila en el reporte global, pero
// sus horas sí cuentan para el consumo del proyecto y del cliente.
func TestBudget_Global_ExcluyePuestosSinPresupuesto(t *testing.T) {
	repo := &fakeReportRepo{
		positions: []repository.PositionHoursRow{
			position("pos-1", "proj-1", "cli-1", "Dev", nullDec("2000"), nullDec("100"), "5"),
			position("pos-2", "proj-1", "cli-1", "QA", decimal.NullDecimal{}, nullDec("50"), "4"),
		},
		projects: []repository.ProjectBudgetRow{
			{ProjectID: "proj-1", ClientID: "cli-1", Name: "Alpha", Budget: nullDec("8000")},
		},
		clients: []repository.ClientBudgetRow{
			{ClientID: "cli-1", Name: "ACME", TotalBudget: nullDec("8000")},
		},
	}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{})
	require.NoError(t, err)
	require.Len(t, out, 3)

	for _, row := range out {
		assert.NotEqual(t, "pos-2", row.EntityID, "un puesto sin presupuesto no se lista")
	}

	// 500 del Dev + 200 del QA: las horas del puesto excluido sí se agregan.
	requireDec(t, "700", out[0].ConsumedAmount, "consumo del cliente")
	requireDec(t, "700", out[1].ConsumedAmount, "consumo del proyecto")
	requireDecPtr(t, "7300", out[1].RemainingBudget, "restante del proyecto")
}

// Con varios filtros gana el más específico: position_id sobre project_id y
// client_id.
func TestBudget_PrecedenciaDeFiltros(t *testing.T) {
	repo := &fakeReportRepo{
		positions: []repository.PositionHoursRow{
			position("pos-1", "proj-1", "cli-1", "Dev", nullDec("1000"), nullDec("100"), "2"),
		},
		projects: []repository.ProjectBudgetRow{
			{ProjectID: "proj-1", ClientID: "cli-1", Name: "Alpha", Budget: nullDec("5000")},
		},
		clients: []repository.ClientBudgetRow{
			{ClientID: "cli-1", Name: "ACME", TotalBudget: nullDec("5000")},
		},
	}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{
		PositionID: "pos-1",
		ProjectID:  "proj-1",
		ClientID:   "cli-1",
	})
	require.NoError(t, err)
	require.Len(t, out, 1, "con position_id presente solo se reporta el puesto")
	assert.Equal(t, dto.BudgetEntityPosition, out[0].EntityType)
}

// El reporte es de solo lectura: pedirlo dos veces da el mismo resultado.
func TestBudget_Idempotente(t *testing.T) {
	repo := &fakeReportRepo{positions: []repository.PositionHoursRow{
		position("pos-1", "proj-1", "cli-1", "Dev", nullDec("5000"), nullDec("100"), "20"),
	}}
	uc := report.NewBudgetUseCase(repo)

	first, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "pos-1"})
	require.NoError(t, err)
	second, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "pos-1"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Redondeo a dos decimales en el borde: tarifa 33.33 × 3h = 99.99;
// 99.99 / 150 × 100 = 66.66.
func TestBudget_RedondeoADosDecimales(t *testing.T) {
	repo := &fakeReportRepo{positions: []repository.PositionHoursRow{
		position("pos-1", "proj-1", "cli-1", "Dev", nullDec("150"), nullDec("33.33"), "3"),
	}}
	uc := report.NewBudgetUseCase(repo)

	out, err := uc.GetBudgetConsumption(context.Background(), dto.BudgetReportRequest{PositionID: "pos-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	requireDec(t, "99.99", out[0].ConsumedAmount, "consumido")
	requireDec(t, "66.66", out[0].ConsumptionRate, "porcentaje redondeado")
	requireDecPtr(t, "50.01", out[0].RemainingBudget, "restante")
}
