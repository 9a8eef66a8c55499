package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// BudgetUseCase calcula el consumo de presupuesto por puesto, proyecto y
// cliente. La base de datos solo suma horas; toda la aritmética monetaria
// (consumido, porcentaje, restante) vive aquí, en decimal de punto fijo.
type BudgetUseCase struct {
	repo repository.ReportRepository
}

// NewBudgetUseCase construye el caso de uso.
func NewBudgetUseCase(repo repository.ReportRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

// GetBudgetConsumption genera el reporte para el alcance que resulte de los
// filtros. Un id desconocido produce lista vacía, nunca error.
func (uc *BudgetUseCase) GetBudgetConsumption(ctx context.Context, in dto.BudgetReportRequest) ([]dto.BudgetReportDTO, error) {
	scope := ResolveScope(in.PositionID, in.ProjectID, in.ClientID)
	switch scope.Kind {
	case ScopePosition:
		return uc.positionScope(ctx, scope.ID)
	case ScopeProject:
		return uc.projectScope(ctx, scope.ID)
	case ScopeClient:
		return uc.clientScope(ctx, scope.ID)
	default:
		return uc.allScope(ctx)
	}
}

func (uc *BudgetUseCase) positionScope(ctx context.Context, positionID string) ([]dto.BudgetReportDTO, error) {
	row, err := uc.repo.PositionWithHours(ctx, positionID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return []dto.BudgetReportDTO{}, nil
	}
	return []dto.BudgetReportDTO{positionReport(*row)}, nil
}

func (uc *BudgetUseCase) projectScope(ctx context.Context, projectID string) ([]dto.BudgetReportDTO, error) {
	header, err := uc.repo.ProjectHeader(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return []dto.BudgetReportDTO{}, nil
	}
	rows, err := uc.repo.PositionsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return []dto.BudgetReportDTO{
		buildReport(dto.BudgetEntityProject, header.ProjectID, header.Name, header.Budget, consumedOf(rows)),
	}, nil
}

func (uc *BudgetUseCase) clientScope(ctx context.Context, clientID string) ([]dto.BudgetReportDTO, error) {
	header, err := uc.repo.ClientHeader(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return []dto.BudgetReportDTO{}, nil
	}
	rows, err := uc.repo.PositionsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return []dto.BudgetReportDTO{
		buildReport(dto.BudgetEntityClient, header.ClientID, header.Name, header.TotalBudget, consumedOf(rows)),
	}, nil
}

// allScope emite primero los clientes con presupuesto, luego los proyectos
// presupuestados y al final los puestos presupuestados. El consumo de
// proyectos y clientes se agrega a partir de todas las filas de puestos,
// tengan o no presupuesto propio.
func (uc *BudgetUseCase) allScope(ctx context.Context) ([]dto.BudgetReportDTO, error) {
	positions, err := uc.repo.AllPositionsWithHours(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := uc.repo.BudgetedProjects(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := uc.repo.ClientsWithBudgetedProjects(ctx)
	if err != nil {
		return nil, err
	}

	consumedByProject := make(map[string]decimal.Decimal)
	consumedByClient := make(map[string]decimal.Decimal)
	for _, row := range positions {
		c := consumedOfRow(row)
		consumedByProject[row.ProjectID] = consumedByProject[row.ProjectID].Add(c)
		consumedByClient[row.ClientID] = consumedByClient[row.ClientID].Add(c)
	}

	out := make([]dto.BudgetReportDTO, 0, len(clients)+len(projects)+len(positions))
	for _, c := range clients {
		out = append(out, buildReport(dto.BudgetEntityClient, c.ClientID, c.Name, c.TotalBudget, consumedByClient[c.ClientID]))
	}
	for _, p := range projects {
		out = append(out, buildReport(dto.BudgetEntityProject, p.ProjectID, p.Name, p.Budget, consumedByProject[p.ProjectID]))
	}
	for _, row := range positions {
		if !row.Budget.Valid {
			continue
		}
		out = append(out, positionReport(row))
	}
	return out, nil
}

// consumedOfRow calcula el monto consumido de un puesto: tarifa × horas.
// Sin tarifa el consumo es cero aunque haya horas imputadas.
func consumedOfRow(row repository.PositionHoursRow) decimal.Decimal {
	if !row.HourlyRate.Valid {
		return decimal.Zero
	}
	return row.HourlyRate.Decimal.Mul(row.TotalHours)
}

func consumedOf(rows []repository.PositionHoursRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(consumedOfRow(row))
	}
	return total
}

func positionReport(row repository.PositionHoursRow) dto.BudgetReportDTO {
	return buildReport(dto.BudgetEntityPosition, row.PositionID, row.Name, row.Budget, consumedOfRow(row))
}

// buildReport arma la fila del reporte. El porcentaje puede superar 100 y el
// restante puede ser negativo; no hay clamping. Presupuesto null deja
// porcentaje en cero y restante en null. El redondeo a dos decimales ocurre
// solo aquí, en el borde de serialización.
func buildReport(entityType, id, name string, budget decimal.NullDecimal, consumed decimal.Decimal) dto.BudgetReportDTO {
	out := dto.BudgetReportDTO{
		EntityType:     entityType,
		EntityID:       id,
		EntityName:     name,
		ConsumedAmount: consumed.Round(2),
	}
	if !budget.Valid {
		return out
	}
	b := budget.Decimal.Round(2)
	out.TotalBudget = &b
	if !budget.Decimal.IsZero() {
		out.ConsumptionRate = consumed.Div(budget.Decimal).Mul(hundred).Round(2)
	}
	remaining := budget.Decimal.Sub(consumed).Round(2)
	out.RemainingBudget = &remaining
	return out
}
