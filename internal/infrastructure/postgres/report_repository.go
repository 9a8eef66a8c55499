package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes agregados.
// Devuelve filas crudas con las horas ya sumadas en SQL; la aritmética
// monetaria queda en los casos de uso (decimal de punto fijo).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// positionHoursSelect: un Position con su jerarquía y sus horas totales.
// COALESCE garantiza TotalHours = 0 para puestos sin imputaciones.
const positionHoursSelect = `
	SELECT
	    p.id                          AS position_id,
	    p.project_id,
	    pr.client_id,
	    p.name,
	    p.budget,
	    p.hourly_rate,
	    COALESCE(SUM(te.hours), 0)    AS total_hours
	FROM positions p
	JOIN projects pr ON pr.id = p.project_id
	LEFT JOIN time_entries te ON te.position_id = p.id`

const positionHoursGroup = `
	GROUP BY p.id, p.project_id, pr.client_id, p.name, p.budget, p.hourly_rate`

// PositionWithHours devuelve un puesto con sus horas sumadas, o nil si no existe.
func (r *ReportRepo) PositionWithHours(ctx context.Context, positionID string) (*repository.PositionHoursRow, error) {
	query := positionHoursSelect + `
	WHERE p.id = $1` + positionHoursGroup

	var row repository.PositionHoursRow
	err := r.pool.QueryRow(ctx, query, positionID).Scan(
		&row.PositionID, &row.ProjectID, &row.ClientID, &row.Name,
		&row.Budget, &row.HourlyRate, &row.TotalHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("report.PositionWithHours: %w", err)
	}
	return &row, nil
}

// PositionsByProject devuelve todos los puestos de un proyecto con sus horas.
func (r *ReportRepo) PositionsByProject(ctx context.Context, projectID string) ([]repository.PositionHoursRow, error) {
	query := positionHoursSelect + `
	WHERE p.project_id = $1` + positionHoursGroup + `
	ORDER BY p.name`
	return r.queryPositionHours(ctx, "PositionsByProject", query, projectID)
}

// PositionsByClient devuelve todos los puestos bajo todos los proyectos de un cliente.
func (r *ReportRepo) PositionsByClient(ctx context.Context, clientID string) ([]repository.PositionHoursRow, error) {
	query := positionHoursSelect + `
	WHERE pr.client_id = $1` + positionHoursGroup + `
	ORDER BY p.name`
	return r.queryPositionHours(ctx, "PositionsByClient", query, clientID)
}

// AllPositionsWithHours devuelve todos los puestos del sistema con sus horas.
func (r *ReportRepo) AllPositionsWithHours(ctx context.Context) ([]repository.PositionHoursRow, error) {
	query := positionHoursSelect + positionHoursGroup + `
	ORDER BY p.name`
	return r.queryPositionHours(ctx, "AllPositionsWithHours", query)
}

func (r *ReportRepo) queryPositionHours(ctx context.Context, op, query string, args ...any) ([]repository.PositionHoursRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.PositionHoursRow
	for rows.Next() {
		var row repository.PositionHoursRow
		if err := rows.Scan(
			&row.PositionID, &row.ProjectID, &row.ClientID, &row.Name,
			&row.Budget, &row.HourlyRate, &row.TotalHours,
		); err != nil {
			return nil, fmt.Errorf("report.%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProjectHeader devuelve nombre y presupuesto de un proyecto, o nil si no existe.
func (r *ReportRepo) ProjectHeader(ctx context.Context, projectID string) (*repository.ProjectBudgetRow, error) {
	const query = `
	SELECT id, client_id, name, budget
	FROM projects WHERE id = $1`

	var row repository.ProjectBudgetRow
	err := r.pool.QueryRow(ctx, query, projectID).Scan(&row.ProjectID, &row.ClientID, &row.Name, &row.Budget)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("report.ProjectHeader: %w", err)
	}
	return &row, nil
}

// ClientHeader devuelve nombre y presupuesto agregado de un cliente, o nil si no existe.
// SUM ignora presupuestos NULL individuales y solo devuelve NULL cuando ningún
// proyecto tiene presupuesto: exactamente la semántica que espera el reporte.
func (r *ReportRepo) ClientHeader(ctx context.Context, clientID string) (*repository.ClientBudgetRow, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    SUM(pr.budget) AS total_budget
	FROM clients c
	LEFT JOIN projects pr ON pr.client_id = c.id
	WHERE c.id = $1
	GROUP BY c.id, c.name`

	var row repository.ClientBudgetRow
	err := r.pool.QueryRow(ctx, query, clientID).Scan(&row.ClientID, &row.Name, &row.TotalBudget)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("report.ClientHeader: %w", err)
	}
	return &row, nil
}

// BudgetedProjects devuelve todos los proyectos con presupuesto no NULL.
func (r *ReportRepo) BudgetedProjects(ctx context.Context) ([]repository.ProjectBudgetRow, error) {
	const query = `
	SELECT id, client_id, name, budget
	FROM projects
	WHERE budget IS NOT NULL
	ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.BudgetedProjects: %w", err)
	}
	defer rows.Close()

	var results []repository.ProjectBudgetRow
	for rows.Next() {
		var row repository.ProjectBudgetRow
		if err := rows.Scan(&row.ProjectID, &row.ClientID, &row.Name, &row.Budget); err != nil {
			return nil, fmt.Errorf("report.BudgetedProjects scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ClientsWithBudgetedProjects devuelve los clientes con al menos un proyecto
// presupuestado. COUNT(pr.budget) cuenta solo presupuestos no NULL.
func (r *ReportRepo) ClientsWithBudgetedProjects(ctx context.Context) ([]repository.ClientBudgetRow, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    SUM(pr.budget) AS total_budget
	FROM clients c
	JOIN projects pr ON pr.client_id = c.id
	GROUP BY c.id, c.name
	HAVING COUNT(pr.budget) > 0
	ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ClientsWithBudgetedProjects: %w", err)
	}
	defer rows.Close()

	var results []repository.ClientBudgetRow
	for rows.Next() {
		var row repository.ClientBudgetRow
		if err := rows.Scan(&row.ClientID, &row.Name, &row.TotalBudget); err != nil {
			return nil, fmt.Errorf("report.ClientsWithBudgetedProjects scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// HoursByUser agrupa horas totales y facturables por usuario en el período.
// Facturable = imputado contra un puesto con hourly_rate no NULL.
func (r *ReportRepo) HoursByUser(ctx context.Context, from, to time.Time) ([]repository.UserHoursRow, error) {
	const query = `
	SELECT
	    u.id,
	    u.name,
	    COALESCE(SUM(te.hours), 0)                                               AS total_hours,
	    COALESCE(SUM(te.hours) FILTER (WHERE p.hourly_rate IS NOT NULL), 0)      AS billable_hours,
	    COUNT(te.id)                                                             AS entry_count
	FROM users u
	JOIN time_entries te ON te.user_id = u.id
	JOIN positions p ON p.id = te.position_id
	WHERE te.date BETWEEN $1 AND $2
	GROUP BY u.id, u.name
	ORDER BY u.name`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.HoursByUser: %w", err)
	}
	defer rows.Close()

	var results []repository.UserHoursRow
	for rows.Next() {
		var row repository.UserHoursRow
		if err := rows.Scan(&row.UserID, &row.UserName, &row.TotalHours, &row.BillableHours, &row.EntryCount); err != nil {
			return nil, fmt.Errorf("report.HoursByUser scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Bookings devuelve imputaciones con la jerarquía resuelta (usuario, cliente,
// proyecto, puesto) y el monto hours × rate, 0 cuando la tarifa es NULL.
func (r *ReportRepo) Bookings(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]repository.BookingRow, error) {
	query := `
	SELECT
	    te.id,
	    te.date,
	    u.name                                  AS user_name,
	    c.name                                  AS client_name,
	    pr.name                                 AS project_name,
	    p.name                                  AS position_name,
	    te.hours,
	    COALESCE(te.hours * p.hourly_rate, 0)   AS amount,
	    te.description
	FROM time_entries te
	JOIN positions p  ON p.id  = te.position_id
	JOIN projects pr  ON pr.id = p.project_id
	JOIN clients c    ON c.id  = pr.client_id
	JOIN users u      ON u.id  = te.user_id`

	var args []any
	where := ""
	and := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = fmt.Sprintf(" WHERE %s $%d", cond, len(args))
		} else {
			where += fmt.Sprintf(" AND %s $%d", cond, len(args))
		}
	}

	if filter.UserID != "" {
		and("te.user_id =", filter.UserID)
	}
	if filter.ProjectID != "" {
		and("pr.id =", filter.ProjectID)
	}
	if filter.ClientID != "" {
		and("c.id =", filter.ClientID)
	}
	if filter.From != nil {
		and("te.date >=", *filter.From)
	}
	if filter.To != nil {
		and("te.date <=", *filter.To)
	}

	args = append(args, limit, offset)
	query += where + fmt.Sprintf(" ORDER BY te.date DESC, te.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.Bookings: %w", err)
	}
	defer rows.Close()

	var results []repository.BookingRow
	for rows.Next() {
		var row repository.BookingRow
		if err := rows.Scan(
			&row.EntryID, &row.Date, &row.UserName, &row.ClientName,
			&row.ProjectName, &row.PositionName, &row.Hours, &row.Amount, &row.Description,
		); err != nil {
			return nil, fmt.Errorf("report.Bookings scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
