package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

// TimeEntryRepo implementación de TimeEntryRepository (usable con pool o tx).
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository construye el adaptador.
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

// Create persiste una nueva imputación de horas.
func (r *TimeEntryRepo) Create(entry *entity.TimeEntry) error {
	query := `
		INSERT INTO time_entries (id, position_id, user_id, date, hours, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.PositionID, entry.UserID, entry.Date, entry.Hours, entry.Description,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // el puesto o el usuario no existen
		}
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// GetByID obtiene una imputación por ID.
func (r *TimeEntryRepo) GetByID(id string) (*entity.TimeEntry, error) {
	query := `
		SELECT id, position_id, user_id, date, hours, description, created_at, updated_at
		FROM time_entries WHERE id = $1`
	var e entity.TimeEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.PositionID, &e.UserID, &e.Date, &e.Hours, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get time entry: %w", err)
	}
	return &e, nil
}

// List lista imputaciones aplicando los filtros no vacíos, ordenadas por fecha descendente.
// El filtro por proyecto atraviesa positions (una imputación pertenece a un puesto).
func (r *TimeEntryRepo) List(filter repository.TimeEntryFilter, limit, offset int) ([]*entity.TimeEntry, error) {
	query := `
		SELECT te.id, te.position_id, te.user_id, te.date, te.hours, te.description, te.created_at, te.updated_at
		FROM time_entries te`
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

	if filter.ProjectID != "" {
		query += ` JOIN positions p ON p.id = te.position_id`
		and("p.project_id =", filter.ProjectID)
	}
	if filter.UserID != "" {
		and("te.user_id =", filter.UserID)
	}
	if filter.PositionID != "" {
		and("te.position_id =", filter.PositionID)
	}
	if filter.From != nil {
		and("te.date >=", *filter.From)
	}
	if filter.To != nil {
		and("te.date <=", *filter.To)
	}

	args = append(args, limit, offset)
	query += where + fmt.Sprintf(" ORDER BY te.date DESC, te.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.TimeEntry
	for rows.Next() {
		var e entity.TimeEntry
		if err := rows.Scan(&e.ID, &e.PositionID, &e.UserID, &e.Date, &e.Hours, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una imputación.
func (r *TimeEntryRepo) Update(entry *entity.TimeEntry) error {
	query := `
		UPDATE time_entries SET position_id = $2, date = $3, hours = $4, description = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.PositionID, entry.Date, entry.Hours, entry.Description, entry.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update time entry: %w", err)
	}
	return nil
}

// Delete elimina una imputación por ID.
func (r *TimeEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}
