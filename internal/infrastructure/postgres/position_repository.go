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

var _ repository.PositionRepository = (*PositionRepo)(nil)

// PositionRepo implementación de PositionRepository (usable con pool o tx).
type PositionRepo struct {
	q Querier
}

// NewPositionRepository construye el adaptador.
func NewPositionRepository(q Querier) *PositionRepo {
	return &PositionRepo{q: q}
}

// Create persiste un nuevo puesto.
func (r *PositionRepo) Create(position *entity.Position) error {
	query := `
		INSERT INTO positions (id, project_id, name, budget, hourly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		position.ID, position.ProjectID, position.Name, position.Budget, position.HourlyRate,
		position.CreatedAt, position.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // el proyecto no existe
		}
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// GetByID obtiene un puesto por ID.
func (r *PositionRepo) GetByID(id string) (*entity.Position, error) {
	query := `
		SELECT id, project_id, name, budget, hourly_rate, created_at, updated_at
		FROM positions WHERE id = $1`
	var p entity.Position
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProjectID, &p.Name, &p.Budget, &p.HourlyRate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get position: %w", err)
	}
	return &p, nil
}

// ListByProject lista puestos de un proyecto con paginación.
func (r *PositionRepo) ListByProject(projectID string, limit, offset int) ([]*entity.Position, error) {
	query := `
		SELECT id, project_id, name, budget, hourly_rate, created_at, updated_at
		FROM positions WHERE project_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Position
	for rows.Next() {
		var p entity.Position
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.Budget, &p.HourlyRate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un puesto.
func (r *PositionRepo) Update(position *entity.Position) error {
	query := `
		UPDATE positions SET name = $2, budget = $3, hourly_rate = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		position.ID, position.Name, position.Budget, position.HourlyRate, position.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update position: %w", err)
	}
	return nil
}

// Delete elimina un puesto por ID (cascada a imputaciones).
func (r *PositionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	return nil
}
