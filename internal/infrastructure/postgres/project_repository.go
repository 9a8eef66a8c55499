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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, client_id, name, budget, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.ClientID, project.Name, project.Budget, project.Status,
		project.StartDate, project.EndDate, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // el cliente no existe
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `
		SELECT id, client_id, name, budget, status, start_date, end_date, created_at, updated_at
		FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Budget, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// List lista todos los proyectos con paginación.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT id, client_id, name, budget, status, start_date, end_date, created_at, updated_at
		FROM projects ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// ListByClient lista proyectos de un cliente con paginación.
func (r *ProjectRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT id, client_id, name, budget, status, start_date, end_date, created_at, updated_at
		FROM projects WHERE client_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryList(query, clientID, limit, offset)
}

func (r *ProjectRepo) queryList(query string, args ...any) ([]*entity.Project, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.Budget, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un proyecto.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, budget = $3, status = $4, start_date = $5, end_date = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Budget, project.Status,
		project.StartDate, project.EndDate, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete elimina un proyecto por ID (cascada a puestos e imputaciones).
func (r *ProjectRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
