package postgres

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación de ActivityLogRepository (usable con pool o tx).
// La tabla es append-only: no hay Update ni Delete.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste una entrada de bitácora.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, actor_id, entity_type, entity_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ActorID, log.EntityType, log.EntityID, log.Action, log.Detail, log.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // el actor no existe
		}
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List lista entradas de bitácora aplicando los filtros no vacíos, más recientes primero.
func (r *ActivityLogRepo) List(filter repository.ActivityLogFilter, limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, actor_id, entity_type, entity_id, action, detail, created_at
		FROM activity_logs`
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

	if filter.ActorID != "" {
		and("actor_id =", filter.ActorID)
	}
	if filter.EntityType != "" {
		and("entity_type =", filter.EntityType)
	}
	if filter.EntityID != "" {
		and("entity_id =", filter.EntityID)
	}

	args = append(args, limit, offset)
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.ActorID, &l.EntityType, &l.EntityID, &l.Action, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
