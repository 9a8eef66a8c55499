package repository

import "github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"

// NoteRepository define el puerto de persistencia para Note.
type NoteRepository interface {
	Create(note *entity.Note) error
	GetByID(id string) (*entity.Note, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Note, error)
	Update(note *entity.Note) error
	Delete(id string) error
}

// ActivityLogFilter filtros opcionales para la bitácora.
type ActivityLogFilter struct {
	ActorID    string
	EntityType string
	EntityID   string
}

// ActivityLogRepository define el puerto de persistencia para ActivityLog (append-only).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	List(filter ActivityLogFilter, limit, offset int) ([]*entity.ActivityLog, error)
}
