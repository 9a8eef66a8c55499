package repository

import (
	"time"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
)

// TimeEntryFilter filtros opcionales para listar imputaciones.
// Los campos vacíos / nil no filtran.
type TimeEntryFilter struct {
	UserID     string
	PositionID string
	ProjectID  string
	From       *time.Time
	To         *time.Time
}

// TimeEntryRepository define el puerto de persistencia para TimeEntry.
type TimeEntryRepository interface {
	Create(entry *entity.TimeEntry) error
	GetByID(id string) (*entity.TimeEntry, error)
	List(filter TimeEntryFilter, limit, offset int) ([]*entity.TimeEntry, error)
	Update(entry *entity.TimeEntry) error
	Delete(id string) error
}
