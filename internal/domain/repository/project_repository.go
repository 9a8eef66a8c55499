package repository

import "github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}

// PositionRepository define el puerto de persistencia para Position.
type PositionRepository interface {
	Create(position *entity.Position) error
	GetByID(id string) (*entity.Position, error)
	ListByProject(projectID string, limit, offset int) ([]*entity.Position, error)
	Update(position *entity.Position) error
	Delete(id string) error
}
