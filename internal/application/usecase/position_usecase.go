package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// PositionUseCase casos de uso CRUD para puestos de proyecto.
type PositionUseCase struct {
	repo        repository.PositionRepository
	projectRepo repository.ProjectRepository
}

// NewPositionUseCase construye el caso de uso.
func NewPositionUseCase(repo repository.PositionRepository, projectRepo repository.ProjectRepository) *PositionUseCase {
	return &PositionUseCase{repo: repo, projectRepo: projectRepo}
}

// Create crea un puesto bajo un proyecto existente.
// Presupuesto y tarifa, si llegan, deben ser no negativos.
func (uc *PositionUseCase) Create(in dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	if in.Name == "" || in.ProjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validOptionalAmount(in.Budget) || !validOptionalAmount(in.HourlyRate) {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	position := &entity.Position{
		ID:         uuid.New().String(),
		ProjectID:  in.ProjectID,
		Name:       in.Name,
		Budget:     toNullDecimal(in.Budget),
		HourlyRate: toNullDecimal(in.HourlyRate),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(position); err != nil {
		return nil, err
	}
	return toPositionResponse(position), nil
}

// ListByProject lista puestos de un proyecto.
func (uc *PositionUseCase) ListByProject(projectID string, limit, offset int) ([]*dto.PositionResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByProject(projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PositionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPositionResponse(p))
	}
	return out, nil
}

// GetByID obtiene un puesto; ErrNotFound si no existe.
func (uc *PositionUseCase) GetByID(id string) (*dto.PositionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPositionResponse(p), nil
}

// Update modifica un puesto. Budget y HourlyRate siempre se toman del request
// (enviar null los limpia); el nombre se conserva si llega vacío.
func (uc *PositionUseCase) Update(id string, in dto.UpdatePositionRequest) (*dto.PositionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !validOptionalAmount(in.Budget) || !validOptionalAmount(in.HourlyRate) {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	p.Budget = toNullDecimal(in.Budget)
	p.HourlyRate = toNullDecimal(in.HourlyRate)
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPositionResponse(p), nil
}

// Delete elimina un puesto; ErrNotFound si no existe.
func (uc *PositionUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPositionResponse(p *entity.Position) *dto.PositionResponse {
	return &dto.PositionResponse{
		ID:         p.ID,
		ProjectID:  p.ProjectID,
		Name:       p.Name,
		Budget:     fromNullDecimal(p.Budget),
		HourlyRate: fromNullDecimal(p.HourlyRate),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
