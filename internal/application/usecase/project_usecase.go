package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para proyectos.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo}
}

// Create crea un proyecto bajo un cliente existente.
// El presupuesto, si llega, debe ser no negativo.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validOptionalAmount(in.Budget) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	project := &entity.Project{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Name:      in.Name,
		Budget:    toNullDecimal(in.Budget),
		Status:    entity.ProjectActive,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List lista proyectos; con clientID filtra por cliente.
func (uc *ProjectUseCase) List(clientID string, limit, offset int) ([]*dto.ProjectResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var list []*entity.Project
	var err error
	if clientID != "" {
		list, err = uc.repo.ListByClient(clientID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// GetByID obtiene un proyecto; ErrNotFound si no existe.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(p), nil
}

// Update modifica un proyecto. Budget siempre se toma del request
// (enviar null limpia el presupuesto); el resto conserva el valor si llega vacío.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !validOptionalAmount(in.Budget) {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	p.Budget = toNullDecimal(in.Budget)
	if in.Status != "" {
		if in.Status != entity.ProjectActive && in.Status != entity.ProjectArchived {
			return nil, domain.ErrInvalidInput
		}
		p.Status = in.Status
	}
	if in.StartDate != "" {
		startDate, err := parseDate(in.StartDate)
		if err != nil {
			return nil, err
		}
		p.StartDate = startDate
	}
	if in.EndDate != "" {
		endDate, err := parseDate(in.EndDate)
		if err != nil {
			return nil, err
		}
		p.EndDate = endDate
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProjectResponse(p), nil
}

// Delete elimina un proyecto; ErrNotFound si no existe.
func (uc *ProjectUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:        p.ID,
		ClientID:  p.ClientID,
		Name:      p.Name,
		Budget:    fromNullDecimal(p.Budget),
		Status:    p.Status,
		StartDate: formatDate(p.StartDate),
		EndDate:   formatDate(p.EndDate),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
