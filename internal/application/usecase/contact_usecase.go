package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// ContactUseCase casos de uso CRUD para contactos de clientes.
type ContactUseCase struct {
	repo       repository.ContactRepository
	clientRepo repository.ClientRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, clientRepo repository.ClientRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo, clientRepo: clientRepo}
}

// Create crea un contacto bajo un cliente existente.
func (uc *ContactUseCase) Create(clientID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Name:      in.Name,
		Title:     in.Title,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// ListByClient lista contactos de un cliente.
func (uc *ContactUseCase) ListByClient(clientID string, limit, offset int) ([]*dto.ContactResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByClient(clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// GetByID obtiene un contacto; ErrNotFound si no existe.
func (uc *ContactUseCase) GetByID(id string) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContactResponse(c), nil
}

// Update modifica un contacto. Campos vacíos conservan el valor actual.
func (uc *ContactUseCase) Update(id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Title != "" {
		c.Title = in.Title
	}
	if in.Email != "" {
		c.Email = in.Email
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

// Delete elimina un contacto; ErrNotFound si no existe.
func (uc *ContactUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Name:      c.Name,
		Title:     c.Title,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
