package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// NoteUseCase casos de uso de notas CRM bajo un cliente.
type NoteUseCase struct {
	repo       repository.NoteRepository
	clientRepo repository.ClientRepository
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(repo repository.NoteRepository, clientRepo repository.ClientRepository) *NoteUseCase {
	return &NoteUseCase{repo: repo, clientRepo: clientRepo}
}

// Create crea una nota bajo un cliente existente.
func (uc *NoteUseCase) Create(clientID, authorID string, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if in.Body == "" {
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
	note := &entity.Note{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		AuthorID:  authorID,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// ListByClient lista las notas de un cliente, más recientes primero.
func (uc *NoteUseCase) ListByClient(clientID string, limit, offset int) ([]*dto.NoteResponse, error) {
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
	out := make([]*dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoteResponse(n))
	}
	return out, nil
}

// GetByID obtiene una nota; ErrNotFound si no existe.
func (uc *NoteUseCase) GetByID(id string) (*dto.NoteResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return toNoteResponse(n), nil
}

// Update cambia el cuerpo de una nota existente.
func (uc *NoteUseCase) Update(id string, in dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	n.Body = in.Body
	n.UpdatedAt = time.Now()
	if err := uc.repo.Update(n); err != nil {
		return nil, err
	}
	return toNoteResponse(n), nil
}

// Delete elimina una nota; ErrNotFound si no existe.
func (uc *NoteUseCase) Delete(id string) error {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:        n.ID,
		ClientID:  n.ClientID,
		AuthorID:  n.AuthorID,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
