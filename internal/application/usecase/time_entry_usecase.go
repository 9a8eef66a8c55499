package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// TimeEntryTxRunner ejecuta un callback con repos transaccionales: la imputación
// y su entrada de bitácora se persisten atómicamente o no se persisten.
type TimeEntryTxRunner interface {
	Run(ctx context.Context, fn func(
		entryRepo repository.TimeEntryRepository,
		activityRepo repository.ActivityLogRepository,
	) error) error
}

// TimeEntryUseCase casos de uso de imputación de horas.
type TimeEntryUseCase struct {
	repo         repository.TimeEntryRepository
	positionRepo repository.PositionRepository
	tx           TimeEntryTxRunner
}

// NewTimeEntryUseCase construye el caso de uso.
func NewTimeEntryUseCase(repo repository.TimeEntryRepository, positionRepo repository.PositionRepository, tx TimeEntryTxRunner) *TimeEntryUseCase {
	return &TimeEntryUseCase{repo: repo, positionRepo: positionRepo, tx: tx}
}

// Create registra horas contra un puesto existente y deja constancia en la bitácora.
// Las horas deben ser estrictamente positivas.
func (uc *TimeEntryUseCase) Create(ctx context.Context, actorID string, in dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if in.PositionID == "" || !in.Hours.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil || date == nil {
		return nil, domain.ErrInvalidInput
	}
	position, err := uc.positionRepo.GetByID(in.PositionID)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	entry := &entity.TimeEntry{
		ID:          uuid.New().String(),
		PositionID:  in.PositionID,
		UserID:      actorID,
		Date:        *date,
		Hours:       in.Hours,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.Run(ctx, func(entryRepo repository.TimeEntryRepository, activityRepo repository.ActivityLogRepository) error {
		if err := entryRepo.Create(entry); err != nil {
			return err
		}
		return activityRepo.Create(newTimeEntryLog(actorID, entry.ID, entity.ActionCreated, entry))
	})
	if err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

// List devuelve imputaciones según filtros; ids desconocidos producen lista vacía.
func (uc *TimeEntryUseCase) List(in dto.TimeEntryListRequest) ([]*dto.TimeEntryResponse, error) {
	from, err := parseDate(in.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(in.To)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	filter := repository.TimeEntryFilter{
		UserID:     in.UserID,
		PositionID: in.PositionID,
		ProjectID:  in.ProjectID,
		From:       from,
		To:         to,
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TimeEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toTimeEntryResponse(e))
	}
	return out, nil
}

// GetByID obtiene una imputación; ErrNotFound si no existe.
func (uc *TimeEntryUseCase) GetByID(id string) (*dto.TimeEntryResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toTimeEntryResponse(e), nil
}

// Update modifica una imputación y registra el cambio en la bitácora.
// Solo el autor original o un admin pueden modificarla; eso lo decide el handler.
func (uc *TimeEntryUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.PositionID != "" && in.PositionID != e.PositionID {
		position, err := uc.positionRepo.GetByID(in.PositionID)
		if err != nil {
			return nil, err
		}
		if position == nil {
			return nil, domain.ErrNotFound
		}
		e.PositionID = in.PositionID
	}
	if in.Date != "" {
		date, err := parseDate(in.Date)
		if err != nil {
			return nil, err
		}
		e.Date = *date
	}
	if !in.Hours.IsZero() {
		if !in.Hours.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		e.Hours = in.Hours
	}
	if in.Description != "" {
		e.Description = in.Description
	}
	e.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(entryRepo repository.TimeEntryRepository, activityRepo repository.ActivityLogRepository) error {
		if err := entryRepo.Update(e); err != nil {
			return err
		}
		return activityRepo.Create(newTimeEntryLog(actorID, e.ID, entity.ActionUpdated, e))
	})
	if err != nil {
		return nil, err
	}
	return toTimeEntryResponse(e), nil
}

// Delete elimina una imputación y registra el borrado en la bitácora.
func (uc *TimeEntryUseCase) Delete(ctx context.Context, actorID, id string) error {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(entryRepo repository.TimeEntryRepository, activityRepo repository.ActivityLogRepository) error {
		if err := entryRepo.Delete(id); err != nil {
			return err
		}
		return activityRepo.Create(newTimeEntryLog(actorID, id, entity.ActionDeleted, e))
	})
}

func newTimeEntryLog(actorID, entryID, action string, e *entity.TimeEntry) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		EntityType: "time_entry",
		EntityID:   entryID,
		Action:     action,
		Detail:     fmt.Sprintf("%s horas en puesto %s el %s", e.Hours.String(), e.PositionID, e.Date.Format(dateLayout)),
		CreatedAt:  time.Now(),
	}
}

func toTimeEntryResponse(e *entity.TimeEntry) *dto.TimeEntryResponse {
	return &dto.TimeEntryResponse{
		ID:          e.ID,
		PositionID:  e.PositionID,
		UserID:      e.UserID,
		Date:        e.Date.Format(dateLayout),
		Hours:       e.Hours,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
