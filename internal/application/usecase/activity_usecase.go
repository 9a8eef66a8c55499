package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// ActivityUseCase casos de uso de la bitácora de actividad (append-only).
type ActivityUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Create registra manualmente una entrada de bitácora.
func (uc *ActivityUseCase) Create(actorID string, in dto.CreateActivityLogRequest) (*dto.ActivityLogResponse, error) {
	if in.EntityType == "" || in.EntityID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Action {
	case entity.ActionCreated, entity.ActionUpdated, entity.ActionDeleted:
	default:
		return nil, domain.ErrInvalidInput
	}
	log := &entity.ActivityLog{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Action:     in.Action,
		Detail:     in.Detail,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(log); err != nil {
		return nil, err
	}
	return toActivityLogResponse(log), nil
}

// List devuelve entradas de bitácora según filtros, más recientes primero.
func (uc *ActivityUseCase) List(in dto.ActivityLogListRequest) ([]*dto.ActivityLogResponse, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	filter := repository.ActivityLogFilter{
		ActorID:    in.ActorID,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivityLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toActivityLogResponse(l))
	}
	return out, nil
}

func toActivityLogResponse(l *entity.ActivityLog) *dto.ActivityLogResponse {
	return &dto.ActivityLogResponse{
		ID:         l.ID,
		ActorID:    l.ActorID,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Action:     l.Action,
		Detail:     l.Detail,
		CreatedAt:  l.CreatedAt,
	}
}
