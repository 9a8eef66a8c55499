package entity

import "time"

// Acciones registradas en la bitácora.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ActivityLog es una entrada append-only de la bitácora de actividad:
// quién hizo qué sobre qué entidad. Nunca se actualiza ni se borra.
type ActivityLog struct {
	ID         string
	ActorID    string // usuario que ejecutó la acción
	EntityType string // client, project, position, time_entry, note, user
	EntityID   string
	Action     string // created, updated, deleted
	Detail     string // descripción libre del cambio
	CreatedAt  time.Time
}
