package dto

import "time"

// CreateNoteRequest alta de nota CRM bajo un cliente.
type CreateNoteRequest struct {
	Body string `json:"body"`
}

// UpdateNoteRequest cambio del cuerpo de una nota.
type UpdateNoteRequest struct {
	Body string `json:"body"`
}

// NoteResponse nota serializada.
type NoteResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateActivityLogRequest alta manual de entrada de bitácora.
type CreateActivityLogRequest struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"` // created, updated, deleted
	Detail     string `json:"detail"`
}

// ActivityLogResponse entrada de bitácora serializada.
type ActivityLogResponse struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityLogListRequest filtros de la bitácora.
type ActivityLogListRequest struct {
	ActorID    string `query:"actor_id"`
	EntityType string `query:"entity_type"`
	EntityID   string `query:"entity_id"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}
