package entity

import "time"

// Note representa una nota CRM asociada a un Client, escrita por un usuario.
type Note struct {
	ID        string
	ClientID  string
	AuthorID  string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
