package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleConsultant = "consultant"
)

// User representa un usuario de la consultora (consultor, gerente o administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, manager, consultant
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
