package entity

import "time"

// Client representa un cliente de la consultora. Es dueño de cero o más Projects.
type Client struct {
	ID        string
	Name      string
	TaxID     string // NIT o identificación fiscal (opcional)
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact representa una persona de contacto dentro de un Client.
type Contact struct {
	ID        string
	ClientID  string
	Name      string
	Title     string // cargo dentro de la empresa cliente
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
