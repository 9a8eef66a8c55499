package repository

import "github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByName(name string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Contact, error)
	Update(contact *entity.Contact) error
	Delete(id string) error
}
