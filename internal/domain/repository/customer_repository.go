package repository

import "github.com/tu-usuario/resto-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes del storefront.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	FindByEmail(email string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// List con limit <= 0 devuelve todas las filas, sin paginar.
	List(limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}

// UserRepository define el puerto de persistencia para usuarios del back office.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
