package repository

import "github.com/tu-usuario/resto-pro/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para categorías del menú.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(onlyActive bool) ([]*entity.Category, error)
	SetActive(id string, active bool) error
	Delete(id string) error
}

// MenuItemRepository define el puerto de persistencia para ítems del menú.
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	// List filtra por categoría (vacío = todas) y disponibilidad.
	List(categoryID string, onlyAvailable bool, limit, offset int) ([]*entity.MenuItem, error)
	SetAvailable(id string, available bool) error
	Delete(id string) error
}
