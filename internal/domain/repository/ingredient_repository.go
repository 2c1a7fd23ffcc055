package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para ingredientes (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (bloqueo de fila).
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	GetForUpdate(id string) (*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	// UpdateStock escribe el saldo materializado; solo el motor de
	// inventario lo invoca, siempre dentro de la transacción del movimiento.
	UpdateStock(id string, stock decimal.Decimal) error
	SetActive(id string, active bool) error
	// List con limit <= 0 devuelve todas las filas, sin paginar.
	List(onlyActive bool, limit, offset int) ([]*entity.Ingredient, error)
	Delete(id string) error
}
