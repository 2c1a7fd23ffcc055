package repository

import (
	"time"

	"github.com/tu-usuario/resto-pro/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el libro de movimientos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(ingredientID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	Delete(id string) error
}
