package inventory

import (
	"context"

	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el asiento del movimiento y la
// actualización del saldo del ingrediente no sean observables por separado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		ingRepo repository.IngredientRepository,
	) error) error
}
