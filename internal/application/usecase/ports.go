package usecase

import (
	"context"

	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción de base de datos,
// entregando repositorios atados a esa transacción. El pedido y sus líneas
// se persisten atómicamente junto con la lectura de precios y promoción.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		menuRepo repository.MenuItemRepository,
		promoRepo repository.PromotionRepository,
	) error) error
}
