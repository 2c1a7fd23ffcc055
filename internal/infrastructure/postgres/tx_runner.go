package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/resto-pro/internal/application/inventory"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and usecase.OrderTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de inventario atados a la tx
// y hace Commit o Rollback. Fallos de serialización se traducen a ErrConflictRetry.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	ingRepo repository.IngredientRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	ingRepo := NewIngredientRepository(tx)

	if err := fn(movRepo, ingRepo); err != nil {
		if isRetryableTxError(err) {
			return domain.ErrConflictRetry
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isRetryableTxError(err) {
			return domain.ErrConflictRetry
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder inicia una transacción con los repos que necesita la creación de
// pedidos (snapshot de precios y promoción junto con el insert del pedido).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuItemRepository,
	promoRepo repository.PromotionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	menuRepo := NewMenuItemRepository(tx)
	promoRepo := NewPromotionRepository(tx)

	if err := fn(orderRepo, menuRepo, promoRepo); err != nil {
		if isRetryableTxError(err) {
			return domain.ErrConflictRetry
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isRetryableTxError(err) {
			return domain.ErrConflictRetry
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
