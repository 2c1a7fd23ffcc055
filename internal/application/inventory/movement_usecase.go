package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

const movementDateLayout = "2006-01-02"

// MovementUseCase registra y elimina movimientos de inventario de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre el ingrediente
// para serializar actualizaciones concurrentes del saldo.
type MovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository // atado al pool, solo lecturas
}

// NewMovementUseCase construye el caso de uso. movRepo sirve los listados
// fuera de transacción; las mutaciones siempre pasan por txRunner.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// List devuelve movimientos filtrados por ingrediente y rango de fechas.
func (uc *MovementUseCase) List(ingredientID string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	movs, err := uc.movRepo.List(ingredientID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// PostMovement valida la entrada, y en una sola transacción bloquea la fila
// del ingrediente, inserta el asiento y actualiza el saldo (+qty IN, −qty OUT).
// Una salida que deje el saldo negativo NO se rechaza: el saldo negativo se
// reporta en el dashboard como señal de error de captura.
func (uc *MovementUseCase) PostMovement(ctx context.Context, userID string, in dto.PostMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	movDate, err := time.Parse(movementDateLayout, in.MovementDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		IngredientID: in.IngredientID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		MovementDate: movDate,
		Note:         in.Note,
		CreatedAt:    now,
		CreatedBy:    userID,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		ingRepo repository.IngredientRepository,
	) error {
		// Bloquea la fila del ingrediente: dos posts concurrentes contra el
		// mismo ingrediente se serializan aquí (evita lost update del saldo).
		ing, err := ingRepo.GetForUpdate(in.IngredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		if !ing.IsActive {
			return domain.ErrInactive
		}
		newStock := ing.CurrentStock
		if in.Type == entity.MovementTypeIN {
			newStock = newStock.Add(in.Quantity)
		} else {
			newStock = newStock.Sub(in.Quantity)
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return ingRepo.UpdateStock(ing.ID, newStock)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// DeleteMovement revierte el efecto del movimiento sobre el saldo
// (re-débito si era IN, re-crédito si era OUT) y elimina el asiento, todo en
// la misma transacción. ErrNotFound si no existe; los saldos quedan intactos.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, movementID string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		ingRepo repository.IngredientRepository,
	) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		ing, err := ingRepo.GetForUpdate(mov.IngredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		newStock := ing.CurrentStock
		if mov.Type == entity.MovementTypeIN {
			newStock = newStock.Sub(mov.Quantity)
		} else {
			newStock = newStock.Add(mov.Quantity)
		}
		if err := ingRepo.UpdateStock(ing.ID, newStock); err != nil {
			return err
		}
		return movRepo.Delete(mov.ID)
	})
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		IngredientID: m.IngredientID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		MovementDate: m.MovementDate.Format(movementDateLayout),
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}
