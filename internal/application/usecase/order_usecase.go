package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos: creación transaccional con snapshot
// de precios, seguimiento público y gestión de estados desde el back office.
type OrderUseCase struct {
	txRunner  OrderTxRunner
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner OrderTxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// Create crea un pedido en estado pending. Los precios se leen y congelan en
// la misma transacción que persiste el pedido; el descuento se calcula si el
// código de promoción está vigente al momento de crear.
func (uc *OrderUseCase) Create(ctx context.Context, customerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var created *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		menuRepo repository.MenuItemRepository,
		promoRepo repository.PromotionRepository,
	) error {
		now := time.Now()
		order := &entity.Order{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			TableID:    in.TableID,
			Status:     entity.OrderPending,
			Note:       in.Note,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		subtotal := decimal.Zero
		for _, it := range in.Items {
			item, err := menuRepo.GetByID(it.MenuItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if !item.IsAvailable {
				return domain.ErrInactive
			}
			lineTotal := item.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			order.Items = append(order.Items, entity.OrderItem{
				ID:         uuid.New().String(),
				OrderID:    order.ID,
				MenuItemID: item.ID,
				Name:       item.Name,
				Quantity:   it.Quantity,
				UnitPrice:  item.Price,
				LineTotal:  lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)
		}

		order.Subtotal = subtotal
		order.Discount = decimal.Zero
		if code := strings.ToUpper(strings.TrimSpace(in.PromotionCode)); code != "" {
			promo, err := promoRepo.GetByCode(code)
			if err != nil {
				return err
			}
			discount, err := Discount(promo, subtotal, now)
			if err != nil {
				return err
			}
			order.Discount = discount
			order.PromotionCode = code
		}
		order.Total = order.Subtotal.Sub(order.Discount)

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(o), nil
}

// Track devuelve la vista pública de seguimiento de un pedido.
func (uc *OrderUseCase) Track(id string) (*dto.OrderTrackResponse, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.OrderTrackResponse{
		ID:        o.ID,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}, nil
}

// UpdateStatus mueve el pedido a otro estado del ciclo de vida. Los pedidos
// entregados o cancelados son terminales.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.Status == entity.OrderDelivered || o.Status == entity.OrderCancelled {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return toOrderResponse(o), nil
}

// List lista pedidos filtrando por estado y cliente.
func (uc *OrderUseCase) List(status, customerID string, limit, offset int) ([]dto.OrderResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.List(status, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Delete elimina un pedido con sus líneas.
func (uc *OrderUseCase) Delete(id string) error {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			LineTotal:  it.LineTotal,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		TableID:       o.TableID,
		Status:        o.Status,
		Items:         items,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.Total,
		PromotionCode: o.PromotionCode,
		Note:          o.Note,
		CreatedAt:     o.CreatedAt,
	}
}
