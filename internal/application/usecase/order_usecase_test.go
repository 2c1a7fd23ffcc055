package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
	"github.com/tu-usuario/resto-pro/internal/domain"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el flujo de pedidos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) List(status, customerID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

type fakeMenuRepo struct {
	items map[string]*entity.MenuItem
}

func (r *fakeMenuRepo) Create(item *entity.MenuItem) error { r.items[item.ID] = item; return nil }

func (r *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeMenuRepo) Update(item *entity.MenuItem) error { r.items[item.ID] = item; return nil }

func (r *fakeMenuRepo) List(categoryID string, onlyAvailable bool, limit, offset int) ([]*entity.MenuItem, error) {
	return nil, nil
}

func (r *fakeMenuRepo) SetAvailable(id string, available bool) error { return nil }

func (r *fakeMenuRepo) Delete(id string) error { delete(r.items, id); return nil }

type fakePromoRepo struct {
	promos map[string]*entity.Promotion // por código
}

func (r *fakePromoRepo) Create(p *entity.Promotion) error { r.promos[p.Code] = p; return nil }
func (r *fakePromoRepo) GetByID(id string) (*entity.Promotion, error) {
	for _, p := range r.promos {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakePromoRepo) GetByCode(code string) (*entity.Promotion, error) {
	p, ok := r.promos[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakePromoRepo) Update(p *entity.Promotion) error { return nil }

func (r *fakePromoRepo) SetActive(id string, active bool) error { return nil }

func (r *fakePromoRepo) List(limit, offset int) ([]*entity.Promotion, error) { return nil, nil }

func (r *fakePromoRepo) Delete(id string) error { return nil }

type fakeOrderTxRunner struct {
	orderRepo *fakeOrderRepo
	menuRepo  *fakeMenuRepo
	promoRepo *fakePromoRepo
}

func (tr *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuItemRepository,
	promoRepo repository.PromotionRepository,
) error) error {
	return fn(tr.orderRepo, tr.menuRepo, tr.promoRepo)
}

func buildOrderUC(items []*entity.MenuItem, promos []*entity.Promotion) (*usecase.OrderUseCase, *fakeOrderRepo) {
	tr := &fakeOrderTxRunner{
		orderRepo: newFakeOrderRepo(),
		menuRepo:  &fakeMenuRepo{items: make(map[string]*entity.MenuItem)},
		promoRepo: &fakePromoRepo{promos: make(map[string]*entity.Promotion)},
	}
	for _, it := range items {
		tr.menuRepo.items[it.ID] = it
	}
	for _, p := range promos {
		tr.promoRepo.promos[p.Code] = p
	}
	return usecase.NewOrderUseCase(tr, tr.orderRepo), tr.orderRepo
}

func menuItem(id, name, price string) *entity.MenuItem {
	return &entity.MenuItem{
		ID:          id,
		CategoryID:  "cat-1",
		Name:        name,
		Price:       dec(price),
		IsAvailable: true,
	}
}

func promoVigente(code, discountType, value string) *entity.Promotion {
	now := time.Now()
	return &entity.Promotion{
		ID:            "promo-" + code,
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: dec(value),
		StartsAt:      now.Add(-time.Hour),
		EndsAt:        now.Add(time.Hour),
		IsActive:      true,
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── Create ────────────────────────────────────────────────────────────────────

// El pedido congela el precio del ítem al momento de crear: nombre, precio
// unitario y total de línea quedan en el pedido, no referenciados al menú.
func TestOrderCreate_CongelaPrecios(t *testing.T) {
	uc, repo := buildOrderUC([]*entity.MenuItem{
		menuItem("item-arepa", "Arepa rellena", "12.50"),
		menuItem("item-jugo", "Jugo natural", "6.00"),
	}, nil)

	resp, err := uc.Create(context.Background(), "cust-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{MenuItemID: "item-arepa", Quantity: 2},
			{MenuItemID: "item-jugo", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, resp.Status)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Arepa rellena", resp.Items[0].Name)
	assert.True(t, dec("25").Equal(resp.Items[0].LineTotal))
	assert.True(t, dec("31").Equal(resp.Subtotal))
	assert.True(t, dec("31").Equal(resp.Total))

	stored, _ := repo.GetByID(resp.ID)
	require.NotNil(t, stored, "el pedido debe quedar persistido")
	assert.Equal(t, "cust-1", stored.CustomerID)
}

func TestOrderCreate_DescuentoPorcentual(t *testing.T) {
	uc, _ := buildOrderUC(
		[]*entity.MenuItem{menuItem("item-1", "Bandeja", "40.00")},
		[]*entity.Promotion{promoVigente("VERANO10", entity.DiscountPercent, "10")},
	)

	resp, err := uc.Create(context.Background(), "", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "item-1", Quantity: 1}},
		PromotionCode: "verano10", // el código se normaliza a mayúsculas
	})
	require.NoError(t, err)

	assert.True(t, dec("4").Equal(resp.Discount), "10 por ciento de 40")
	assert.True(t, dec("36").Equal(resp.Total))
	assert.Equal(t, "VERANO10", resp.PromotionCode)
}

// Un descuento fijo mayor al subtotal se recorta al subtotal: el total nunca
// queda negativo.
func TestOrderCreate_DescuentoFijoNoDejaTotalNegativo(t *testing.T) {
	uc, _ := buildOrderUC(
		[]*entity.MenuItem{menuItem("item-1", "Café", "5.00")},
		[]*entity.Promotion{promoVigente("MENOS20", entity.DiscountFixed, "20")},
	)

	resp, err := uc.Create(context.Background(), "", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "item-1", Quantity: 1}},
		PromotionCode: "MENOS20",
	})
	require.NoError(t, err)

	assert.True(t, dec("5").Equal(resp.Discount))
	assert.True(t, resp.Total.IsZero())
}

func TestOrderCreate_PromocionVencidaSeRechaza(t *testing.T) {
	promo := promoVigente("VIEJA", entity.DiscountPercent, "10")
	promo.EndsAt = time.Now().Add(-time.Minute)
	uc, _ := buildOrderUC(
		[]*entity.MenuItem{menuItem("item-1", "Café", "5.00")},
		[]*entity.Promotion{promo},
	)

	_, err := uc.Create(context.Background(), "", dto.CreateOrderRequest{
		Items:         []dto.OrderItemRequest{{MenuItemID: "item-1", Quantity: 1}},
		PromotionCode: "VIEJA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ItemNoDisponibleSeRechaza(t *testing.T) {
	item := menuItem("item-1", "Plato fuera de carta", "18.00")
	item.IsAvailable = false
	uc, repo := buildOrderUC([]*entity.MenuItem{item}, nil)

	_, err := uc.Create(context.Background(), "", dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{MenuItemID: "item-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInactive)
	assert.Empty(t, repo.orders, "no debe persistirse ningún pedido")
}

func TestOrderCreate_ValidaEntrada(t *testing.T) {
	uc, _ := buildOrderUC([]*entity.MenuItem{menuItem("item-1", "Café", "5.00")}, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, "", dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = uc.Create(ctx, "", dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{MenuItemID: "item-1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Create(ctx, "", dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{MenuItemID: "no-existe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── UpdateStatus ──────────────────────────────────────────────────────────────

func TestOrderUpdateStatus_EstadosTerminales(t *testing.T) {
	uc, repo := buildOrderUC([]*entity.MenuItem{menuItem("item-1", "Café", "5.00")}, nil)
	ctx := context.Background()

	resp, err := uc.Create(ctx, "", dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{MenuItemID: "item-1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(resp.ID, entity.OrderDelivered)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(resp.ID, entity.OrderPreparing)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un pedido entregado es terminal")

	stored, _ := repo.GetByID(resp.ID)
	assert.Equal(t, entity.OrderDelivered, stored.Status)
}

func TestOrderUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := buildOrderUC(nil, nil)
	_, err := uc.UpdateStatus("order-x", "volando")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Discount (función de dominio de promociones) ──────────────────────────────

func TestDiscount_PorcentajeRedondeaADosDecimales(t *testing.T) {
	promo := promoVigente("P15", entity.DiscountPercent, "15")

	got, err := usecase.Discount(promo, dec("33.33"), time.Now())
	require.NoError(t, err)
	assert.True(t, dec("5").Equal(got), "33.33 * 0.15 = 4.9995, redondeado 5.00")
}

func TestDiscount_PromocionInactiva(t *testing.T) {
	promo := promoVigente("OFF", entity.DiscountPercent, "10")
	promo.IsActive = false

	_, err := usecase.Discount(promo, dec("100"), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = usecase.Discount(nil, dec("100"), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "código inexistente llega como nil")
}
