package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus indica si el estado pertenece al ciclo de vida del pedido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order es un pedido del storefront o de mesa. Totales en decimal;
// Discount proviene de la promoción aplicada (si hay).
type Order struct {
	ID            string
	CustomerID    string // vacío = pedido de mostrador capturado por staff
	TableID       string // vacío = pedido para llevar
	Status        string
	Items         []OrderItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PromotionCode string
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem es una línea del pedido; UnitPrice queda congelado al precio
// del ítem de menú en el momento de la compra.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Name       string // snapshot del nombre del ítem
	Quantity   int
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
}
