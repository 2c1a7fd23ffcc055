package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea del pedido entrante.
type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	TableID       string             `json:"table_id"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PromotionCode string             `json:"promotion_code"`
	Note          string             `json:"note"`
}

// OrderItemResponse una línea del pedido persistido.
type OrderItemResponse struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// OrderResponse representación de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id,omitempty"`
	TableID       string              `json:"table_id,omitempty"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Total         decimal.Decimal     `json:"total"`
	PromotionCode string              `json:"promotion_code,omitempty"`
	Note          string              `json:"note,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// OrderTrackResponse vista pública de seguimiento (GET /api/orders/:id/track).
type OrderTrackResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStatusRequest body para PATCH .../status (pedidos y reservas).
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateReservationRequest body para POST /api/reservations (y back office).
type CreateReservationRequest struct {
	TableID     string    `json:"table_id" validate:"required"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone" validate:"omitempty,max=30"`
	ReservedAt  time.Time `json:"reserved_at" validate:"required"`
	PartySize   int       `json:"party_size" validate:"required,min=1"`
	Note        string    `json:"note"`
}

// ReservationResponse representación de una reserva.
type ReservationResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id,omitempty"`
	TableID     string    `json:"table_id"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ReservedAt  time.Time `json:"reserved_at"`
	PartySize   int       `json:"party_size"`
	Status      string    `json:"status"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
