package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para mercancía de venta directa.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	StockQty    decimal.Decimal `json:"stock_qty"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	StockQty    decimal.Decimal `json:"stock_qty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreatePromotionRequest body para promociones.
type CreatePromotionRequest struct {
	Code          string          `json:"code" validate:"required,uppercase"`
	Description   string          `json:"description"`
	DiscountType  string          `json:"discount_type" validate:"required,oneof=percent fixed"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	StartsAt      time.Time       `json:"starts_at" validate:"required"`
	EndsAt        time.Time       `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

// PromotionResponse representación pública de una promoción.
type PromotionResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Description   string          `json:"description,omitempty"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	StartsAt      time.Time       `json:"starts_at"`
	EndsAt        time.Time       `json:"ends_at"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateTableRequest body para mesas.
type CreateTableRequest struct {
	Number   int `json:"number" validate:"required,min=1"`
	Capacity int `json:"capacity" validate:"required,min=1"`
}

// TableResponse representación pública de una mesa.
type TableResponse struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// UpdateCustomerRequest edición de cliente desde el back office.
type UpdateCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	IsActive *bool  `json:"is_active"`
}

// SettingRequest upsert de un par clave/valor.
type SettingRequest struct {
	Key      string `json:"key" validate:"required"`
	Value    string `json:"value"`
	IsPublic bool   `json:"is_public"`
}

// SettingResponse representación de un setting.
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	IsPublic  bool      `json:"is_public"`
	UpdatedAt time.Time `json:"updated_at"`
}
