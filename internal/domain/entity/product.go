package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es mercancía de venta directa (empaquetados, merchandising),
// separada del menú y de los ingredientes de cocina.
type Product struct {
	ID        string
	SKU       string
	Name      string
	Description string
	Price     decimal.Decimal
	StockQty  decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
