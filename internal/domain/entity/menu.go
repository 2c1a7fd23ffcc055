package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category agrupa ítems del menú (entradas, platos fuertes, bebidas...).
type Category struct {
	ID           string
	Name         string
	Description  string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MenuItem es un plato o bebida publicado en el storefront.
type MenuItem struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	IsAvailable bool // visible y pedible en el storefront
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
