package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento de una promoción.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Promotion es un código de descuento aplicable al total de un pedido
// dentro de su ventana de vigencia.
type Promotion struct {
	ID            string
	Code          string
	Description   string
	DiscountType  string          // percent, fixed
	DiscountValue decimal.Decimal // porcentaje (0-100) o monto fijo
	StartsAt      time.Time
	EndsAt        time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ActiveAt indica si la promoción está vigente en el instante dado.
func (p *Promotion) ActiveAt(t time.Time) bool {
	return p.IsActive && !t.Before(p.StartsAt) && !t.After(p.EndsAt)
}
