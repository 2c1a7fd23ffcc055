package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Ingredient.
const (
	UnitKg    = "kg"
	UnitG     = "g"
	UnitL     = "l"
	UnitMl    = "ml"
	UnitPcs   = "pcs"
	UnitUnits = "units"
)

// ValidUnit indica si la unidad pertenece al catálogo permitido.
func ValidUnit(u string) bool {
	switch u {
	case UnitKg, UnitG, UnitL, UnitMl, UnitPcs, UnitUnits:
		return true
	}
	return false
}

// Ingredient representa una materia prima de cocina con su saldo corriente.
// CurrentStock es el saldo materializado tras todos los movimientos registrados;
// solo cambia dentro de la transacción que inserta o elimina un movimiento.
// Puede quedar negativo: se reporta tal cual como señal de error de captura.
type Ingredient struct {
	ID              string
	Name            string
	Unit            string          // kg, g, l, ml, pcs, units
	CurrentStock    decimal.Decimal // saldo corriente (denormalizado)
	ReorderLevel    decimal.Decimal // umbral de reposición
	SupplierName    string
	SupplierContact string
	Notes           string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
