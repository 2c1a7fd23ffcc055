package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada (compra/recepción)
	MovementTypeOUT = "OUT" // salida (consumo/merma)
)

// StockMovement es un asiento del libro de inventario contra un ingrediente.
// Quantity siempre es positiva; el tipo indica el signo del efecto sobre el saldo.
// Eliminar un movimiento revierte su efecto en la misma transacción.
type StockMovement struct {
	ID           string
	IngredientID string
	Type         string          // IN, OUT
	Quantity     decimal.Decimal // > 0
	MovementDate time.Time       // fecha calendario del movimiento
	Note         string
	CreatedAt    time.Time
	CreatedBy    string // UserID del staff que registró
}
