package inventory

import "github.com/shopspring/decimal"

// Prioridades de sugerencia de compra.
const (
	PriorityCritical = "CRITICAL"
	PriorityWarning  = "WARNING"
)

var two = decimal.NewFromInt(2)

// SuggestionPolicy define el objetivo de reposición. El multiplicador es
// configurable (INVENTORY_RESTOCK_MULTIPLIER); el objetivo por defecto es
// reorder_level * 2.
type SuggestionPolicy struct {
	RestockMultiplier decimal.Decimal
}

// DefaultPolicy política con multiplicador 2.
func DefaultPolicy() SuggestionPolicy {
	return SuggestionPolicy{RestockMultiplier: two}
}

// NewPolicy construye la política desde el multiplicador de configuración.
// Valores no positivos caen al default.
func NewPolicy(multiplier float64) SuggestionPolicy {
	m := decimal.NewFromFloat(multiplier)
	if m.LessThanOrEqual(decimal.Zero) {
		return DefaultPolicy()
	}
	return SuggestionPolicy{RestockMultiplier: m}
}

// Priority clasifica qué tan por debajo del umbral está el stock:
// CRITICAL si current <= reorder/2, WARNING en el resto de casos bajo umbral.
func (p SuggestionPolicy) Priority(currentStock, reorderLevel decimal.Decimal) string {
	if currentStock.LessThanOrEqual(reorderLevel.Div(two)) {
		return PriorityCritical
	}
	return PriorityWarning
}

// SuggestedQuantity calcula la cantidad de compra sugerida:
// max(reorder_level*multiplicador − current_stock, reorder_level).
func (p SuggestionPolicy) SuggestedQuantity(currentStock, reorderLevel decimal.Decimal) decimal.Decimal {
	qty := reorderLevel.Mul(p.RestockMultiplier).Sub(currentStock)
	if qty.LessThan(reorderLevel) {
		return reorderLevel
	}
	return qty
}

// Deficit devuelve qué tan lejos del umbral está el stock (para ordenar).
func Deficit(currentStock, reorderLevel decimal.Decimal) decimal.Decimal {
	return reorderLevel.Sub(currentStock)
}
