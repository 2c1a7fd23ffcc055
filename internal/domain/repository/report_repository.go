package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAggregateRow resultado crudo de la consulta de conciliación mensual.
// Lo produce la DB en una sola pasada; el use case deriva apertura/cierre.
type MonthlyAggregateRow struct {
	IngredientID string
	Name         string
	Unit         string
	CurrentStock decimal.Decimal
	ReorderLevel decimal.Decimal
	NetAfter     decimal.Decimal // entradas − salidas con fecha posterior al fin del período
	StockIn      decimal.Decimal // entradas dentro del período
	StockOut     decimal.Decimal // salidas dentro del período
	OutPrev1     decimal.Decimal // salidas del mes anterior
	OutPrev2     decimal.Decimal // salidas de dos meses atrás
}

// SuggestionRow resultado crudo para sugerencias de compra (estado "ahora").
type SuggestionRow struct {
	IngredientID string
	Name         string
	Unit         string
	CurrentStock decimal.Decimal
	ReorderLevel decimal.Decimal
}

// ReportRepository define las consultas de lectura del motor de conciliación.
// Las implementaciones son read-only; cada petición recalcula desde el libro
// de movimientos (sin caché, frescura sobre cómputo).
type ReportRepository interface {
	// GetMonthlyAggregates devuelve una fila por ingrediente activo creado
	// antes del fin del período, ordenadas por nombre ascendente.
	GetMonthlyAggregates(ctx context.Context, periodStart, periodEnd time.Time) ([]MonthlyAggregateRow, error)

	// GetIngredientsBelowReorder devuelve los ingredientes activos con
	// current_stock <= reorder_level.
	GetIngredientsBelowReorder(ctx context.Context) ([]SuggestionRow, error)
}
