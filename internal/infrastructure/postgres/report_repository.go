package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura del motor de conciliación mensual.
// Siempre recalcula desde el libro de movimientos; nada se cachea.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetMonthlyAggregates devuelve, en una sola pasada sobre stock_movements,
// todo lo que el use case necesita para derivar apertura y cierre de cada
// ingrediente activo: el neto posterior al período (para retroceder desde
// current_stock), entradas y salidas del período, y las salidas de los dos
// meses previos (promedio de uso). Ingredientes sin movimientos aparecen con
// sumas en cero gracias al LEFT JOIN.
func (r *ReportRepo) GetMonthlyAggregates(
	ctx context.Context,
	periodStart, periodEnd time.Time,
) ([]repository.MonthlyAggregateRow, error) {
	prev1Start := periodStart.AddDate(0, -1, 0)
	prev2Start := periodStart.AddDate(0, -2, 0)

	const query = `
	SELECT
	    i.id,
	    i.name,
	    i.unit,
	    i.current_stock,
	    i.reorder_level,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.movement_date >= $2 AND m.type = 'IN'),  0)
	  - COALESCE(SUM(m.quantity) FILTER (WHERE m.movement_date >= $2 AND m.type = 'OUT'), 0) AS net_after,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.movement_date >= $1 AND m.movement_date < $2 AND m.type = 'IN'),  0) AS stock_in,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.movement_date >= $1 AND m.movement_date < $2 AND m.type = 'OUT'), 0) AS stock_out,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.movement_date >= $3 AND m.movement_date < $1 AND m.type = 'OUT'), 0) AS out_prev1,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.movement_date >= $4 AND m.movement_date < $3 AND m.type = 'OUT'), 0) AS out_prev2
	FROM ingredients i
	LEFT JOIN stock_movements m ON m.ingredient_id = i.id
	WHERE i.is_active = true
	  AND i.created_at < $2
	GROUP BY i.id, i.name, i.unit, i.current_stock, i.reorder_level
	ORDER BY i.name ASC`

	rows, err := r.pool.Query(ctx, query, periodStart, periodEnd, prev1Start, prev2Start)
	if err != nil {
		return nil, fmt.Errorf("report.GetMonthlyAggregates: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyAggregateRow
	for rows.Next() {
		var row repository.MonthlyAggregateRow
		if err := rows.Scan(
			&row.IngredientID,
			&row.Name,
			&row.Unit,
			&row.CurrentStock,
			&row.ReorderLevel,
			&row.NetAfter,
			&row.StockIn,
			&row.StockOut,
			&row.OutPrev1,
			&row.OutPrev2,
		); err != nil {
			return nil, fmt.Errorf("report.GetMonthlyAggregates scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetIngredientsBelowReorder devuelve los ingredientes activos cuyo saldo
// actual está en o por debajo del umbral de reposición.
func (r *ReportRepo) GetIngredientsBelowReorder(ctx context.Context) ([]repository.SuggestionRow, error) {
	const query = `
	SELECT id, name, unit, current_stock, reorder_level
	FROM ingredients
	WHERE is_active = true
	  AND current_stock <= reorder_level
	ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.GetIngredientsBelowReorder: %w", err)
	}
	defer rows.Close()

	var results []repository.SuggestionRow
	for rows.Next() {
		var row repository.SuggestionRow
		if err := rows.Scan(&row.IngredientID, &row.Name, &row.Unit, &row.CurrentStock, &row.ReorderLevel); err != nil {
			return nil, fmt.Errorf("report.GetIngredientsBelowReorder scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
