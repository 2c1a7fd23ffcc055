package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest body para POST /api/admin/ingredients.
type CreateIngredientRequest struct {
	Name            string          `json:"name" validate:"required"`
	Unit            string          `json:"unit" validate:"required,oneof=kg g l ml pcs units"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	ReorderLevel    decimal.Decimal `json:"reorder_level"`
	SupplierName    string          `json:"supplier_name"`
	SupplierContact string          `json:"supplier_contact"`
	Notes           string          `json:"notes"`
}

// UpdateIngredientRequest body para PUT /api/admin/ingredients/:id.
// No incluye current_stock: el saldo solo cambia vía movimientos.
type UpdateIngredientRequest struct {
	Name            string          `json:"name" validate:"required"`
	Unit            string          `json:"unit" validate:"required,oneof=kg g l ml pcs units"`
	ReorderLevel    decimal.Decimal `json:"reorder_level"`
	SupplierName    string          `json:"supplier_name"`
	SupplierContact string          `json:"supplier_contact"`
	Notes           string          `json:"notes"`
}

// IngredientResponse representación pública de un ingrediente.
type IngredientResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	ReorderLevel    decimal.Decimal `json:"reorder_level"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	SupplierContact string          `json:"supplier_contact,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PostMovementRequest body para POST /api/admin/stock-movements.
type PostMovementRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required"`
	Type         string          `json:"type" validate:"required,oneof=IN OUT"`
	Quantity     decimal.Decimal `json:"quantity"`
	MovementDate string          `json:"movement_date" validate:"required,datetime=2006-01-02"`
	Note         string          `json:"note"`
}

// MovementResponse representación de un movimiento registrado.
type MovementResponse struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredient_id"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	MovementDate string          `json:"movement_date"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MonthlyInventoryRowDTO una fila del reporte mensual (proyección, nunca persistida).
type MonthlyInventoryRowDTO struct {
	IngredientID    string          `json:"ingredient_id"`
	IngredientName  string          `json:"ingredient_name"`
	Unit            string          `json:"unit"`
	OpeningStock    decimal.Decimal `json:"opening_stock"`
	StockIn         decimal.Decimal `json:"stock_in"`
	StockOut        decimal.Decimal `json:"stock_out"`
	ClosingStock    decimal.Decimal `json:"closing_stock"`
	AvgMonthlyUsage decimal.Decimal `json:"avg_monthly_usage"`
	NeedsReorder    bool            `json:"needs_reorder"`
}

// MonthlyReportKPIs tarjetas del dashboard de inventario.
type MonthlyReportKPIs struct {
	TotalIngredients   int             `json:"total_ingredients"`
	TotalStockIn       decimal.Decimal `json:"total_stock_in"`
	TotalStockOut      decimal.Decimal `json:"total_stock_out"`
	ReorderCount       int             `json:"reorder_count"`
	NegativeStockCount int             `json:"negative_stock_count"`
}

// MonthlyReportDTO respuesta de GET /api/admin/inventory-reports/monthly-dashboard.
type MonthlyReportDTO struct {
	Period    string                   `json:"period"` // ej: "Septiembre 2026"
	Year      int                      `json:"year"`
	Month     int                      `json:"month"`
	KPIs      MonthlyReportKPIs        `json:"kpis"`
	Inventory []MonthlyInventoryRowDTO `json:"inventory"`
}

// PurchaseSuggestionDTO sugerencia de compra (estado "ahora", independiente del mes).
type PurchaseSuggestionDTO struct {
	IngredientID      string          `json:"ingredient_id"`
	IngredientName    string          `json:"ingredient_name"`
	Unit              string          `json:"unit"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	ReorderLevel      decimal.Decimal `json:"reorder_level"`
	SuggestedQuantity decimal.Decimal `json:"suggested_quantity"`
	Priority          string          `json:"priority"` // CRITICAL | WARNING
}
