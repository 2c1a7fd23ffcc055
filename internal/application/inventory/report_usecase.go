package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	domaininv "github.com/tu-usuario/resto-pro/internal/domain/inventory"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

// MonthlyReportUseCase genera el dashboard de conciliación mensual.
// Función pura del estado persistido: cada petición recalcula desde el libro
// de movimientos, sin caché.
type MonthlyReportUseCase struct {
	reportRepo repository.ReportRepository
	yearWindow int
}

// NewMonthlyReportUseCase construye el caso de uso. yearWindow acota los años
// aceptados hacia atrás (config INVENTORY_REPORT_YEAR_WINDOW).
func NewMonthlyReportUseCase(reportRepo repository.ReportRepository, yearWindow int) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{reportRepo: reportRepo, yearWindow: yearWindow}
}

// GetMonthlyDashboard devuelve una fila por ingrediente activo creado antes
// del fin del período (sin filas retroactivas fabricadas), ordenadas por
// nombre, más los KPIs agregados. Cierres negativos se reportan tal cual.
func (uc *MonthlyReportUseCase) GetMonthlyDashboard(ctx context.Context, year, month int) (*dto.MonthlyReportDTO, error) {
	period, err := domaininv.NewPeriod(year, month, uc.yearWindow)
	if err != nil {
		return nil, err
	}

	rows, err := uc.reportRepo.GetMonthlyAggregates(ctx, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: agregados: %w", err)
	}

	kpis := dto.MonthlyReportKPIs{
		TotalStockIn:  decimal.Zero,
		TotalStockOut: decimal.Zero,
	}
	inventory := make([]dto.MonthlyInventoryRowDTO, 0, len(rows))
	for _, r := range rows {
		closing := domaininv.ClosingStock(r.CurrentStock, r.NetAfter)
		opening := domaininv.OpeningStock(closing, r.StockIn, r.StockOut)
		avg := domaininv.TrailingAvgUsage(r.StockOut, r.OutPrev1, r.OutPrev2)
		needsReorder := domaininv.NeedsReorder(closing, r.ReorderLevel)

		inventory = append(inventory, dto.MonthlyInventoryRowDTO{
			IngredientID:    r.IngredientID,
			IngredientName:  r.Name,
			Unit:            r.Unit,
			OpeningStock:    opening,
			StockIn:         r.StockIn,
			StockOut:        r.StockOut,
			ClosingStock:    closing,
			AvgMonthlyUsage: avg.Round(2), // solo presentación; la comparación de reorden usa el cierre sin redondear
			NeedsReorder:    needsReorder,
		})

		kpis.TotalIngredients++
		kpis.TotalStockIn = kpis.TotalStockIn.Add(r.StockIn)
		kpis.TotalStockOut = kpis.TotalStockOut.Add(r.StockOut)
		if needsReorder {
			kpis.ReorderCount++
		}
		if closing.IsNegative() {
			kpis.NegativeStockCount++
		}
	}

	return &dto.MonthlyReportDTO{
		Period:    period.Label(),
		Year:      period.Year,
		Month:     int(period.Month),
		KPIs:      kpis,
		Inventory: inventory,
	}, nil
}
