// Package pdf genera la versión imprimible del reporte mensual de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del restaurante  │  Período del reporte     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingredientes / Entradas / Salidas / Reponer / Neg.   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingrediente | Apertura | Entr. | Sal. | Cierre |    │
//	│         Uso prom. | Reponer                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/resto-pro/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 155, Green: 34, Blue: 38}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 30}
)

// MonthlyReportGenerator produce el PDF del dashboard mensual usando Maroto v2.
type MonthlyReportGenerator struct{}

// NewMonthlyReportGenerator construye el generador.
func NewMonthlyReportGenerator() *MonthlyReportGenerator { return &MonthlyReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MonthlyReportGenerator) Generate(restaurantName string, report *dto.MonthlyReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte mensual de inventario", true).
		WithAuthor(restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(restaurantName, report.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Inventory) {
		m.AddRows(r)
	}

	if len(report.Inventory) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin ingredientes activos en el período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del restaurante (izq) y período (der).
func headerRow(restaurantName, period string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(restaurantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte mensual de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// kpiRow: tarjetas resumidas en una sola fila.
func kpiRow(kpis dto.MonthlyReportKPIs) core.Row {
	card := func(label, value string, alert bool) core.Col {
		valueColor := colorPrimary
		if alert {
			valueColor = colorAlert
		}
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: valueColor, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		card("Ingredientes", fmt.Sprintf("%d", kpis.TotalIngredients), false),
		card("Entradas", kpis.TotalStockIn.StringFixed(2), false),
		card("Salidas", kpis.TotalStockOut.StringFixed(2), false),
		card("Por reponer", fmt.Sprintf("%d", kpis.ReorderCount), kpis.ReorderCount > 0),
		card("Saldo negativo", fmt.Sprintf("%d", kpis.NegativeStockCount), kpis.NegativeStockCount > 0),
		col.New(1),
	)
}

// tableHeaderRow: cabecera de la tabla de ingredientes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ingrediente", 3, align.Left),
		h("Unidad", 1, align.Center),
		h("Apertura", 2, align.Right),
		h("Entradas", 1, align.Right),
		h("Salidas", 1, align.Right),
		h("Cierre", 2, align.Right),
		h("Uso prom.", 1, align.Right),
		h("Reponer", 1, align.Center),
	)
}

// tableRows: una fila por ingrediente; los cierres negativos van en rojo.
func tableRows(inventory []dto.MonthlyInventoryRowDTO) []core.Row {
	result := make([]core.Row, 0, len(inventory))
	for _, r := range inventory {
		closingColor := (*props.Color)(nil)
		if r.ClosingStock.IsNegative() {
			closingColor = colorAlert
		}
		reorder := ""
		if r.NeedsReorder {
			reorder = "SÍ"
		}
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(r.IngredientName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.OpeningStock.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.StockIn.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.StockOut.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.ClosingStock.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: closingColor,
			})),
			col.New(1).Add(text.New(r.AvgMonthlyUsage.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(reorder, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: colorAlert,
			})),
		))
	}
	return result
}
