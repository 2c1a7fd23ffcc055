package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appinv "github.com/tu-usuario/resto-pro/internal/application/inventory"
	"github.com/tu-usuario/resto-pro/internal/domain"
	domaininv "github.com/tu-usuario/resto-pro/internal/domain/inventory"
	"github.com/tu-usuario/resto-pro/internal/domain/repository"
)

type fakeReportRepo struct {
	aggregates   []repository.MonthlyAggregateRow
	belowReorder []repository.SuggestionRow

	gotStart time.Time
	gotEnd   time.Time
}

func (r *fakeReportRepo) GetMonthlyAggregates(ctx context.Context, periodStart, periodEnd time.Time) ([]repository.MonthlyAggregateRow, error) {
	r.gotStart, r.gotEnd = periodStart, periodEnd
	return r.aggregates, nil
}

func (r *fakeReportRepo) GetIngredientsBelowReorder(ctx context.Context) ([]repository.SuggestionRow, error) {
	return r.belowReorder, nil
}

// ── Dashboard mensual ─────────────────────────────────────────────────────────

// Escenario Arroz del motor completo: saldo corriente 50, neto posterior +20,
// movimientos del mes +40/-25. El dashboard debe mostrar apertura 15, cierre 30.
func TestGetMonthlyDashboard_DerivaAperturaYCierre(t *testing.T) {
	repo := &fakeReportRepo{aggregates: []repository.MonthlyAggregateRow{{
		IngredientID: "ing-arroz",
		Name:         "Arroz",
		Unit:         "kg",
		CurrentStock: dec("50"),
		ReorderLevel: dec("10"),
		NetAfter:     dec("20"),
		StockIn:      dec("40"),
		StockOut:     dec("25"),
		OutPrev1:     dec("30"),
		OutPrev2:     dec("35"),
	}}}
	uc := appinv.NewMonthlyReportUseCase(repo, 5)

	year := time.Now().Year()
	report, err := uc.GetMonthlyDashboard(context.Background(), year, 6)
	require.NoError(t, err)
	require.Len(t, report.Inventory, 1)

	row := report.Inventory[0]
	assert.True(t, dec("15").Equal(row.OpeningStock))
	assert.True(t, dec("30").Equal(row.ClosingStock))
	assert.True(t, dec("30").Equal(row.AvgMonthlyUsage), "(25+30+35)/3")
	assert.False(t, row.NeedsReorder)

	// Límites del período: [1 jun, 1 jul) del año consultado.
	assert.Equal(t, time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC), repo.gotStart)
	assert.Equal(t, time.Date(year, 7, 1, 0, 0, 0, 0, time.UTC), repo.gotEnd)
}

func TestGetMonthlyDashboard_KPIs(t *testing.T) {
	repo := &fakeReportRepo{aggregates: []repository.MonthlyAggregateRow{
		{
			IngredientID: "ing-a", Name: "Aceite", Unit: "l",
			CurrentStock: dec("2"), ReorderLevel: dec("5"),
			NetAfter: decimal.Zero, StockIn: dec("10"), StockOut: dec("8"),
		},
		{
			IngredientID: "ing-b", Name: "Sal", Unit: "kg",
			CurrentStock: dec("-3"), ReorderLevel: dec("4"),
			NetAfter: decimal.Zero, StockIn: decimal.Zero, StockOut: dec("7"),
		},
		{
			IngredientID: "ing-c", Name: "Tomate", Unit: "kg",
			CurrentStock: dec("40"), ReorderLevel: dec("10"),
			NetAfter: decimal.Zero, StockIn: dec("20"), StockOut: dec("5"),
		},
	}}
	uc := appinv.NewMonthlyReportUseCase(repo, 5)

	report, err := uc.GetMonthlyDashboard(context.Background(), time.Now().Year(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, report.KPIs.TotalIngredients)
	assert.True(t, dec("30").Equal(report.KPIs.TotalStockIn))
	assert.True(t, dec("20").Equal(report.KPIs.TotalStockOut))
	assert.Equal(t, 2, report.KPIs.ReorderCount, "Aceite y Sal están en o bajo umbral")
	assert.Equal(t, 1, report.KPIs.NegativeStockCount, "solo Sal cierra en negativo")
}

func TestGetMonthlyDashboard_MesSinIngredientes(t *testing.T) {
	uc := appinv.NewMonthlyReportUseCase(&fakeReportRepo{}, 5)

	report, err := uc.GetMonthlyDashboard(context.Background(), time.Now().Year(), 1)
	require.NoError(t, err)
	assert.Empty(t, report.Inventory)
	assert.Equal(t, 0, report.KPIs.TotalIngredients)
}

func TestGetMonthlyDashboard_PeriodoInvalido(t *testing.T) {
	uc := appinv.NewMonthlyReportUseCase(&fakeReportRepo{}, 5)
	ctx := context.Background()

	_, err := uc.GetMonthlyDashboard(ctx, time.Now().Year(), 13)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetMonthlyDashboard(ctx, time.Now().Year()+1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "años futuros fuera de la ventana")
}

// ── Sugerencias de compra ─────────────────────────────────────────────────────

func TestGetPurchaseSuggestions_OrdenCriticalPrimeroLuegoDeficit(t *testing.T) {
	repo := &fakeReportRepo{belowReorder: []repository.SuggestionRow{
		{IngredientID: "ing-w1", Name: "Queso", Unit: "kg", CurrentStock: dec("8"), ReorderLevel: dec("10")},
		{IngredientID: "ing-c1", Name: "Pollo", Unit: "kg", CurrentStock: dec("5"), ReorderLevel: dec("20")},
		{IngredientID: "ing-c2", Name: "Carne", Unit: "kg", CurrentStock: dec("1"), ReorderLevel: dec("20")},
	}}
	uc := appinv.NewSuggestionUseCase(repo, domaininv.DefaultPolicy())

	got, err := uc.GetPurchaseSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	// CRITICAL primero, y dentro de CRITICAL el de mayor déficit (Carne: 19).
	assert.Equal(t, "Carne", got[0].IngredientName)
	assert.Equal(t, domaininv.PriorityCritical, got[0].Priority)
	assert.Equal(t, "Pollo", got[1].IngredientName)
	assert.Equal(t, "Queso", got[2].IngredientName)
	assert.Equal(t, domaininv.PriorityWarning, got[2].Priority)

	// Pollo: 20*2 - 5 = 35.
	assert.True(t, dec("35").Equal(got[1].SuggestedQuantity))
}

func TestGetPurchaseSuggestions_SinFaltantes(t *testing.T) {
	uc := appinv.NewSuggestionUseCase(&fakeReportRepo{}, domaininv.DefaultPolicy())

	got, err := uc.GetPurchaseSuggestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
