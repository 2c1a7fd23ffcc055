package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/resto-pro/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de saldos: solo se persiste el saldo corriente; apertura y cierre
// se reconstruyen caminando hacia atrás desde el presente. Estos tests fijan
// las identidades aritméticas de esa reconstrucción.
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: Arroz con saldo corriente 50 kg.
// Movimientos posteriores al mes consultado: +30 entrada, -10 salida (neto +20).
// Cierre del mes = 50 - 20 = 30. Movimientos del mes: +40 entrada, -25 salida.
// Apertura = 30 - 40 + 25 = 15.
func TestClosingStock_EscenarioArroz(t *testing.T) {
	current := dec("50")
	netAfter := dec("20") // +30 IN - 10 OUT posteriores al período

	closing := inventory.ClosingStock(current, netAfter)
	assert.True(t, dec("30").Equal(closing), "cierre = saldo corriente - neto posterior")

	opening := inventory.OpeningStock(closing, dec("40"), dec("25"))
	assert.True(t, dec("15").Equal(opening), "apertura = cierre - entradas + salidas del mes")
}

// Un mes sin movimientos tiene apertura == cierre.
func TestOpeningStock_MesSinMovimientos(t *testing.T) {
	closing := dec("42.5")
	opening := inventory.OpeningStock(closing, decimal.Zero, decimal.Zero)
	assert.True(t, closing.Equal(opening))
}

// El cierre del mes M debe coincidir con la apertura del mes M+1:
// ambos se derivan de las mismas cantidades, sin snapshots intermedios.
func TestContinuidad_CierreIgualAperturaSiguiente(t *testing.T) {
	current := dec("100")

	// Movimientos de M+1: +10 IN, -35 OUT. Nada posterior a M+1.
	closingNext := inventory.ClosingStock(current, decimal.Zero)
	openingNext := inventory.OpeningStock(closingNext, dec("10"), dec("35"))

	// Visto desde M, el neto posterior es el neto de M+1: 10 - 35 = -25.
	closingM := inventory.ClosingStock(current, dec("-25"))

	assert.True(t, closingM.Equal(openingNext),
		"el cierre de un mes debe empalmar con la apertura del siguiente")
}

// El cierre puede quedar negativo (salidas registradas sobre stock insuficiente);
// se reporta tal cual, sin recortar a cero.
func TestClosingStock_PuedeSerNegativo(t *testing.T) {
	closing := inventory.ClosingStock(dec("5"), dec("12"))
	assert.True(t, closing.IsNegative())
	assert.True(t, dec("-7").Equal(closing))
}

// La derivación es idempotente: mismos insumos, mismo resultado.
func TestDerivacion_Idempotente(t *testing.T) {
	a := inventory.ClosingStock(dec("33.33"), dec("11.11"))
	b := inventory.ClosingStock(dec("33.33"), dec("11.11"))
	assert.True(t, a.Equal(b))
}

// ── Promedio móvil de consumo ─────────────────────────────────────────────────

func TestTrailingAvgUsage_TresMesesConDatos(t *testing.T) {
	avg := inventory.TrailingAvgUsage(dec("30"), dec("60"), dec("90"))
	assert.True(t, dec("60").Equal(avg))
}

// Los meses sin datos cuentan como cero en el promedio, no se excluyen.
func TestTrailingAvgUsage_MesesSinDatosCuentanComoCero(t *testing.T) {
	avg := inventory.TrailingAvgUsage(dec("30"), decimal.Zero, decimal.Zero)
	assert.True(t, dec("10").Equal(avg), "30/3, no 30/1")
}

// ── Umbral de reposición ──────────────────────────────────────────────────────

func TestNeedsReorder_ComparacionSinRedondeo(t *testing.T) {
	assert.True(t, inventory.NeedsReorder(dec("10"), dec("10")), "igual al umbral cuenta")
	assert.True(t, inventory.NeedsReorder(dec("9.999"), dec("10")))
	assert.False(t, inventory.NeedsReorder(dec("10.001"), dec("10")),
		"apenas por encima del umbral no debe marcar reposición")
}

// ── Period ────────────────────────────────────────────────────────────────────

func TestNewPeriod_ValidaMesYVentanaDeAnios(t *testing.T) {
	now := time.Now()

	p, err := inventory.NewPeriod(now.Year(), 6, 5)
	require.NoError(t, err)
	assert.Equal(t, time.June, p.Month)

	_, err = inventory.NewPeriod(now.Year(), 0, 5)
	assert.Error(t, err, "mes 0 es inválido")

	_, err = inventory.NewPeriod(now.Year(), 13, 5)
	assert.Error(t, err, "mes 13 es inválido")

	_, err = inventory.NewPeriod(now.Year()+1, 1, 5)
	assert.Error(t, err, "años futuros no se aceptan")

	_, err = inventory.NewPeriod(now.Year()-6, 1, 5)
	assert.Error(t, err, "fuera de la ventana de años")
}

func TestPeriod_LimitesYPrev(t *testing.T) {
	p := inventory.Period{Year: 2026, Month: time.January}

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), p.End(),
		"el fin del período es exclusivo: primer instante del mes siguiente")

	prev := p.Prev(1)
	assert.Equal(t, 2025, prev.Year)
	assert.Equal(t, time.December, prev.Month, "Prev cruza el cambio de año")

	assert.Equal(t, "Enero 2026", p.Label())
}
