// Package inventory contiene la lógica pura de conciliación mensual de
// inventario (servicio de dominio, sin acceso a datos).
//
// Solo se persiste el saldo corriente de cada ingrediente, no snapshots
// históricos; los saldos de apertura/cierre de un período se derivan
// caminando hacia atrás desde el presente:
//
//	closing = current_stock − neto(movimientos posteriores al período)
//	opening = closing − stock_in + stock_out
//
// El mes en curso cae en la misma fórmula (neto posterior = 0).
package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pro/internal/domain"
)

// TrailingMonths ventana de meses para el promedio de consumo.
const TrailingMonths = 3

var three = decimal.NewFromInt(TrailingMonths)

// Period identifica el mes calendario de un reporte.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod valida año y mes. El año debe estar dentro de los últimos
// yearWindow años (incluido el actual); el mes en 1..12.
func NewPeriod(year, month, yearWindow int) (Period, error) {
	now := time.Now()
	if month < 1 || month > 12 {
		return Period{}, domain.ErrInvalidInput
	}
	if year < now.Year()-yearWindow || year > now.Year() {
		return Period{}, domain.ErrInvalidInput
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// Start devuelve el primer instante del mes.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End devuelve el primer instante del mes siguiente (límite exclusivo).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Prev devuelve el período n meses atrás.
func (p Period) Prev(n int) Period {
	t := p.Start().AddDate(0, -n, 0)
	return Period{Year: t.Year(), Month: t.Month()}
}

// Label devuelve una etiqueta legible del período, ej: "Septiembre 2026".
func (p Period) Label() string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[p.Month-1], p.Year)
}

// ClosingStock deriva el saldo al cierre del período:
// saldo corriente menos el neto de movimientos posteriores al fin del mes
// (netAfter = entradas posteriores − salidas posteriores).
// Puede ser negativo; se reporta tal cual, nunca se recorta a cero.
func ClosingStock(currentStock, netAfter decimal.Decimal) decimal.Decimal {
	return currentStock.Sub(netAfter)
}

// OpeningStock deriva el saldo inmediatamente antes del primer instante
// del período a partir del cierre y los movimientos del mes.
func OpeningStock(closing, stockIn, stockOut decimal.Decimal) decimal.Decimal {
	return closing.Sub(stockIn).Add(stockOut)
}

// TrailingAvgUsage promedia las salidas del mes seleccionado y los dos
// anteriores. Los meses sin datos cuentan como cero, no se excluyen.
func TrailingAvgUsage(outSelected, outPrev1, outPrev2 decimal.Decimal) decimal.Decimal {
	return outSelected.Add(outPrev1).Add(outPrev2).Div(three)
}

// NeedsReorder compara el cierre contra el umbral sin redondeo previo.
func NeedsReorder(closing, reorderLevel decimal.Decimal) bool {
	return closing.LessThanOrEqual(reorderLevel)
}
