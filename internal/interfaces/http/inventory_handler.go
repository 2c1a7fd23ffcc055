package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/inventory"
	"github.com/tu-usuario/resto-pro/internal/infrastructure/pdf"
)

// InventoryHandler maneja movimientos de stock, el dashboard mensual de
// conciliación y las sugerencias de compra (back office).
type InventoryHandler struct {
	movementUC   *inventory.MovementUseCase
	reportUC     *inventory.MonthlyReportUseCase
	suggestionUC *inventory.SuggestionUseCase
	pdfGen       *pdf.MonthlyReportGenerator
	appName      string
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	movementUC *inventory.MovementUseCase,
	reportUC *inventory.MonthlyReportUseCase,
	suggestionUC *inventory.SuggestionUseCase,
	pdfGen *pdf.MonthlyReportGenerator,
	appName string,
) *InventoryHandler {
	return &InventoryHandler{
		movementUC:   movementUC,
		reportUC:     reportUC,
		suggestionUC: suggestionUC,
		pdfGen:       pdfGen,
		appName:      appName,
	}
}

// PostMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Inserta el asiento IN/OUT y actualiza el saldo del ingrediente
//
//	en la misma transacción. Una salida puede dejar el saldo negativo;
//	se registra igual y el reporte lo señala.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostMovementRequest  true  "ingredient_id, type (IN|OUT), quantity, movement_date"
// @Success      201   {object}  dto.Envelope{data=dto.MovementResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/stock-movements [post]
func (h *InventoryHandler) PostMovement(c *fiber.Ctx) error {
	var in dto.PostMovementRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.movementUC.PostMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "movimiento registrado"))
}

// DeleteMovement godoc
// @Summary      Eliminar movimiento (revierte su efecto sobre el saldo)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stock-movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.movementUC.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "movimiento eliminado"))
}

// ListMovements godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        ingredient_id  query  string  false  "Filtrar por ingrediente"
// @Param        from           query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to             query  string  false  "Fecha final exclusiva (YYYY-MM-DD)"
// @Param        limit          query  int     false  "Tamaño de página (def. 20)"
// @Param        offset         query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope{data=[]dto.MovementResponse}
// @Router       /api/admin/stock-movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "parámetros inválidos"))
	}
	page.DefaultPage()
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return nil
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return nil
	}
	out, err := h.movementUC.List(c.Query("ingredient_id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// MonthlyDashboard godoc
// @Summary      Dashboard mensual de inventario
// @Description  Conciliación del mes: apertura, entradas, salidas, cierre y uso
//
//	promedio por ingrediente, con KPIs agregados. Sin parámetros
//	usa el mes calendario actual. Todo se recalcula del libro de
//	movimientos en cada petición.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  false  "Año del reporte"
// @Param        month  query  int  false  "Mes (1-12)"
// @Success      200  {object}  dto.Envelope{data=dto.MonthlyReportDTO}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory-reports/monthly-dashboard [get]
func (h *InventoryHandler) MonthlyDashboard(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	out, err := h.reportUC.GetMonthlyDashboard(c.Context(), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// MonthlyDashboardPDF godoc
// @Summary      Dashboard mensual en PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        year   query  int  false  "Año del reporte"
// @Param        month  query  int  false  "Mes (1-12)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/inventory-reports/monthly-dashboard/pdf [get]
func (h *InventoryHandler) MonthlyDashboardPDF(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	report, err := h.reportUC.GetMonthlyDashboard(c.Context(), year, month)
	if err != nil {
		return respondError(c, err)
	}
	bytes, err := h.pdfGen.Generate(h.appName, report)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-mensual.pdf"`)
	return c.Send(bytes)
}

// PurchaseSuggestions godoc
// @Summary      Sugerencias de compra
// @Description  Ingredientes activos en o bajo su umbral de reposición, con
//
//	cantidad sugerida y prioridad (CRITICAL primero).
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.PurchaseSuggestionDTO}
// @Router       /api/admin/inventory-reports/purchase-suggestions [get]
func (h *InventoryHandler) PurchaseSuggestions(c *fiber.Ctx) error {
	out, err := h.suggestionUC.GetPurchaseSuggestions(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// parseDateQuery lee un query param YYYY-MM-DD opcional. Si el valor existe
// pero no parsea, escribe la respuesta 400 y devuelve ok=false.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", name+" debe ser YYYY-MM-DD"))
		return nil, false
	}
	return &t, true
}
