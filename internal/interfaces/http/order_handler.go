package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
	"github.com/tu-usuario/resto-pro/pkg/jwt"
)

// OrderHandler maneja pedidos: creación y seguimiento públicos, gestión
// completa desde el back office.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreatePublic godoc
// @Summary      Crear pedido desde el storefront
// @Description  Congela el precio de cada ítem en el momento de la compra y
//
//	aplica la promoción si el código está vigente. Si el token
//	lleva scope customer, el pedido queda asociado al cliente.
//
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "items, promotion_code, table_id"
// @Success      201   {object}  dto.Envelope{data=dto.OrderResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) CreatePublic(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	customerID := ""
	if GetScope(c) == jwt.ScopeCustomer {
		customerID = GetUserID(c)
	}
	out, err := h.uc.Create(c.Context(), customerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "pedido creado"))
}

// Create crea un pedido desde el back office (pedidos telefónicos o en
// mostrador, sin cliente asociado).
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), "", in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "pedido creado"))
}

// Track godoc
// @Summary      Seguimiento público de un pedido
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.Envelope{data=dto.OrderTrackResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/track [get]
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	out, err := h.uc.Track(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID obtiene un pedido con sus líneas (back office).
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateStatus mueve el pedido de estado (pending, preparing, ready, delivered, cancelled).
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List lista pedidos (query status, customer_id, limit, offset).
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "parámetros inválidos"))
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("status"), c.Query("customer_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete elimina un pedido.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "pedido eliminado"))
}
