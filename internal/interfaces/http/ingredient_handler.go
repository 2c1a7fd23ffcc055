package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
)

// IngredientHandler maneja el CRUD de ingredientes (back office).
type IngredientHandler struct {
	uc *usecase.IngredientUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "name, unit, current_stock, reorder_level"
// @Success      201   {object}  dto.Envelope{data=dto.IngredientResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "ingrediente creado"))
}

// GetByID godoc
// @Summary      Obtener ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ingrediente"
// @Success      200  {object}  dto.Envelope{data=dto.IngredientResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Editar ingrediente (no toca el saldo)
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del ingrediente"
// @Param        body  body  dto.UpdateIngredientRequest  true  "name, unit, reorder_level, supplier"
// @Success      200   {object}  dto.Envelope{data=dto.IngredientResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(out, "ingrediente actualizado"))
}

// Toggle godoc
// @Summary      Activar/desactivar ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ingrediente"
// @Success      200  {object}  dto.Envelope{data=dto.IngredientResponse}
// @Router       /api/admin/ingredients/{id}/toggle [patch]
func (h *IngredientHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.Toggle(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool    false  "Solo ingredientes activos"
// @Param        search       query  string  false  "Filtro por nombre o proveedor (sin acentos)"
// @Param        limit        query  int     false  "Tamaño de página (def. 20)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope{data=[]dto.IngredientResponse}
// @Router       /api/admin/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "parámetros inválidos"))
	}
	page.DefaultPage()
	onlyActive := c.QueryBool("only_active", false)
	out, err := h.uc.List(onlyActive, c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar ingrediente (movimientos en cascada)
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ingrediente"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "ingrediente eliminado"))
}
