package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
)

// TableHandler maneja el CRUD de mesas (back office).
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// Create crea una mesa.
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTableRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "mesa creada"))
}

// GetByID obtiene una mesa por ID.
func (h *TableHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update edita número y capacidad.
func (h *TableHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateTableRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(out, "mesa actualizada"))
}

// SetStatus godoc
// @Summary      Cambiar estado de mesa
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la mesa"
// @Param        body  body  dto.UpdateStatusRequest  true  "status (free|occupied|reserved)"
// @Success      200   {object}  dto.Envelope{data=dto.TableResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/tables/{id}/status [patch]
func (h *TableHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List lista todas las mesas.
func (h *TableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete elimina una mesa.
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "mesa eliminada"))
}
