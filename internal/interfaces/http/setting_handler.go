package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
)

// SettingHandler maneja configuración clave/valor: lectura pública para el
// storefront y gestión completa desde el back office.
type SettingHandler struct {
	uc *usecase.SettingUseCase
}

// NewSettingHandler construye el handler.
func NewSettingHandler(uc *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// ListPublic godoc
// @Summary      Settings públicos del restaurante
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.SettingResponse}
// @Router       /api/settings/public [get]
func (h *SettingHandler) ListPublic(c *fiber.Ctx) error {
	out, err := h.uc.List(true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List lista todos los settings (back office).
func (h *SettingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Get obtiene un setting por clave.
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Upsert crea o reemplaza un setting.
func (h *SettingHandler) Upsert(c *fiber.Ctx) error {
	var in dto.SettingRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(out, "setting guardado"))
}

// Delete elimina un setting por clave.
func (h *SettingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("key")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "setting eliminado"))
}
