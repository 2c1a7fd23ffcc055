package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
)

// MenuHandler maneja el menú público del storefront y el CRUD de categorías
// e ítems del menú (back office).
type MenuHandler struct {
	categoryUC *usecase.CategoryUseCase
	itemUC     *usecase.MenuItemUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(categoryUC *usecase.CategoryUseCase, itemUC *usecase.MenuItemUseCase) *MenuHandler {
	return &MenuHandler{categoryUC: categoryUC, itemUC: itemUC}
}

// PublicMenu godoc
// @Summary      Menú público del storefront
// @Description  Categorías activas con sus ítems disponibles. El filtro search
//
//	ignora mayúsculas y acentos.
//
// @Tags         menu
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre de ítem"
// @Success      200  {object}  dto.Envelope{data=[]dto.MenuCategoryDTO}
// @Router       /api/menu [get]
func (h *MenuHandler) PublicMenu(c *fiber.Ctx) error {
	out, err := h.itemUC.PublicMenu(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// CreateCategory crea una categoría del menú.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.categoryUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "categoría creada"))
}

// GetCategory obtiene una categoría por ID.
func (h *MenuHandler) GetCategory(c *fiber.Ctx) error {
	out, err := h.categoryUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateCategory edita una categoría.
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.categoryUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(out, "categoría actualizada"))
}

// ToggleCategory activa/desactiva una categoría.
func (h *MenuHandler) ToggleCategory(c *fiber.Ctx) error {
	out, err := h.categoryUC.Toggle(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListCategories lista categorías (query only_active).
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categoryUC.List(c.QueryBool("only_active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// DeleteCategory elimina una categoría.
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "categoría eliminada"))
}

// CreateMenuItem godoc
// @Summary      Crear ítem del menú
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "category_id, name, price"
// @Success      201   {object}  dto.Envelope{data=dto.MenuItemResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/menu-items [post]
func (h *MenuHandler) CreateMenuItem(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.itemUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "ítem creado"))
}

// GetMenuItem obtiene un ítem del menú por ID.
func (h *MenuHandler) GetMenuItem(c *fiber.Ctx) error {
	out, err := h.itemUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateMenuItem edita un ítem del menú.
func (h *MenuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.itemUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(out, "ítem actualizado"))
}

// ToggleMenuItem publica o retira un ítem del storefront.
func (h *MenuHandler) ToggleMenuItem(c *fiber.Ctx) error {
	out, err := h.itemUC.ToggleAvailability(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListMenuItems lista ítems (query category_id, only_available, limit, offset).
func (h *MenuHandler) ListMenuItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "parámetros inválidos"))
	}
	page.DefaultPage()
	out, err := h.itemUC.List(c.Query("category_id"), c.QueryBool("only_available", false), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// DeleteMenuItem elimina un ítem del menú.
func (h *MenuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	if err := h.itemUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "ítem eliminado"))
}
