package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
	"github.com/tu-usuario/resto-pro/pkg/jwt"
)

// ReservationHandler maneja reservas: creación pública desde el storefront y
// gestión completa desde el back office.
type ReservationHandler struct {
	uc *usecase.ReservationUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// CreatePublic godoc
// @Summary      Crear reserva desde el storefront
// @Description  Crea la reserva en estado pending. Si el token lleva scope
//
//	customer, la reserva queda asociada al cliente.
//
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "table_id, reserved_at, party_size"
// @Success      201   {object}  dto.Envelope{data=dto.ReservationResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) CreatePublic(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	customerID := ""
	if GetScope(c) == jwt.ScopeCustomer {
		customerID = GetUserID(c)
	}
	out, err := h.uc.Create(customerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "reserva creada"))
}

// Create crea una reserva capturada por staff (sin cliente asociado).
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create("", in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "reserva creada"))
}

// GetByID obtiene una reserva por ID.
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update edita una reserva.
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(out, "reserva actualizada"))
}

// SetStatus mueve la reserva de estado (pending, confirmed, seated, cancelled).
func (h *ReservationHandler) SetStatus(c *fiber.Ctx) error {
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

// List lista reservas (query status, from, to, limit, offset).
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "parámetros inválidos"))
	}
	page.DefaultPage()
	from, ok := parseTimeQuery(c, "from")
	if !ok {
		return nil
	}
	to, ok := parseTimeQuery(c, "to")
	if !ok {
		return nil
	}
	out, err := h.uc.List(c.Query("status"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete elimina una reserva.
func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(nil, "reserva eliminada"))
}

// parseTimeQuery lee un query param RFC3339 o YYYY-MM-DD opcional.
func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	_ = c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", name+" debe ser RFC3339 o YYYY-MM-DD"))
	return nil, false
}
