package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/auth"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
)

// AuthHandler maneja autenticación de staff (back office) y clientes (storefront).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// LoginAdmin godoc
// @Summary      Login de staff del back office
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.LoginAdmin(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// RegisterUser godoc
// @Summary      Alta de staff (solo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "email, password, name, role"
// @Success      201   {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterUser(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "usuario creado"))
}

// RegisterCustomer godoc
// @Summary      Registro de cliente del storefront
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCustomerRequest  true  "name, email, phone, password"
// @Success      201   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/customer/register [post]
func (h *AuthHandler) RegisterCustomer(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterCustomer(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(out, "cliente registrado"))
}

// LoginCustomer godoc
// @Summary      Login de cliente del storefront
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/customer/login [post]
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.LoginCustomer(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
