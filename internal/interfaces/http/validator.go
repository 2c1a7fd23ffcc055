package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
)

var validate = validator.New()

// parseAndValidate parsea el body JSON y aplica las reglas de los tags validate.
// Si el body es inválido escribe la respuesta 400 y devuelve false.
func parseAndValidate(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
		return false
	}
	if err := validate.Struct(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", err.Error()))
		return false
	}
	return true
}
