package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/resto-pro/internal/application/dto"
	"github.com/tu-usuario/resto-pro/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. Todo lo que no
// sea un error de dominio conocido cae en 500 INTERNAL.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "datos inválidos"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("DUPLICATE", "el email ya está registrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("DUPLICATE", "recurso duplicado"))
	case errors.Is(err, domain.ErrConflictRetry):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("CONFLICT_RETRY", "conflicto de concurrencia, reintente"))
	case errors.Is(err, domain.ErrTableOccupied):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("TABLE_OCCUPIED", "mesa no disponible en ese horario"))
	case errors.Is(err, domain.ErrInactive):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Err("INACTIVE", "recurso inactivo"))
	default:
		// El detalle (SQL, drivers) se queda en el log; al cliente solo
		// le llega un mensaje genérico.
		log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado en handler")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error interno del servidor"))
	}
}
