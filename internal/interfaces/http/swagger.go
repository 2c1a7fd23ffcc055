package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RegisterSwagger monta la UI de swagger en /docs cuando el archivo de
// especificación existe. El middleware de contrib entra en pánico durante la
// construcción si el archivo falta, así que en ese caso se omite la UI con una
// advertencia en vez de tumbar el arranque. Devuelve si la UI quedó montada.
func RegisterSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().
			Str("file", filePath).
			Msg("especificación swagger no encontrada; UI /docs deshabilitada")
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
