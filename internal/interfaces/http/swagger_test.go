package http_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/resto-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// RegisterSwagger: con el archivo ausente el servidor arranca sin la UI; nunca
// debe entrar en pánico porque eso mata todo el proceso antes de Listen.
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSwagger_SinArchivoNoEntraEnPanicoYSirveRutas(t *testing.T) {
	app := fiber.New()

	var mounted bool
	assert.NotPanics(t, func() {
		mounted = apphttp.RegisterSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "Resto Pro API")
	}, "sin especificación el registro debe omitirse, no reventar")
	assert.False(t, mounted)

	// El resto de la aplicación sigue operativa.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterSwagger_ConArchivoMontaLaUI(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	content := `{"swagger":"2.0","info":{"title":"Resto Pro API","version":"0.1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(spec, []byte(content), 0o644))

	app := fiber.New()
	mounted := apphttp.RegisterSwagger(app, spec, "Resto Pro API")
	require.True(t, mounted)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
}
