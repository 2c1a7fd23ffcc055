package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/resto-pro/pkg/search"
)

func TestFold_MinusculasYSinTildes(t *testing.T) {
	cases := map[string]string{
		"Jalapeño":        "jalapeno",
		"Café con Leche":  "cafe con leche",
		"AZÚCAR":          "azucar",
		"arroz":           "arroz",
		"Crème Brûlée":    "creme brulee",
		"":                "",
		"Niño envuelto 2": "nino envuelto 2",
	}
	for in, want := range cases {
		assert.Equal(t, want, search.Fold(in), "Fold(%q)", in)
	}
}

func TestMatches_IgnoraTildesYMayusculas(t *testing.T) {
	assert.True(t, search.Matches("Jalapeño relleno", "jalapeno"))
	assert.True(t, search.Matches("Café Americano", "CAFE"))
	assert.True(t, search.Matches("Arroz con pollo", "pollo"))
	assert.False(t, search.Matches("Arroz con pollo", "carne"))
}

// Needle vacío coincide con todo: un ?search= vacío no filtra.
func TestMatches_NeedleVacio(t *testing.T) {
	assert.True(t, search.Matches("cualquier cosa", ""))
	assert.True(t, search.Matches("", ""))
}
