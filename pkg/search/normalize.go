// Package search normaliza términos de búsqueda para los filtros ?search=
// de menú e ingredientes: minúsculas y sin tildes, para que "Jalapeño" y
// "jalapeno" coincidan.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina marcas diacríticas
	norm.NFC,
)

// Fold devuelve el término en minúsculas y sin diacríticos.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Matches indica si needle (plegado) aparece dentro de haystack (plegado).
// Needle vacío coincide con todo.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
