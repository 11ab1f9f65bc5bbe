package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize devuelve la clave de comparación de un nombre de columna: minúsculas, sin
// acentos, sin espacios ni separadores (. _ -) y sin los indicadores ordinales/grado (º ª °).
// Solo sirve para comparar; nunca se guarda como nombre visible.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	return strings.Map(dropSeparator, foldDiacritics(s))
}

func dropSeparator(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	switch r {
	case '.', '_', '-', 'º', 'ª', '°':
		return -1
	}
	return r
}

// foldDiacritics quita las marcas combinantes: "código" → "codigo", "almacén" → "almacen".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
