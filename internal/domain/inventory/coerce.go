package inventory

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseDecimal interpreta un número escrito en una hoja editada a mano.
// Acepta coma decimal ("12,5"), separadores de miles ("1.234,56", "1,234.56"),
// espacios y el símbolo €. Devuelve false si la celda está vacía o no es numérica.
// La notación exponencial ("1e5") no se acepta.
func ParseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '€' {
			return -1
		}
		return r
	}, raw)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, false
	}

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case dot >= 0 && strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CoerceQuantity convierte una celda de stock a entero no negativo (redondeo half-up).
// ok=false cuando la celda no era numérica, era negativa o no cabe en int64, y se sustituyó por 0.
func CoerceQuantity(raw string) (qty int64, ok bool) {
	d, ok := ParseDecimal(raw)
	if !ok {
		return 0, false
	}
	if d.IsNegative() {
		return 0, false
	}
	if d = d.Round(0); d.GreaterThan(maxQuantity) {
		return 0, false
	}
	return d.IntPart(), true
}

var (
	maxQuantity = decimal.NewFromInt(math.MaxInt64)
	maxCode     = decimal.NewFromInt(math.MaxInt32)
	minCode     = decimal.NewFromInt(math.MinInt32)
)

// CoerceCode convierte un código de almacén a entero; 0 si no es un entero válido o no cabe en int32.
func CoerceCode(raw string) (code int, ok bool) {
	d, ok := ParseDecimal(raw)
	if !ok || !d.Equal(d.Truncate(0)) || d.GreaterThan(maxCode) || d.LessThan(minCode) {
		return 0, false
	}
	return int(d.IntPart()), true
}

// CoercePrice convierte el precio de lista. A diferencia del stock, un precio vacío o
// ilegible queda como desconocido (Valid=false), nunca como cero.
func CoercePrice(raw string) decimal.NullDecimal {
	d, ok := ParseDecimal(raw)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// FormatPrice devuelve el precio con dos decimales, o vacío si es desconocido.
func FormatPrice(p decimal.NullDecimal) string {
	if !p.Valid {
		return ""
	}
	return p.Decimal.StringFixed(2)
}
