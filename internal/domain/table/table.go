// Package table modela una hoja tabular genérica (cabecera + filas de texto) y el
// mapeo tolerante de sus columnas a campos canónicos.
package table

// Table es una hoja cargada en memoria. Columns conserva la grafía original de la
// cabecera hasta que MapColumns renombra las columnas reconocidas.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New construye una tabla y ajusta cada fila al ancho de la cabecera
// (rellena con vacío las filas cortas y descarta celdas sobrantes).
func New(columns []string, rows [][]string) *Table {
	cols := append([]string(nil), columns...)
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = fit(r, len(cols))
	}
	return &Table{Columns: cols, Rows: out}
}

func fit(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// Len devuelve el número de filas de datos.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index devuelve la posición de la columna con nombre exacto, o -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has indica si existe una columna con ese nombre exacto.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Cell devuelve el valor de la fila i en la columna col; vacío si col < 0.
func (t *Table) Cell(i, col int) string {
	if col < 0 || i < 0 || i >= len(t.Rows) || col >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][col]
}
