package table

// Alias asocia un campo canónico con los nombres de cabecera aceptados, en orden de prioridad.
type Alias struct {
	Field      string
	Candidates []string
}

// AliasTable lista ordenada de alias; el orden decide qué campo reclama primero una columna.
type AliasTable []Alias

// Fields devuelve los campos canónicos en orden.
func (a AliasTable) Fields() []string {
	out := make([]string, len(a))
	for i, al := range a {
		out[i] = al.Field
	}
	return out
}

// MapColumns renombra a su campo canónico la columna que corresponde a cada alias.
// Gana el primer candidato (en orden de prioridad) que coincide tras Normalize; si varias
// columnas coinciden con ese candidato se toma la primera en el orden de la tabla.
// Cada columna se renombra como mucho una vez. Los campos sin coincidencia quedan
// ausentes; EnsureColumns los añade después.
func MapColumns(t *Table, aliases AliasTable) *Table {
	keys := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		keys[i] = Normalize(c)
	}
	claimed := make([]bool, len(t.Columns))
	cols := append([]string(nil), t.Columns...)

	for _, al := range aliases {
		if idx := findColumn(keys, claimed, al.Candidates); idx >= 0 {
			claimed[idx] = true
			cols[idx] = al.Field
		}
	}
	return &Table{Columns: cols, Rows: t.Rows}
}

func findColumn(keys []string, claimed []bool, candidates []string) int {
	for _, cand := range candidates {
		want := Normalize(cand)
		if want == "" {
			continue
		}
		for i, k := range keys {
			if !claimed[i] && k == want {
				return i
			}
		}
	}
	return -1
}

// EnsureColumns añade como columnas vacías los campos que no existen en la tabla,
// de modo que el código posterior pueda asumir un esquema fijo. Devuelve los campos añadidos.
func EnsureColumns(t *Table, fields ...string) (*Table, []string) {
	var missing []string
	for _, f := range fields {
		if !t.Has(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return t, nil
	}

	cols := make([]string, 0, len(t.Columns)+len(missing))
	cols = append(cols, t.Columns...)
	cols = append(cols, missing...)

	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		row := make([]string, len(cols))
		copy(row, r)
		rows[i] = row
	}
	return &Table{Columns: cols, Rows: rows}, missing
}
