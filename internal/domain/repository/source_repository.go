package repository

import "github.com/jhoicas/articulos-centros/internal/domain/table"

// SourceRepository define el puerto de lectura de las fuentes de entrada (CSV / hoja de cálculo).
type SourceRepository interface {
	// Require comprueba que todas las rutas existen antes de leer ninguna.
	// Devuelve un error que envuelve domain.ErrSourceMissing con la primera ruta ausente.
	Require(paths ...string) error
	// Load lee la primera hoja/tabla de la ruta con la cabecera original.
	Load(path string) (*table.Table, error)
}
