// Package files implementa los puertos de lectura y escritura sobre el sistema de ficheros:
// fuentes CSV / hoja de cálculo, export por centro y overrides JSON.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/articulos-centros/internal/domain"
	"github.com/jhoicas/articulos-centros/internal/domain/table"
)

// SourceLoader implementa repository.SourceRepository.
type SourceLoader struct{}

// NewSourceLoader construye el lector de fuentes.
func NewSourceLoader() *SourceLoader { return &SourceLoader{} }

// Require implementa repository.SourceRepository.
func (l *SourceLoader) Require(paths ...string) error { return RequireAll(paths...) }

// RequireAll falla con domain.ErrSourceMissing en la primera ruta que no existe o no es un fichero.
// Se llama antes de leer ninguna fuente.
func RequireAll(paths ...string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("%w: %s", domain.ErrSourceMissing, p)
		case err != nil:
			return fmt.Errorf("%w: %s: %v", domain.ErrSourceMissing, p, err)
		case info.IsDir():
			return fmt.Errorf("%w: %s es un directorio", domain.ErrSourceMissing, p)
		}
	}
	return nil
}

// Load lee la fuente según su extensión: .xlsx/.xlsm por la primera hoja, el resto como CSV.
func (l *SourceLoader) Load(path string) (*table.Table, error) {
	if err := RequireAll(path); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadWorkbook(path)
	default:
		return ReadCSV(path)
	}
}
