package files

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/articulos-centros/internal/domain/entity"
)

// DefaultExportFile nombre del fichero que consume el frontend de cada centro.
const DefaultExportFile = "Articulos.csv"

// CenterWriter implementa repository.CenterExportRepository escribiendo en <root>/<centro>/.
type CenterWriter struct {
	root     string
	fileName string
}

// NewCenterWriter construye el escritor. fileName vacío usa DefaultExportFile.
func NewCenterWriter(root, fileName string) *CenterWriter {
	if fileName == "" {
		fileName = DefaultExportFile
	}
	return &CenterWriter{root: root, fileName: fileName}
}

// Write reescribe el export del centro: cabecera fija, separador ';', UTF-8 sin BOM.
// Devuelve la ruta escrita.
func (w *CenterWriter) Write(center entity.CenterID, rows []entity.CenterExportRow) (string, error) {
	return w.replace(center, w.fileName, func(f *os.File) error {
		cw := csv.NewWriter(f)
		cw.Comma = ';'
		if err := cw.Write(entity.CenterExportHeaders()); err != nil {
			return err
		}
		for _, r := range rows {
			if err := cw.Write(r.ToCSVRow()); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// WriteAttachment guarda un fichero adicional (p.ej. el listado PDF) junto al export del centro.
func (w *CenterWriter) WriteAttachment(center entity.CenterID, name string, data []byte) (string, error) {
	return w.replace(center, name, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	})
}

// replace escribe en un temporal del mismo directorio y lo renombra, de modo que un lector
// nunca ve un fichero a medio escribir.
func (w *CenterWriter) replace(center entity.CenterID, name string, fill func(*os.File) error) (string, error) {
	dir := filepath.Join(w.root, string(center))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export %s: crear directorio: %w", center, err)
	}
	dst := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("export %s: %w", center, err)
	}
	defer os.Remove(tmp.Name())

	if err := fill(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("export %s: escribir %s: %w", center, name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("export %s: cerrar %s: %w", center, name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("export %s: permisos %s: %w", center, name, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("export %s: reemplazar %s: %w", center, name, err)
	}
	return dst, nil
}
