package files

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/articulos-centros/internal/domain"
	"github.com/jhoicas/articulos-centros/internal/domain/entity"
)

// OverrideStore implementa repository.OverrideRepository leyendo
// <dir>/ean/<centro>.json y <dir>/images/<centro>.json.
type OverrideStore struct {
	dir string
}

// NewOverrideStore construye el lector de overrides.
func NewOverrideStore(dir string) *OverrideStore { return &OverrideStore{dir: dir} }

// ForCenter carga los overrides del centro. Si un fichero es ilegible se devuelven igualmente
// los mapas que sí se pudieron leer junto con el error, para que el llamador decida.
func (s *OverrideStore) ForCenter(center entity.CenterID) (entity.CenterOverrides, error) {
	var out entity.CenterOverrides
	var errs []error

	ean, err := readOverrideMap(filepath.Join(s.dir, "ean", string(center)+".json"))
	if err != nil {
		errs = append(errs, err)
	}
	images, err := readOverrideMap(filepath.Join(s.dir, "images", string(center)+".json"))
	if err != nil {
		errs = append(errs, err)
	}
	out.EAN, out.Images = ean, images
	return out, errors.Join(errs...)
}

// readOverrideMap lee {"NumeroArticulo": valor}. Los valores numéricos se conservan tal cual
// (un EAN no debe pasar por float). Fichero ausente = mapa vacío.
func readOverrideMap(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return map[string]string{}, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}

	var values map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		return map[string]string{}, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}

	out := make(map[string]string, len(values))
	for k, v := range values {
		var s string
		switch val := v.(type) {
		case nil:
			continue
		case string:
			s = val
		case json.Number:
			s = val.String()
		default:
			s = fmt.Sprint(val)
		}
		if s = strings.TrimSpace(s); s != "" {
			out[strings.TrimSpace(k)] = s
		}
	}
	return out, nil
}
