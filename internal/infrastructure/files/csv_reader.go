package files

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/articulos-centros/internal/domain"
	"github.com/jhoicas/articulos-centros/internal/domain/table"
)

// Separadores probados en orden; gana el primero que produce más de una columna.
var csvDelimiters = []rune{';', ','}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV lee un CSV exportado del ERP o editado a mano. Detecta separador (; o ,) y
// codificación (UTF-8 con o sin BOM, si no Windows-1252).
func ReadCSV(path string) (*table.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}
	data, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}

	var lastErr error
	for _, sep := range csvDelimiters {
		t, err := parseDelimited(data, sep)
		if err != nil {
			lastErr = err
			continue
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, lastErr)
}

// decodeText devuelve el contenido en UTF-8 sin BOM.
func decodeText(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw, nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decodificar windows-1252: %w", err)
	}
	return out, nil
}

func parseDelimited(data []byte, sep rune) (*table.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("separador %q: %w", sep, err)
	}
	return fromRecords(records, fmt.Sprintf("separador %q", sep))
}

// fromRecords toma la primera fila no vacía como cabecera y descarta las filas en blanco.
func fromRecords(records [][]string, what string) (*table.Table, error) {
	var header []string
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if blank(rec) {
			continue
		}
		if header == nil {
			header = make([]string, len(rec))
			for i, h := range rec {
				header[i] = strings.TrimSpace(h)
			}
			continue
		}
		rows = append(rows, rec)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%s: fichero vacío", what)
	}
	if len(header) == 1 {
		return nil, fmt.Errorf("%s: una sola columna (%q)", what, header[0])
	}
	return table.New(header, rows), nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
