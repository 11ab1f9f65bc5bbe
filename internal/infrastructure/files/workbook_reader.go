package files

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/articulos-centros/internal/domain"
	"github.com/jhoicas/articulos-centros/internal/domain/table"
)

// ReadWorkbook lee la primera hoja de un .xlsx; la primera fila no vacía es la cabecera.
func ReadWorkbook(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: libro sin hojas", domain.ErrUnreadableSource, path)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: hoja %q: %v", domain.ErrUnreadableSource, path, sheets[0], err)
	}

	t, err := fromRecords(records, "hoja "+sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}
	return t, nil
}
