package inventory

import (
	"strings"

	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/domain/table"
)

// CoercionIssue describe una celda numérica que no se pudo interpretar y se sustituyó
// por su valor por defecto. Line es 1-based contando la cabecera como línea 1.
type CoercionIssue struct {
	Line  int
	Field string
	Raw   string
}

// ArticlesFromTable lee el catálogo ya preparado (ver Prepare) respetando el orden de filas.
func ArticlesFromTable(t *table.Table) []entity.Article {
	var (
		id    = t.Index(FieldArticleID)
		ref   = t.Index(FieldSupplierRef)
		desc  = t.Index(FieldDescription)
		price = t.Index(FieldListPrice)
		ean   = t.Index(FieldEAN)
		sup   = t.Index(FieldSupplierID)
	)
	out := make([]entity.Article, 0, t.Len())
	for i := range t.Rows {
		out = append(out, entity.Article{
			ArticleID:   strings.TrimSpace(t.Cell(i, id)),
			SupplierRef: strings.TrimSpace(t.Cell(i, ref)),
			Description: strings.TrimSpace(t.Cell(i, desc)),
			EAN:         strings.TrimSpace(t.Cell(i, ean)),
			SupplierID:  strings.TrimSpace(t.Cell(i, sup)),
			ListPrice:   CoercePrice(t.Cell(i, price)),
		})
	}
	return out
}

// SuppliersFromTable lee el directorio de proveedores ya preparado.
func SuppliersFromTable(t *table.Table) []entity.Supplier {
	id := t.Index(FieldSupplierID)
	name := t.Index(FieldSupplierName)
	out := make([]entity.Supplier, 0, t.Len())
	for i := range t.Rows {
		out = append(out, entity.Supplier{
			SupplierID: strings.TrimSpace(t.Cell(i, id)),
			Name:       strings.TrimSpace(t.Cell(i, name)),
		})
	}
	return out
}

// StockRowsFromTable lee el extracto de stock coercionando almacén y cantidad.
// Las celdas ilegibles valen 0 y se reportan en issues; nunca es un error.
func StockRowsFromTable(t *table.Table) (rows []entity.StockRow, issues []CoercionIssue) {
	id := t.Index(FieldArticleID)
	wh := t.Index(FieldWarehouse)
	qty := t.Index(FieldQuantity)

	rows = make([]entity.StockRow, 0, t.Len())
	for i := range t.Rows {
		rawCode, rawQty := t.Cell(i, wh), t.Cell(i, qty)

		code, ok := CoerceCode(rawCode)
		if !ok {
			issues = append(issues, CoercionIssue{Line: i + 2, Field: FieldWarehouse, Raw: rawCode})
		}
		q, ok := CoerceQuantity(rawQty)
		if !ok {
			issues = append(issues, CoercionIssue{Line: i + 2, Field: FieldQuantity, Raw: rawQty})
		}

		rows = append(rows, entity.StockRow{
			ArticleID:     strings.TrimSpace(t.Cell(i, id)),
			WarehouseCode: code,
			Quantity:      q,
		})
	}
	return rows, issues
}
