package inventory

import "github.com/jhoicas/articulos-centros/internal/domain/entity"

// BuildCenterRows materializa el catálogo completo para un centro: una fila por entrada
// del catálogo, con el stock de ese centro (0 si no hay) y los overrides del centro.
// Un override vacío nunca pisa el valor del catálogo.
func BuildCenterRows(
	catalog []entity.CatalogEntry,
	stock AggregatedStock,
	center entity.CenterID,
	overrides entity.CenterOverrides,
) []entity.CenterExportRow {
	rows := make([]entity.CenterExportRow, 0, len(catalog))
	for _, e := range catalog {
		ean := e.EAN
		if v := overrides.EAN[e.ArticleID]; v != "" {
			ean = v
		}
		rows = append(rows, entity.CenterExportRow{
			ArticleID:    e.ArticleID,
			SupplierRef:  e.SupplierRef,
			Description:  e.Description,
			EAN:          ean,
			SupplierName: e.SupplierName,
			Image1:       overrides.Images[e.ArticleID],
			LegacyPrice:  e.DisplayPrice,
			Price:        e.DisplayPrice,
			Stock:        stock.Quantity(e.ArticleID, center),
		})
	}
	return rows
}
