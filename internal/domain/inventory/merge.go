package inventory

import "github.com/jhoicas/articulos-centros/internal/domain/entity"

// MergeStats resumen de la unión catálogo-proveedores.
type MergeStats struct {
	Articles           int
	UnmatchedSuppliers int // artículos con código de proveedor que no está en el directorio
	UnknownPrices      int // artículos sin precio legible
	DuplicateSuppliers int // códigos repetidos en el directorio (gana el primero)
}

// MergeCatalog hace un left join de artículos con proveedores por código recortado.
// Todo artículo sobrevive aunque no tenga proveedor (nombre vacío) y se conserva el orden
// del catálogo, incluidos los NumeroArticulo repetidos.
func MergeCatalog(articles []entity.Article, suppliers []entity.Supplier) ([]entity.CatalogEntry, MergeStats) {
	stats := MergeStats{Articles: len(articles)}

	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		if s.SupplierID == "" {
			continue
		}
		if _, dup := names[s.SupplierID]; dup {
			stats.DuplicateSuppliers++
			continue
		}
		names[s.SupplierID] = s.Name
	}

	out := make([]entity.CatalogEntry, 0, len(articles))
	for _, a := range articles {
		name, ok := names[a.SupplierID]
		if !ok && a.SupplierID != "" {
			stats.UnmatchedSuppliers++
		}
		if !a.ListPrice.Valid {
			stats.UnknownPrices++
		}
		out = append(out, entity.CatalogEntry{
			Article:      a,
			SupplierName: name,
			DisplayPrice: FormatPrice(a.ListPrice),
		})
	}
	return out, stats
}
