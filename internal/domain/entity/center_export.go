package entity

import "strconv"

// CenterExportRow es la fila materializada por artículo y centro en Articulos.csv.
type CenterExportRow struct {
	ArticleID    string
	SupplierRef  string
	Description  string
	EAN          string
	SupplierName string
	Image1       string
	Image2       string
	Image3       string
	LegacyPrice  string // columna "Precio", se mantiene por compatibilidad
	Price        string // columna "PrecioVenta", mismo valor
	Stock        int64
}

// CenterExportHeaders devuelve la cabecera fija del export, en orden.
func CenterExportHeaders() []string {
	return []string{
		"NumeroArticulo",
		"ReferenciaProveedor",
		"Descripcion",
		"CodigoEAN",
		"NombreProveedor",
		"ImagenURL",
		"ImagenURL2",
		"ImagenURL3",
		"Precio",
		"PrecioVenta",
		"Stock",
	}
}

// ToCSVRow convierte la fila al orden de CenterExportHeaders.
func (r CenterExportRow) ToCSVRow() []string {
	return []string{
		r.ArticleID,
		r.SupplierRef,
		r.Description,
		r.EAN,
		r.SupplierName,
		r.Image1,
		r.Image2,
		r.Image3,
		r.LegacyPrice,
		r.Price,
		strconv.FormatInt(r.Stock, 10),
	}
}

// CenterOverrides valores capturados desde tablet/móvil para un centro (NumeroArticulo → valor).
type CenterOverrides struct {
	EAN    map[string]string
	Images map[string]string
}
