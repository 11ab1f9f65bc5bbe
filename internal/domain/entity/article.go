package entity

import "github.com/shopspring/decimal"

// Article representa una fila del catálogo de artículos (base de precios).
// ListPrice es inválido (Valid=false) cuando el precio de origen está vacío o no es numérico:
// precio desconocido y precio cero son hechos distintos.
type Article struct {
	ArticleID   string // NumeroArticulo, recortado
	SupplierRef string // referencia del proveedor
	Description string
	EAN         string
	SupplierID  string // clave de unión con el directorio de proveedores
	ListPrice   decimal.NullDecimal
}

// CatalogEntry es un artículo ya unido con su proveedor y con el precio listo para mostrar.
type CatalogEntry struct {
	Article
	SupplierName string // vacío si el proveedor no existe en el directorio
	DisplayPrice string // "12.50" o vacío si el precio es desconocido
}
