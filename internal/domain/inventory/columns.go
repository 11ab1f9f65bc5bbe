package inventory

import "github.com/jhoicas/articulos-centros/internal/domain/table"

// Campos canónicos. Son nombres internos: nunca aparecen en el export.
const (
	FieldArticleID    = "articleId"
	FieldSupplierRef  = "supplierRef"
	FieldDescription  = "description"
	FieldListPrice    = "listPrice"
	FieldEAN          = "ean"
	FieldSupplierID   = "supplierId"
	FieldSupplierName = "supplierName"
	FieldWarehouse    = "warehouseCode"
	FieldQuantity     = "quantity"
)

// CatalogAliases cabeceras aceptadas en base_articulos.
var CatalogAliases = table.AliasTable{
	{Field: FieldArticleID, Candidates: []string{"NumeroArticulo", "Nº Articulo", "NumArticulo", "Articulo", "CodigoArticulo", "Cód. Articulo"}},
	{Field: FieldSupplierRef, Candidates: []string{"ReferenciaProveedor", "Ref. Prov.", "Referencia Prov", "REF_PROV", "Referencia"}},
	{Field: FieldDescription, Candidates: []string{"Descripcion", "Desc", "NombreArticulo", "Nombre"}},
	{Field: FieldListPrice, Candidates: []string{"1. Lista Precio de Ventas", "PrecioLista1", "Precio Lista 1", "PVP", "Precio"}},
	{Field: FieldEAN, Candidates: []string{"CodigoEAN", "EAN", "EAN13", "Codigo EAN", "CodigoBarras", "Codigo de Barras"}},
	{Field: FieldSupplierID, Candidates: []string{"CodigoProveedor", "CodProveedor", "NumeroProveedor", "IDProveedor", "Proveedor"}},
}

// StockAliases cabeceras aceptadas en stock_por_almacen.
var StockAliases = table.AliasTable{
	{Field: FieldArticleID, Candidates: []string{"NumeroArticulo", "Articulo", "Nº Articulo", "CodigoArticulo"}},
	{Field: FieldWarehouse, Candidates: []string{"Codigo_almacen", "Almacen", "CodAlmacen", "IDAlmacen"}},
	{Field: FieldQuantity, Candidates: []string{"Stock", "Existencias", "Cantidad", "Qty", "Unidades"}},
}

// SupplierAliases cabeceras aceptadas en lista_proveedores.
var SupplierAliases = table.AliasTable{
	{Field: FieldSupplierID, Candidates: []string{"CodigoProveedor", "CodProveedor", "NumeroProveedor", "IDProveedor", "Codigo", "Proveedor"}},
	{Field: FieldSupplierName, Candidates: []string{"NombreProveedor", "ProveedorNombre", "RazonSocial", "NombreComercial", "Nombre"}},
}

// Prepare aplica el mapeo de alias y completa los campos que falten con columnas vacías.
// Devuelve la tabla lista y los campos que se rellenaron por defecto.
func Prepare(t *table.Table, aliases table.AliasTable) (*table.Table, []string) {
	return table.EnsureColumns(table.MapColumns(t, aliases), aliases.Fields()...)
}
