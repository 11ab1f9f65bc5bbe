package entity

// Supplier representa una entrada del directorio de proveedores. Solo se usa para resolver nombres.
type Supplier struct {
	SupplierID string
	Name       string
}
