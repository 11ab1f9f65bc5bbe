package entity

// StockRow es una línea del extracto de stock por almacén, ya coercionada.
// Varias filas pueden compartir (ArticleID, WarehouseCode) antes de agregar.
type StockRow struct {
	ArticleID     string
	WarehouseCode int   // 0 si la celda no era un entero
	Quantity      int64 // nunca negativo
}
