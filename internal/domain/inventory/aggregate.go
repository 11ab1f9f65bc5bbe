package inventory

import "github.com/jhoicas/articulos-centros/internal/domain/entity"

// AggregatedStock stock por artículo y centro. Una entrada ausente equivale a 0.
type AggregatedStock map[string]map[entity.CenterID]int64

// Quantity devuelve el stock del artículo en el centro (0 si no hay filas).
func (s AggregatedStock) Quantity(articleID string, center entity.CenterID) int64 {
	return s[articleID][center]
}

// Total devuelve el stock del artículo sumando todos los centros.
func (s AggregatedStock) Total(articleID string) int64 {
	var total int64
	for _, q := range s[articleID] {
		total += q
	}
	return total
}

// AggregateStats resumen de la agregación para el log de la ejecución.
type AggregateStats struct {
	Rows              int         // filas de entrada
	Kept              int         // filas con almacén válido
	DroppedRows       int         // filas descartadas por almacén desconocido
	DroppedQuantity   int64       // unidades descartadas con esas filas
	UnknownWarehouses map[int]int // código → filas descartadas
	Articles          int         // artículos con al menos una fila válida
}

type articleWarehouse struct {
	articleID string
	code      int
}

// AggregateStock suma el stock por (artículo, almacén) descartando los almacenes que no
// están en el mapa, y después pliega cada almacén en su centro sumando otra vez si varios
// almacenes abastecen el mismo centro. El resultado no depende del orden de las filas.
func AggregateStock(rows []entity.StockRow, warehouses entity.WarehouseMap) (AggregatedStock, AggregateStats) {
	stats := AggregateStats{Rows: len(rows), UnknownWarehouses: map[int]int{}}

	byWarehouse := make(map[articleWarehouse]int64)
	for _, r := range rows {
		if _, ok := warehouses.CenterFor(r.WarehouseCode); !ok {
			stats.DroppedRows++
			stats.DroppedQuantity += r.Quantity
			stats.UnknownWarehouses[r.WarehouseCode]++
			continue
		}
		stats.Kept++
		byWarehouse[articleWarehouse{r.ArticleID, r.WarehouseCode}] += r.Quantity
	}

	out := make(AggregatedStock)
	for key, qty := range byWarehouse {
		center, _ := warehouses.CenterFor(key.code)
		perCenter, ok := out[key.articleID]
		if !ok {
			perCenter = make(map[entity.CenterID]int64)
			out[key.articleID] = perCenter
		}
		perCenter[center] += qty
	}
	stats.Articles = len(out)
	return out, stats
}
