package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/domain/inventory"
	"github.com/jhoicas/articulos-centros/internal/domain/table"
)

func TestAggregateStock_FoldsWarehousesIntoCenters(t *testing.T) {
	rows := []entity.StockRow{
		{ArticleID: "A1", WarehouseCode: 1, Quantity: 5},
		{ArticleID: "A1", WarehouseCode: 2, Quantity: 3},
		{ArticleID: "A1", WarehouseCode: 9, Quantity: 100},
		{ArticleID: "A1", WarehouseCode: 1, Quantity: 2},
		{ArticleID: "B2", WarehouseCode: 4, Quantity: 7},
	}
	got, stats := inventory.AggregateStock(rows, entity.DefaultWarehouses())

	assert.Equal(t, int64(7), got.Quantity("A1", entity.CenterColl))
	assert.Equal(t, int64(3), got.Quantity("A1", entity.CenterCalvia))
	assert.Equal(t, int64(0), got.Quantity("A1", entity.CenterAlcudia))
	assert.Equal(t, int64(7), got.Quantity("B2", entity.CenterSantanyi))
	assert.Equal(t, int64(0), got.Quantity("ZZ", entity.CenterColl))

	assert.Equal(t, 5, stats.Rows)
	assert.Equal(t, 4, stats.Kept)
	assert.Equal(t, 1, stats.DroppedRows)
	assert.Equal(t, int64(100), stats.DroppedQuantity)
	assert.Equal(t, map[int]int{9: 1}, stats.UnknownWarehouses)
	assert.Equal(t, 2, stats.Articles)
}

func TestAggregateStock_UnknownWarehouseNeverCounted(t *testing.T) {
	rows := []entity.StockRow{
		{ArticleID: "A1", WarehouseCode: 0, Quantity: 11},
		{ArticleID: "A1", WarehouseCode: 5, Quantity: 12},
		{ArticleID: "A1", WarehouseCode: -1, Quantity: 13},
	}
	// 2^64+1 truncado a 64 bits sería el almacén 1.
	for _, raw := range []string{"18446744073709551617", "4294967297"} {
		code, _ := inventory.CoerceCode(raw)
		rows = append(rows, entity.StockRow{ArticleID: "A1", WarehouseCode: code, Quantity: 14})
	}
	got, _ := inventory.AggregateStock(rows, entity.DefaultWarehouses())

	assert.Equal(t, int64(0), got.Total("A1"))
	assert.Empty(t, got)
}

// Códigos y cantidades fuera de rango no pueden dar la vuelta y colarse en un centro.
func TestStockRowsFromTable_OversizedCellsFallBackToZero(t *testing.T) {
	src := table.New(
		[]string{"NumeroArticulo", "Codigo_almacen", "Stock"},
		[][]string{
			{"A1", "18446744073709551617", "100"},
			{"A1", "1", "18446744073709551615"},
			{"A1", "1", "1e10000000"},
			{"A1", "2", "4"},
		},
	)
	prepared, _ := inventory.Prepare(src, inventory.StockAliases)
	rows, issues := inventory.StockRowsFromTable(prepared)

	assert.Equal(t, []inventory.CoercionIssue{
		{Line: 2, Field: inventory.FieldWarehouse, Raw: "18446744073709551617"},
		{Line: 3, Field: inventory.FieldQuantity, Raw: "18446744073709551615"},
		{Line: 4, Field: inventory.FieldQuantity, Raw: "1e10000000"},
	}, issues)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.Quantity, int64(0))
	}

	got, stats := inventory.AggregateStock(rows, entity.DefaultWarehouses())
	assert.Equal(t, int64(0), got.Quantity("A1", entity.CenterColl))
	assert.Equal(t, int64(4), got.Quantity("A1", entity.CenterCalvia))
	assert.Equal(t, 1, stats.UnknownWarehouses[0])
}

func TestAggregateStock_SeveralWarehousesPerCenter(t *testing.T) {
	warehouses := entity.WarehouseMap{1: entity.CenterColl, 5: entity.CenterColl, 2: entity.CenterCalvia}
	rows := []entity.StockRow{
		{ArticleID: "A1", WarehouseCode: 1, Quantity: 4},
		{ArticleID: "A1", WarehouseCode: 5, Quantity: 6},
		{ArticleID: "A1", WarehouseCode: 2, Quantity: 1},
	}
	got, _ := inventory.AggregateStock(rows, warehouses)

	assert.Equal(t, int64(10), got.Quantity("A1", entity.CenterColl))
	assert.Equal(t, int64(1), got.Quantity("A1", entity.CenterCalvia))
	assert.Equal(t, []entity.CenterID{entity.CenterColl, entity.CenterCalvia}, warehouses.Centers())
}

// La suma por centros de un artículo es la suma de sus filas válidas, sea cual sea el orden.
func TestAggregateStock_ConservationIndependentOfOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	articles := []string{"A1", "A2", "A3", "A4"}

	var rows []entity.StockRow
	want := map[string]int64{}
	for i := 0; i < 400; i++ {
		r := entity.StockRow{
			ArticleID:     articles[rng.Intn(len(articles))],
			WarehouseCode: rng.Intn(7), // 0..6: incluye códigos inválidos
			Quantity:      int64(rng.Intn(50)),
		}
		if r.WarehouseCode >= 1 && r.WarehouseCode <= 4 {
			want[r.ArticleID] += r.Quantity
		}
		rows = append(rows, r)
	}

	first, _ := inventory.AggregateStock(rows, entity.DefaultWarehouses())
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	second, _ := inventory.AggregateStock(rows, entity.DefaultWarehouses())

	require.Equal(t, first, second)
	for _, a := range articles {
		var sum int64
		for _, c := range entity.DefaultWarehouses().Centers() {
			sum += first.Quantity(a, c)
		}
		assert.Equal(t, want[a], sum, "artículo %s", a)
		assert.Equal(t, want[a], first.Total(a), "artículo %s", a)
	}
}

func TestStockRowsFromTable_CoercesAndReports(t *testing.T) {
	src := table.New(
		[]string{"Articulo", "Almacén", "Existencias"},
		[][]string{
			{" A1 ", "1", "5"},
			{"A1", "dos", "3"},
			{"A2", "2", "muchas"},
			{"A3", "3,0", "1,5"},
		},
	)
	prepared, defaulted := inventory.Prepare(src, inventory.StockAliases)
	require.Empty(t, defaulted)

	rows, issues := inventory.StockRowsFromTable(prepared)
	require.Len(t, rows, 4)
	assert.Equal(t, entity.StockRow{ArticleID: "A1", WarehouseCode: 1, Quantity: 5}, rows[0])
	assert.Equal(t, entity.StockRow{ArticleID: "A1", WarehouseCode: 0, Quantity: 3}, rows[1])
	assert.Equal(t, entity.StockRow{ArticleID: "A2", WarehouseCode: 2, Quantity: 0}, rows[2])
	assert.Equal(t, entity.StockRow{ArticleID: "A3", WarehouseCode: 3, Quantity: 2}, rows[3])

	assert.Equal(t, []inventory.CoercionIssue{
		{Line: 3, Field: inventory.FieldWarehouse, Raw: "dos"},
		{Line: 4, Field: inventory.FieldQuantity, Raw: "muchas"},
	}, issues)
}
