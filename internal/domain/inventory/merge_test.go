package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/domain/inventory"
	"github.com/jhoicas/articulos-centros/internal/domain/table"
)

func TestMergeCatalog_LeftJoinKeepsEveryArticle(t *testing.T) {
	articles := []entity.Article{
		{ArticleID: "A1", SupplierID: "S1", ListPrice: inventory.CoercePrice("12.5")},
		{ArticleID: "A2", SupplierID: "S404", ListPrice: inventory.CoercePrice("0")},
		{ArticleID: "A3", SupplierID: "", ListPrice: inventory.CoercePrice("")},
		{ArticleID: "A1", SupplierID: "S1", ListPrice: inventory.CoercePrice("x")},
	}
	suppliers := []entity.Supplier{
		{SupplierID: "S1", Name: "Acme"},
		{SupplierID: "S1", Name: "Acme duplicado"},
		{SupplierID: "S2", Name: "Otro"},
	}

	got, stats := inventory.MergeCatalog(articles, suppliers)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"A1", "A2", "A3", "A1"}, []string{got[0].ArticleID, got[1].ArticleID, got[2].ArticleID, got[3].ArticleID})
	assert.Equal(t, "Acme", got[0].SupplierName)
	assert.Equal(t, "", got[1].SupplierName)
	assert.Equal(t, "", got[2].SupplierName)
	assert.Equal(t, "12.50", got[0].DisplayPrice)
	assert.Equal(t, "0.00", got[1].DisplayPrice)
	assert.Equal(t, "", got[2].DisplayPrice)
	assert.Equal(t, "", got[3].DisplayPrice)

	assert.Equal(t, inventory.MergeStats{Articles: 4, UnmatchedSuppliers: 1, UnknownPrices: 2, DuplicateSuppliers: 1}, stats)
}

func TestArticlesAndSuppliersFromTable_TrimJoinKeys(t *testing.T) {
	catalog := table.New(
		[]string{"Nº Articulo", "Ref. Prov.", "Descripción", "PVP", "Código EAN", "CodProveedor"},
		[][]string{{" A1 ", "R-1", " Tornillo ", "12,5", "8400000000001", " S1 "}},
	)
	suppliers := table.New([]string{"Cod. Proveedor", "Nombre"}, [][]string{{"S1  ", "Acme"}})

	preparedCatalog, defaulted := inventory.Prepare(catalog, inventory.CatalogAliases)
	require.Empty(t, defaulted)
	preparedSuppliers, _ := inventory.Prepare(suppliers, inventory.SupplierAliases)

	articles := inventory.ArticlesFromTable(preparedCatalog)
	require.Len(t, articles, 1)
	assert.Equal(t, "A1", articles[0].ArticleID)
	assert.Equal(t, "R-1", articles[0].SupplierRef)
	assert.Equal(t, "Tornillo", articles[0].Description)
	assert.Equal(t, "8400000000001", articles[0].EAN)
	assert.Equal(t, "S1", articles[0].SupplierID)

	merged, _ := inventory.MergeCatalog(articles, inventory.SuppliersFromTable(preparedSuppliers))
	assert.Equal(t, "Acme", merged[0].SupplierName)
	assert.Equal(t, "12.50", merged[0].DisplayPrice)
}

func TestPrepare_DefaultsMissingOptionalColumns(t *testing.T) {
	catalog := table.New([]string{"NumeroArticulo", "Descripcion"}, [][]string{{"A1", "Tornillo"}})
	prepared, defaulted := inventory.Prepare(catalog, inventory.CatalogAliases)

	assert.ElementsMatch(t, []string{
		inventory.FieldSupplierRef, inventory.FieldListPrice, inventory.FieldEAN, inventory.FieldSupplierID,
	}, defaulted)

	articles := inventory.ArticlesFromTable(prepared)
	require.Len(t, articles, 1)
	assert.Equal(t, "", articles[0].EAN)
	assert.False(t, articles[0].ListPrice.Valid)
}
