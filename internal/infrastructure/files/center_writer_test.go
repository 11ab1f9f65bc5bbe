package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/infrastructure/files"
)

func TestCenterWriter_WritesSemicolonFileWithHeader(t *testing.T) {
	root := t.TempDir()
	w := files.NewCenterWriter(root, "")

	path, err := w.Write(entity.CenterCalvia, []entity.CenterExportRow{
		{ArticleID: "A1", Description: "Tornillo; largo", SupplierName: "Acme", LegacyPrice: "12.50", Price: "12.50", Stock: 3},
		{ArticleID: "A2", Stock: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "calvia", "Articulos.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"NumeroArticulo;ReferenciaProveedor;Descripcion;CodigoEAN;NombreProveedor;ImagenURL;ImagenURL2;ImagenURL3;Precio;PrecioVenta;Stock\n"+
			"A1;;\"Tornillo; largo\";;Acme;;;;12.50;12.50;3\n"+
			"A2;;;;;;;;;;0\n",
		string(data))
}

func TestCenterWriter_OverwritesPreviousRun(t *testing.T) {
	root := t.TempDir()
	w := files.NewCenterWriter(root, "Articulos.csv")

	_, err := w.Write(entity.CenterColl, []entity.CenterExportRow{{ArticleID: "VIEJO"}, {ArticleID: "VIEJO2"}})
	require.NoError(t, err)
	path, err := w.Write(entity.CenterColl, []entity.CenterExportRow{{ArticleID: "NUEVO", Stock: 1}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "VIEJO")
	assert.Contains(t, string(data), "NUEVO;")

	entries, err := os.ReadDir(filepath.Join(root, "coll"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no deben quedar temporales")
}

func TestCenterWriter_Attachment(t *testing.T) {
	root := t.TempDir()
	path, err := files.NewCenterWriter(root, "").WriteAttachment(entity.CenterSantanyi, "Articulos.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "santanyi", "Articulos.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
}
