package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/articulos-centros/internal/domain"
	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/infrastructure/files"
)

func writeOverride(t *testing.T, dir, kind string, center entity.CenterID, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, kind), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, kind, string(center)+".json"), []byte(body), 0o644))
}

func TestOverrideStore_MissingFilesAreEmpty(t *testing.T) {
	ov, err := files.NewOverrideStore(t.TempDir()).ForCenter(entity.CenterColl)
	require.NoError(t, err)
	assert.Empty(t, ov.EAN)
	assert.Empty(t, ov.Images)
}

func TestOverrideStore_ReadsPerCenterMaps(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "ean", entity.CenterColl, `{"A1": 8400000000001, "A2": " 123 ", "A3": "", "A4": null}`)
	writeOverride(t, dir, "images", entity.CenterColl, `{"A1": "https://img/a1.jpg"}`)
	writeOverride(t, dir, "ean", entity.CenterCalvia, `{"A1": "999"}`)

	ov, err := files.NewOverrideStore(dir).ForCenter(entity.CenterColl)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A1": "8400000000001", "A2": "123"}, ov.EAN)
	assert.Equal(t, map[string]string{"A1": "https://img/a1.jpg"}, ov.Images)

	other, err := files.NewOverrideStore(dir).ForCenter(entity.CenterAlcudia)
	require.NoError(t, err)
	assert.Empty(t, other.EAN)
}

func TestOverrideStore_BadJSONKeepsTheOtherMap(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "ean", entity.CenterSantanyi, `{"A1": `)
	writeOverride(t, dir, "images", entity.CenterSantanyi, `{"A1": "https://img/a1.jpg"}`)

	ov, err := files.NewOverrideStore(dir).ForCenter(entity.CenterSantanyi)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnreadableSource)
	assert.Empty(t, ov.EAN)
	assert.Equal(t, "https://img/a1.jpg", ov.Images["A1"])
}
