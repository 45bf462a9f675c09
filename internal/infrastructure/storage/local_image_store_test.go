package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/storage"
)

func TestSave_CreaDirectorioYSanea(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "imagens")
	store := storage.NewLocalImageStore(dir)

	name, err := store.Save(context.Background(), "../../Fachada galpão.jpg", strings.NewReader("jpeg"))

	require.NoError(t, err)
	assert.Equal(t, "Fachada_galpao.jpg", name)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestSave_NombreInutilizable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "imgs")
	store := storage.NewLocalImageStore(dir)

	name, err := store.Save(context.Background(), "...", strings.NewReader("x"))

	require.NoError(t, err)
	assert.Empty(t, name)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no debe crear el directorio sin archivos")
}
