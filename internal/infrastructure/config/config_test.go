package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultCatalogFile, cfg.Catalog.Path)
	assert.Nil(t, cfg.Game.Seed)
	assert.Empty(t, cfg.Catalog.EventFiles)
}

func TestLoad_MissingConfig(t *testing.T) {
	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, DefaultConfigDir)
	require.NoError(t, os.MkdirAll(configDir, 0755))

	content := `
game:
  seed: 42
catalog:
  event_files:
    - packs/extra.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, DefaultConfigFile), []byte(content), 0644))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	require.NotNil(t, cfg.Game.Seed)
	assert.Equal(t, uint64(42), *cfg.Game.Seed)
	assert.Equal(t, []string{"packs/extra.yaml"}, cfg.Catalog.EventFiles)
	// Unset catalog path falls back to the default.
	assert.Equal(t, DefaultCatalogFile, cfg.Catalog.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, WriteDefault(tmpDir))

	t.Setenv("DREAMLIFE_CATALOG_PATH", "/var/lib/dreamlife/catalog.db")

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/dreamlife/catalog.db", cfg.Catalog.Path)
}

func TestCatalogDBPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/home/x", DefaultConfigDir, "catalog.db"), cfg.CatalogDBPath("/home/x"))

	cfg.Catalog.Path = "/abs/catalog.db"
	assert.Equal(t, "/abs/catalog.db", cfg.CatalogDBPath("/home/x"))

	cfg.Catalog.Path = ""
	assert.Equal(t, filepath.Join("/home/x", DefaultConfigDir, DefaultCatalogFile), cfg.CatalogDBPath("/home/x"))
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalogFile, cfg.Catalog.Path)

	// Second init refuses to clobber.
	err = WriteDefault(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWrite_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	seed := uint64(7)
	cfg := Default()
	cfg.Game.Seed = &seed
	cfg.Catalog.EventFiles = []string{"a.json", "b.yaml"}

	require.NoError(t, Write(tmpDir, cfg))

	loaded, err := Load(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, loaded.Game.Seed)
	assert.Equal(t, uint64(7), *loaded.Game.Seed)
	assert.Equal(t, cfg.Catalog.EventFiles, loaded.Catalog.EventFiles)
}
