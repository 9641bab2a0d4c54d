package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/mocks"
	"github.com/zkgirl/dreamlife/internal/domain/services"
	"github.com/zkgirl/dreamlife/internal/infrastructure/config"
)

func newCatalogHandler(store *mocks.CatalogStore) *CatalogHandler {
	return NewCatalogHandler(services.NewCatalogService(store))
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const eventsJSON = `[
	{"id": "pack_one", "text": "Something happens.", "choices": [{"text": "Okay"}]},
	{"id": "pack_two", "text": "Something else happens.", "choices": [{"text": "Okay"}]}
]`

const eventsYAML = `
- id: pack_yaml
  text: Something happens.
  choices:
    - text: Okay
`

func TestCatalogHandler_HandleInit(t *testing.T) {
	tmpDir := t.TempDir()
	store := &mocks.CatalogStore{}
	handler := newCatalogHandler(store)

	result, err := handler.HandleInit(t.Context(), tmpDir)
	require.NoError(t, err)

	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.Equal(t, len(entities.DefaultEvents), result.Seeded["events"])
	assert.True(t, config.Exists(tmpDir))
	assert.Len(t, store.Events, len(entities.DefaultEvents))
}

func TestCatalogHandler_HandleInit_AlreadyInitialized(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, config.WriteDefault(tmpDir))

	handler := newCatalogHandler(&mocks.CatalogStore{})

	_, err := handler.HandleInit(t.Context(), tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestCatalogHandler_HandleImport_JSON(t *testing.T) {
	store := &mocks.CatalogStore{}
	handler := newCatalogHandler(store)
	path := writeTempFile(t, "events.json", eventsJSON)

	result, err := handler.HandleImport(t.Context(), path, ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)
	assert.Len(t, store.Events, 2)
}

func TestCatalogHandler_HandleImport_YAML(t *testing.T) {
	store := &mocks.CatalogStore{}
	handler := newCatalogHandler(store)
	path := writeTempFile(t, "events.yaml", eventsYAML)

	result, err := handler.HandleImport(t.Context(), path, ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, store.Events, 1)
	assert.Equal(t, "pack_yaml", store.Events[0].ID)
}

func TestCatalogHandler_HandleImport_ExplicitFormat(t *testing.T) {
	store := &mocks.CatalogStore{}
	handler := newCatalogHandler(store)
	// YAML content under an extension ForFile can't dispatch.
	path := writeTempFile(t, "events.pack", eventsYAML)

	result, err := handler.HandleImport(t.Context(), path, ImportOptions{Format: "yaml"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestCatalogHandler_HandleImport_UnsupportedFormat(t *testing.T) {
	handler := newCatalogHandler(&mocks.CatalogStore{})
	path := writeTempFile(t, "events.txt", eventsJSON)

	_, err := handler.HandleImport(t.Context(), path, ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestCatalogHandler_HandleImport_MissingFile(t *testing.T) {
	handler := newCatalogHandler(&mocks.CatalogStore{})

	_, err := handler.HandleImport(t.Context(), filepath.Join(t.TempDir(), "nope.json"), ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")
}

func TestCatalogHandler_HandleValidate_DoesNotSave(t *testing.T) {
	store := &mocks.CatalogStore{}
	handler := newCatalogHandler(store)
	path := writeTempFile(t, "events.json", eventsJSON)

	result, err := handler.HandleValidate(t.Context(), path, "")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, store.Events)
}

func TestCatalogHandler_HandleList(t *testing.T) {
	store := &mocks.CatalogStore{
		Events:  []entities.Event{{ID: "e"}},
		Careers: []entities.CareerPath{{}, {}},
	}
	handler := newCatalogHandler(store)

	result, err := handler.HandleList(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Counts["events"])
	assert.Equal(t, 2, result.Counts["careers"])
	assert.Equal(t, 0, result.Counts["majors"])
}
