// Package integration holds end-to-end tests over the real SQLite
// catalog store and a fully random game session. Run with
// INTEGRATION_TEST=1.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkgirl/dreamlife/internal/infrastructure/catalog/sqlite"
)

func TestMain(m *testing.M) {
	// Skip if INTEGRATION_TEST is not set
	if os.Getenv("INTEGRATION_TEST") != "1" {
		os.Exit(0)
	}

	os.Exit(m.Run())
}

// newFileStore opens a catalog store on a real database file.
func newFileStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.EnsureSchema(t.Context()))
	return store
}
