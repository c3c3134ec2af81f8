package testutils

import (
	"path/filepath"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/loam"
	"github.com/stretchr/testify/require"
)

// SetupCatalog creates a temporary directory and opens a writable type
// catalog in it. It returns the absolute path to the temp dir and the
// catalog. It fails the test immediately on error.
func SetupCatalog(t *testing.T) (string, *loam.Catalog) {
	t.Helper()

	// Loam sometimes prefers absolute paths, though t.TempDir usually returns one.
	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	catalog, err := loam.Open(absPath, false)
	require.NoError(t, err, "Failed to init loam catalog")

	return absPath, catalog
}
