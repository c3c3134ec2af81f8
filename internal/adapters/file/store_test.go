package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/internal/adapters/file"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.ProjectStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	ports.RunProjectStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_WritesJSONDocument(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)

	m := domain.NewModel()
	m.Add(domain.NewCircle(geom.Vec(1, 2), 3, true))
	p := m.Project(domain.DefaultSnapConfig())

	require.NoError(t, store.Save(context.Background(), "plan", p))

	data, err := os.ReadFile(filepath.Join(dir, "plan.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "1.0.0"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_Errors(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	t.Run("empty key", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, "", &domain.Project{Version: domain.ProjectVersion}), file.ErrEmptyKey)
		_, err := store.Load(ctx, "")
		assert.ErrorIs(t, err, file.ErrEmptyKey)
	})

	t.Run("corrupt document", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))
		_, err := store.Load(ctx, "bad")
		assert.ErrorIs(t, err, domain.ErrInvalidProject)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := file.Decode([]byte(`{"entities":[]}`))
		assert.ErrorIs(t, err, domain.ErrInvalidProject)
	})

	t.Run("list on missing dir", func(t *testing.T) {
		keys, err := file.New(filepath.Join(dir, "nope")).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
