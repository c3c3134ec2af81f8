package ports

import (
	"context"
	"testing"
	"time"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject(name string) *domain.Project {
	m := domain.NewModel()
	m.Add(domain.NewLine(geom.Vec(0, 0), geom.Vec(10, 0)))
	arc := domain.NewArcDirected(geom.Vec(0, 0), geom.Vec(5, 0), geom.Vec(0, 5), false, false)
	m.AddEntity(m.NewGroup("group", m.NewEntity(arc), m.NewEntity(domain.NewCustomText(geom.Vec(1, 1), "note"))))
	m.Axes.AddVertical(25)
	m.Definitions.SeedDefaults()
	p := m.Project(domain.DefaultSnapConfig())
	p.Name = name
	return p
}

// RunProjectStoreContract runs a suite of tests to verify that a ProjectStore implementation
// adheres to the defined interface contract.
func RunProjectStoreContract(t *testing.T, store ProjectStore) {
	ctx := context.Background()
	key := "contract-test-project-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		project := sampleProject("plan")

		err := store.Save(ctx, key, project)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.ProjectVersion, loaded.Version)
		assert.Equal(t, "plan", loaded.Name)
		require.Len(t, loaded.Entities, 2)
		assert.Equal(t, domain.ShapeLine, loaded.Entities[0].Kind())
		require.Len(t, loaded.Entities[1].Children, 2)
		assert.Equal(t, domain.ShapeArc, loaded.Entities[1].Children[0].Kind())
		assert.Equal(t, project.NextID, loaded.NextID)
		assert.Len(t, loaded.Axes.Axes, 1)
		assert.Len(t, loaded.Definitions.ColumnTypes, 1)
	})

	t.Run("Stored copy is isolated", func(t *testing.T) {
		project := sampleProject("isolated")
		require.NoError(t, store.Save(ctx, key, project))
		project.Entities = nil

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Len(t, loaded.Entities, 2)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sampleProject("gone")))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound, "Load after Delete should return ErrProjectNotFound")

		assert.NoError(t, store.Delete(ctx, key), "deleting twice is fine")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		_ = store.Save(ctx, id1, sampleProject("one"))
		_ = store.Save(ctx, id2, sampleProject("two"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
