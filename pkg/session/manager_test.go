package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/memory"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
	"github.com/Hakkology/MuginCAD-sub000/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SlowStore simulates latency to provoke race conditions if locking is missing.
type SlowStore struct {
	*memory.Store
}

func (s SlowStore) Save(ctx context.Context, key string, p *domain.Project) error {
	time.Sleep(5 * time.Millisecond)
	return s.Store.Save(ctx, key, p)
}

func (s SlowStore) Load(ctx context.Context, key string) (*domain.Project, error) {
	time.Sleep(5 * time.Millisecond)
	return s.Store.Load(ctx, key)
}

func TestManager_ConcurrentEditsAreSerialised(t *testing.T) {
	store := SlowStore{memory.NewStore()}
	manager := session.NewManager(store)
	ctx := context.Background()
	id := "race-test"

	var wg sync.WaitGroup
	writers := 10
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := manager.Do(ctx, id, func(d *mugincad.Drawing) error {
				d.Submit("line")
				d.Click(geom.Vec(float32(i), 0))
				d.Click(geom.Vec(float32(i), 10))
				d.Cancel()
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	p, err := manager.Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, p.Entities, writers, "every writer's line survives")
}

func TestManager_LoadOrStart(t *testing.T) {
	store := SlowStore{memory.NewStore()}
	manager := session.NewManager(store)
	ctx := context.Background()
	id := "atomic-init"

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := manager.LoadOrStart(ctx, id)
			assert.NoError(t, err)
			assert.NotNil(t, p)
		}()
	}
	wg.Wait()

	p, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, p.Name)
	assert.Equal(t, domain.ProjectVersion, p.Version)
}

func TestManager_LoadMissing(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	_, err := manager.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_ActiveCommandSurvivesBetweenCalls(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	ctx := context.Background()

	require.NoError(t, manager.Do(ctx, "s", func(d *mugincad.Drawing) error {
		d.Submit("circle")
		d.Click(geom.Vec(0, 0))
		return nil
	}))

	var status string
	require.NoError(t, manager.Do(ctx, "s", func(d *mugincad.Drawing) error {
		d.Submit("5")
		status = d.Status()
		return nil
	}))
	assert.Equal(t, "Command:", status)

	p, err := manager.Load(ctx, "s")
	require.NoError(t, err)
	require.Len(t, p.Entities, 1)
	assert.Equal(t, domain.ShapeCircle, p.Entities[0].Kind())
}

func TestManager_EvictRebuildsFromStore(t *testing.T) {
	store := memory.NewStore()
	manager := session.NewManager(store)
	ctx := context.Background()

	require.NoError(t, manager.Do(ctx, "s", func(d *mugincad.Drawing) error {
		d.Submit("rect")
		d.Click(geom.Vec(0, 0))
		d.Click(geom.Vec(4, 4))
		return nil
	}))
	assert.Equal(t, 1, manager.Live())

	require.NoError(t, manager.Evict(ctx, "s"))
	assert.Equal(t, 0, manager.Live())

	var count int
	require.NoError(t, manager.Do(ctx, "s", func(d *mugincad.Drawing) error {
		count = d.Model().Len()
		return nil
	}))
	assert.Equal(t, 1, count)
}

func TestManager_DoReturnsCallbackError(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	boom := errors.New("boom")
	err := manager.Do(context.Background(), "s", func(*mugincad.Drawing) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestManager_SaveAndDelete(t *testing.T) {
	store := memory.NewStore()
	manager := session.NewManager(store)
	ctx := context.Background()

	m := domain.NewModel()
	m.Add(domain.NewLine(geom.Vec(0, 0), geom.Vec(1, 1)))
	require.NoError(t, manager.Save(ctx, "imported", m.Project(domain.DefaultSnapConfig())))

	keys, err := manager.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"imported"}, keys)

	assert.ErrorIs(t, manager.Save(ctx, "bad", &domain.Project{}), domain.ErrInvalidProject)

	require.NoError(t, manager.Delete(ctx, "imported"))
	_, err = store.Load(ctx, "imported")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

// countingLocker records lock usage.
type countingLocker struct {
	mu      sync.Mutex
	locks   int
	unlocks int
	fail    error
}

func (l *countingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail != nil {
		return nil, l.fail
	}
	l.locks++
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.unlocks++
		return nil
	}, nil
}

func TestManager_DistributedLocker(t *testing.T) {
	locker := &countingLocker{}
	manager := session.NewManager(memory.NewStore(), session.WithLocker(locker), session.WithLockTTL(time.Second))
	ctx := context.Background()

	_, err := manager.LoadOrStart(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 1, locker.locks)
	assert.Equal(t, 1, locker.unlocks)

	locker.fail = domain.ErrLockNotAcquired
	err = manager.Do(ctx, "s", func(*mugincad.Drawing) error { return nil })
	assert.ErrorIs(t, err, domain.ErrLockNotAcquired)
}
