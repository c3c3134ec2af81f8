package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
)

// DefaultLockTTL bounds how long a distributed lock survives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.ProjectStore

	mu    sync.Mutex            // guards locks and live
	locks map[string]*lockEntry // per-session locks
	live  map[string]*mugincad.Drawing

	locker   ports.DistributedLocker
	lockTTL  time.Duration
	drawOpts []mugincad.Option
	logger   *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets the distributed lock expiry.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithDrawingOptions sets the options every drawing is created with.
func WithDrawingOptions(opts ...mugincad.Option) Option {
	return func(m *Manager) {
		m.drawOpts = append(m.drawOpts, opts...)
	}
}

// NewManager creates a new session manager over the given project store.
func NewManager(store ports.ProjectStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		live:    make(map[string]*mugincad.Drawing),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must lock entry.mu and call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

func (m *Manager) cached(id string) (*mugincad.Drawing, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.live[id]
	return d, ok
}

func (m *Manager) keep(id string, d *mugincad.Drawing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live[id] = d
}

func (m *Manager) forget(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.live, id)
}

func (m *Manager) options(id string) []mugincad.Option {
	opts := append([]mugincad.Option(nil), m.drawOpts...)
	return append(opts, mugincad.WithLogger(logging.ForSession(m.logger, id)))
}

// open returns the live drawing, rebuilding it from the store or starting
// an empty one. Callers hold the session lock.
func (m *Manager) open(ctx context.Context, id string) (*mugincad.Drawing, bool, error) {
	if d, ok := m.cached(id); ok {
		return d, false, nil
	}

	p, err := m.store.Load(ctx, id)
	switch {
	case err == nil:
		d, err := mugincad.Open(p, m.options(id)...)
		if err != nil {
			return nil, false, fmt.Errorf("failed to open session %q: %w", id, err)
		}
		m.keep(id, d)
		return d, false, nil
	case errors.Is(err, domain.ErrProjectNotFound):
		d := mugincad.New(m.options(id)...)
		d.Name = id
		m.keep(id, d)
		return d, true, nil
	default:
		return nil, false, fmt.Errorf("failed to check session existence: %w", err)
	}
}

// Load returns the stored project of a session.
// Returns domain.ErrSessionNotFound if nothing is stored under id.
func (m *Manager) Load(ctx context.Context, id string) (*domain.Project, error) {
	var project *domain.Project
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		if d, ok := m.cached(id); ok {
			project = d.Project()
			return nil
		}
		p, err := m.store.Load(ctx, id)
		if errors.Is(err, domain.ErrProjectNotFound) {
			return domain.ErrSessionNotFound
		}
		project = p
		return err
	})
	return project, err
}

// LoadOrStart opens a session, creating and persisting an empty drawing
// when none exists.
func (m *Manager) LoadOrStart(ctx context.Context, id string) (*domain.Project, error) {
	var project *domain.Project
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		d, created, err := m.open(ctx, id)
		if err != nil {
			return err
		}
		project = d.Project()
		if !created {
			return nil
		}
		if err := m.store.Save(ctx, id, project); err != nil {
			m.forget(id)
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		m.logger.Debug("session started", "session_id", id)
		return nil
	})
	return project, err
}

// Do runs fn against the live drawing of a session and persists the result.
// The drawing must not be retained after fn returns.
func (m *Manager) Do(ctx context.Context, id string, fn func(*mugincad.Drawing) error) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		d, _, err := m.open(ctx, id)
		if err != nil {
			return err
		}
		fnErr := fn(d)
		if err := m.store.Save(ctx, id, d.Project()); err != nil {
			return fmt.Errorf("failed to save session %q: %w", id, err)
		}
		return fnErr
	})
}

// Save replaces a session's drawing with project.
func (m *Manager) Save(ctx context.Context, id string, project *domain.Project) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		d, err := mugincad.Open(project, m.options(id)...)
		if err != nil {
			return err
		}
		if err := m.store.Save(ctx, id, project); err != nil {
			return err
		}
		m.keep(id, d)
		return nil
	})
}

// Evict drops the in-memory drawing; the stored project is kept. Active
// commands and undo history are lost.
func (m *Manager) Evict(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(context.Context) error {
		m.forget(id)
		return nil
	})
}

// Delete removes the session from memory and from the store.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		m.forget(id)
		return m.store.Delete(ctx, id)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Live reports how many drawings are held in memory.
func (m *Manager) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Store returns the underlying project store.
func (m *Manager) Store() ports.ProjectStore {
	return m.store
}

// WithLock executes fn while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, id, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"session_id", id,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
