package cli

import (
	"fmt"
	"log/slog"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/internal/adapters/file"
	redisStore "github.com/Hakkology/MuginCAD-sub000/internal/adapters/redis"
	"github.com/Hakkology/MuginCAD-sub000/internal/config"
	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/memory"
	redisLock "github.com/Hakkology/MuginCAD-sub000/pkg/adapters/redis"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/persistence/middleware"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
	"github.com/Hakkology/MuginCAD-sub000/pkg/registry"
	"github.com/Hakkology/MuginCAD-sub000/pkg/session"
)

// NewLogger configures the application logger. Debug wins over the
// configured level.
func NewLogger(cfg config.Config, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// Backend is an opened project store plus what it needs released.
type Backend struct {
	Store  ports.ProjectStore
	Locker ports.DistributedLocker
	Close  func() error
}

// OpenBackend builds the project store named by cfg, sealing projects when
// an encryption key is configured.
func OpenBackend(cfg config.StoreConfig, logger *slog.Logger) (*Backend, error) {
	b, err := openBackend(cfg, logger)
	if err != nil || cfg.EncryptionKey == "" {
		return b, err
	}
	key, err := middleware.ParseKey(cfg.EncryptionKey)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	b.Store = middleware.Chain(b.Store, mw)
	return b, nil
}

func openBackend(cfg config.StoreConfig, logger *slog.Logger) (*Backend, error) {
	nop := func() error { return nil }
	switch cfg.Backend {
	case config.BackendMemory:
		return &Backend{Store: memory.NewStore(), Close: nop}, nil
	case config.BackendFile, "":
		return &Backend{Store: file.New(cfg.Dir, file.WithLogger(logger)), Close: nop}, nil
	case config.BackendRedis:
		opts := []redisStore.Option{redisStore.WithTTL(cfg.TTL)}
		if cfg.Prefix != "" {
			opts = append(opts, redisStore.WithPrefix(cfg.Prefix))
		}
		store, err := redisStore.NewFromURL(cfg.RedisURL, opts...)
		if err != nil {
			return nil, err
		}
		locker := redisLock.NewLocker(store.Client(), cfg.Prefix)
		return &Backend{Store: store, Locker: locker, Close: store.Close}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// DrawingOptions maps the configuration onto drawing options.
func DrawingOptions(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) []mugincad.Option {
	return []mugincad.Option{
		mugincad.WithLogger(logger),
		mugincad.WithLifecycleHooks(hooks),
		mugincad.WithRegistry(registry.NewDefault(registry.WithTrimTolerance(cfg.TrimTolerance))),
		mugincad.WithUndoDepth(cfg.UndoDepth),
		mugincad.WithPickTolerance(cfg.PickTolerance),
		mugincad.WithSnap(cfg.Snap),
		mugincad.WithFilled(cfg.Filled),
	}
}

// NewManager wires a session manager over b. A redis backend also
// serialises writers across processes.
func NewManager(b *Backend, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) *session.Manager {
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithDrawingOptions(DrawingOptions(cfg, logger, hooks)...),
	}
	if b.Locker != nil {
		opts = append(opts, session.WithLocker(b.Locker))
	}
	return session.NewManager(b.Store, opts...)
}

// LoadConfig reads path (config.DefaultPath when empty) and layers the
// --set overrides on top.
func LoadConfig(path string, sets []string) (config.Config, error) {
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	overrides, err := config.ParseSet(sets)
	if err != nil {
		return cfg, err
	}
	if err := config.Apply(&cfg, overrides); err != nil {
		return cfg, err
	}
	return cfg, nil
}
