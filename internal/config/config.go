// Package config loads engine settings from YAML or JSON files and applies
// key=value overrides.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "mugincad.yaml"

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type StoreConfig struct {
	Backend  string        `yaml:"backend" json:"backend" mapstructure:"backend"`
	Dir      string        `yaml:"dir" json:"dir" mapstructure:"dir"`
	RedisURL string        `yaml:"redis_url" json:"redis_url" mapstructure:"redis_url"`
	Prefix   string        `yaml:"prefix" json:"prefix" mapstructure:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl" mapstructure:"ttl"`

	// EncryptionKey is a base64 AES-256 key. When set, projects are sealed
	// before they reach the backend.
	EncryptionKey string `yaml:"encryption_key" json:"encryption_key" mapstructure:"encryption_key"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" json:"addr" mapstructure:"addr"`
}

// Config holds every tunable of the engine and its adapters.
type Config struct {
	PickTolerance float32           `yaml:"pick_tolerance" json:"pick_tolerance" mapstructure:"pick_tolerance"`
	TrimTolerance float32           `yaml:"trim_tolerance" json:"trim_tolerance" mapstructure:"trim_tolerance"`
	UndoDepth     int               `yaml:"undo_depth" json:"undo_depth" mapstructure:"undo_depth"`
	Filled        bool              `yaml:"filled" json:"filled" mapstructure:"filled"`
	LogLevel      string            `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	CatalogDir    string            `yaml:"catalog_dir" json:"catalog_dir" mapstructure:"catalog_dir"`
	Store         StoreConfig       `yaml:"store" json:"store" mapstructure:"store"`
	Snap          domain.SnapConfig `yaml:"snap" json:"snap" mapstructure:"snap"`
	HTTP          HTTPConfig        `yaml:"http" json:"http" mapstructure:"http"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		PickTolerance: 5,
		TrimTolerance: command.TrimTolerance,
		UndoDepth:     50,
		LogLevel:      "info",
		CatalogDir:    "catalog",
		Store: StoreConfig{
			Backend: BackendFile,
			Dir:     filepath.Join(".mugincad", "projects"),
		},
		Snap: domain.DefaultSnapConfig(),
		HTTP: HTTPConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned. Files ending in .json are parsed as JSON, anything
// else as YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

// Apply decodes overrides into cfg. Keys use dots for nesting
// ("store.backend") and values may be strings, as they arrive from --set
// flags.
func Apply(cfg *Config, overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	nested := map[string]any{}
	for k, v := range overrides {
		parts := strings.Split(k, ".")
		m := nested
		for _, p := range parts[:len(parts)-1] {
			child, ok := m[p].(map[string]any)
			if !ok {
				child = map[string]any{}
				m[p] = child
			}
			m = child
		}
		m[parts[len(parts)-1]] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(nested); err != nil {
		return fmt.Errorf("failed to apply overrides: %w", err)
	}
	return cfg.Validate()
}

// ParseSet turns "key=value" pairs into an override map.
func ParseSet(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid override %q: expected key=value", p)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

// Validate checks the values that would otherwise fail late.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("invalid store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == BackendRedis && c.Store.RedisURL == "" {
		return fmt.Errorf("store.redis_url is required for the redis backend")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
