package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
)

const ext = ".json"

// ErrEmptyKey is returned when a project key is empty.
var ErrEmptyKey = errors.New("project key cannot be empty")

// Store implements ports.ProjectStore using the local filesystem.
// It stores projects as JSON documents in a configured directory.
type Store struct {
	BasePath string
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".mugincad/projects".
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = filepath.Join(".mugincad", "projects")
	}
	s := &Store{BasePath: basePath, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) path(key string) string {
	return filepath.Join(s.BasePath, key+ext)
}

// Save writes the project atomically: temp file in the same directory,
// fsync, close, then rename over the destination.
func (s *Store) Save(ctx context.Context, key string, project *domain.Project) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure project directory: %w", err)
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+key+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := s.path(key)
	// Windows rename does not replace an existing file.
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to remove existing project file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file to project: %w", err)
	}

	s.logger.Debug("project saved", "key", key, "path", dest, "entities", len(project.Entities))
	return nil
}

// Load reads the project stored under key.
func (s *Store) Load(ctx context.Context, key string) (*domain.Project, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	return Decode(data)
}

// Delete removes the project file.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete project file: %w", err)
	}
	return nil
}

// List returns the keys of every stored project.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext || strings.HasPrefix(name, "tmp-") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ext))
	}
	sort.Strings(keys)
	return keys, nil
}

// Decode parses a project document. A document without a version is
// rejected with domain.ErrInvalidProject.
func Decode(data []byte) (*domain.Project, error) {
	var project domain.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProject, err)
	}
	if project.Version == "" {
		return nil, fmt.Errorf("%w: missing version", domain.ErrInvalidProject)
	}
	return &project, nil
}
