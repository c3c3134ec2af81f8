package loam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry is returned for a catalog document that names a kind but
// cannot describe a usable type.
var ErrInvalidEntry = errors.New("invalid catalog entry")

// Entry is one structural type document.
type Entry struct {
	ID    string
	Meta  TypeMetadata
	Notes string
}

// Catalog keeps column and beam types as markdown documents with front
// matter, one file per type.
type Catalog struct {
	Repo   core.Repository
	logger *slog.Logger
}

// Option configures the Catalog.
type Option func(*Catalog)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New wraps an initialised Loam repository.
func New(repo core.Repository, opts ...Option) *Catalog {
	c := &Catalog{Repo: repo, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open initialises a Loam repository in dir. Versioning is off; the
// catalog is plain files.
func Open(dir string, readOnly bool, opts ...Option) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	repo, err := loam.Init(absPath,
		loam.WithVersioning(false),
		loam.WithForceTemp(false),
		loam.WithReadOnly(readOnly),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(repo, opts...), nil
}

// List returns every column and beam document, ordered by kind then name.
// Documents without a known kind are skipped.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	typed := loam.NewTypedRepository[TypeMetadata](c.Repo)
	docs, err := typed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	entries := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		meta := doc.Data
		meta.Kind = strings.ToLower(strings.TrimSpace(meta.Kind))
		if meta.Kind != KindColumn && meta.Kind != KindBeam {
			c.logger.Debug("Skipping catalog document", "id", doc.ID, "kind", meta.Kind)
			continue
		}
		if meta.Name == "" {
			meta.Name = trimExtension(doc.ID)
		}
		entries = append(entries, Entry{ID: doc.ID, Meta: meta, Notes: strings.TrimSpace(doc.Content)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Meta.Kind != entries[j].Meta.Kind {
			return entries[i].Meta.Kind < entries[j].Meta.Kind
		}
		return entries[i].Meta.Name < entries[j].Meta.Name
	})
	return entries, nil
}

// Import adds every catalog type to defs, creating the concrete and steel
// materials it names when missing. A type whose name already exists is
// updated in place and keeps its id. It returns how many types were
// imported.
func (c *Catalog) Import(ctx context.Context, defs *domain.Definitions) (int, error) {
	entries, err := c.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if err := apply(defs, e.Meta); err != nil {
			return 0, fmt.Errorf("%s: %w", e.ID, err)
		}
	}
	c.logger.Debug("Catalog imported", "types", len(entries))
	return len(entries), nil
}

// Export writes every column and beam type of defs as a document.
func (c *Catalog) Export(ctx context.Context, defs *domain.Definitions) error {
	for _, t := range defs.SortedColumnTypes() {
		if err := c.save(ctx, columnMetadata(defs, t)); err != nil {
			return err
		}
	}
	for _, t := range defs.SortedBeamTypes() {
		if err := c.save(ctx, beamMetadata(defs, t)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) save(ctx context.Context, meta TypeMetadata) error {
	front, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", meta.Name, err)
	}
	id := DocumentID(meta.Kind, meta.Name)
	content := "---\n" + string(front) + "---\n" + describe(meta) + "\n"
	if err := c.Repo.Save(ctx, core.Document{ID: id, Content: content}); err != nil {
		return fmt.Errorf("failed to save %s: %w", id, err)
	}
	c.logger.Debug("Catalog document saved", "id", id)
	return nil
}

// DocumentID names the file of a type, e.g. "column-s40x40.md".
func DocumentID(kind, name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		slug = "unnamed"
	}
	return kind + "-" + slug + ".md"
}

func describe(m TypeMetadata) string {
	switch m.Kind {
	case KindColumn:
		return fmt.Sprintf("# %s\n\nColumn %gx%g, %s / %s.", m.Name, m.Width, m.Depth, m.Concrete, m.Steel)
	default:
		return fmt.Sprintf("# %s\n\nBeam %gx%g, %s / %s.", m.Name, m.Width, m.Height, m.Concrete, m.Steel)
	}
}

func trimExtension(id string) string {
	return filepath.ToSlash(strings.TrimSuffix(id, filepath.Ext(id)))
}
