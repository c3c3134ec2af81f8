package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
)

// Factory builds a fresh command instance.
type Factory func() command.Command

// Registry maps command names and aliases to factories. Lookups are case
// insensitive.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under every given name.
// If a name is already taken, it is overwritten.
func (r *Registry) Register(fn Factory, names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		r.factories[strings.ToLower(n)] = fn
	}
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.ToLower(name)]
	return ok
}

// Create looks up name and builds a new command.
// Returns ErrUnknownCommand if the name is not registered.
func (r *Registry) Create(name string) (command.Command, error) {
	r.mu.RLock()
	fn, ok := r.factories[strings.ToLower(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, name)
	}
	return fn(), nil
}

// Names lists every registered name and alias, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for n := range r.factories {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// DefaultOption tunes the commands built by NewDefault.
type DefaultOption func(*defaults)

type defaults struct {
	trimTolerance float32
}

// WithTrimTolerance sets the pick distance of the trim command.
func WithTrimTolerance(tol float32) DefaultOption {
	return func(d *defaults) {
		if tol > 0 {
			d.trimTolerance = tol
		}
	}
}

// NewDefault returns a registry holding the full drafting command set.
func NewDefault(opts ...DefaultOption) *Registry {
	cfg := defaults{trimTolerance: command.TrimTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := NewRegistry()
	r.Register(func() command.Command { return command.NewLine() }, "line", "l")
	r.Register(func() command.Command { return command.NewCircle() }, "circle", "c")
	r.Register(func() command.Command { return command.NewRectangle() }, "rect", "rectangle")
	r.Register(func() command.Command { return command.NewArc() }, "arc")
	r.Register(func() command.Command { return command.NewMove() }, "move", "w")
	r.Register(func() command.Command { return command.NewRotate() }, "rotate", "e")
	r.Register(func() command.Command { return command.NewScale() }, "scale", "r")
	r.Register(func() command.Command { return command.NewCopy() }, "copy", "co")
	r.Register(func() command.Command { return command.NewCut() }, "cut", "x")
	r.Register(func() command.Command { return command.NewAxis() }, "axis", "aks", "a")
	r.Register(func() command.Command {
		t := command.NewTrim()
		t.Tolerance = cfg.trimTolerance
		return t
	}, "trim", "t")
	r.Register(func() command.Command { return command.NewOffset() }, "offset", "o")
	r.Register(func() command.Command { return command.NewText() }, "text")
	r.Register(func() command.Command { return command.NewPlaceColumn() }, "place_column")
	r.Register(func() command.Command { return command.NewPlaceBeam() }, "place_beam")
	r.Register(func() command.Command { return command.NewDistance() }, "distance", "dist")
	r.Register(func() command.Command { return command.NewMeasure() }, "measure", "dim")
	r.Register(func() command.Command { return command.NewArea() }, "area")
	r.Register(func() command.Command { return command.NewPerimeter() }, "perim")
	r.Register(func() command.Command { return command.NewSelectRegion() }, "select_region")
	return r
}
