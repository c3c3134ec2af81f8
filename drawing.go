package mugincad

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/internal/runtime"
	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/history"
	"github.com/Hakkology/MuginCAD-sub000/pkg/registry"
)

// DefaultPickTolerance is the click radius used for selection.
const DefaultPickTolerance = 5

const deletePrompt = "Are you sure you want to delete? (Y/N)"

// Drawing is one editing session: a model, its selection, the command
// executor and the undo history. It is not safe for concurrent use.
type Drawing struct {
	Name string

	model     *domain.Model
	selection domain.Selection
	exec      *runtime.Executor
	undo      *history.Manager
	log       []string

	snap          domain.SnapConfig
	pickTolerance float32
	pendingDelete bool
	filled        bool

	registry  *registry.Registry
	hooks     domain.LifecycleHooks
	undoDepth int
	logger    *slog.Logger
}

// Option defines a functional option for configuring a Drawing.
type Option func(*Drawing)

// WithLogger sets a custom structured logger for the drawing and its
// executor.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Drawing) {
		d.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on the executor.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Drawing) {
		d.hooks = hooks
	}
}

// WithRegistry replaces the default command set.
func WithRegistry(r *registry.Registry) Option {
	return func(d *Drawing) {
		d.registry = r
	}
}

// WithUndoDepth caps the undo history.
func WithUndoDepth(n int) Option {
	return func(d *Drawing) {
		d.undoDepth = n
	}
}

// WithPickTolerance sets the selection click radius.
func WithPickTolerance(tol float32) Option {
	return func(d *Drawing) {
		if tol > 0 {
			d.pickTolerance = tol
		}
	}
}

// WithSnap sets the snap configuration stored with the project.
func WithSnap(cfg domain.SnapConfig) Option {
	return func(d *Drawing) {
		d.snap = cfg
	}
}

// WithFilled starts the drawing with filled shapes on.
func WithFilled(filled bool) Option {
	return func(d *Drawing) {
		d.filled = filled
	}
}

// New creates an empty drawing.
func New(opts ...Option) *Drawing {
	return newDrawing(domain.NewModel(), opts)
}

// Open creates a drawing from a saved project. The project's snap settings
// win over WithSnap.
func Open(p *domain.Project, opts ...Option) (*Drawing, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil project", domain.ErrInvalidProject)
	}
	if p.Version == "" {
		return nil, fmt.Errorf("%w: missing version", domain.ErrInvalidProject)
	}
	d := newDrawing(domain.ModelFromProject(p), opts)
	d.snap = p.Snap
	if p.Name != "" {
		d.Name = p.Name
	}
	return d, nil
}

func newDrawing(m *domain.Model, opts []Option) *Drawing {
	d := &Drawing{
		Name:          "Untitled",
		model:         m,
		selection:     domain.NewSelection(),
		snap:          domain.DefaultSnapConfig(),
		pickTolerance: DefaultPickTolerance,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewNop()
	}
	d.logger = logging.ForDrawing(d.logger, d.Name)

	execOpts := []runtime.Option{
		runtime.WithLogger(d.logger),
		runtime.WithHooks(d.hooks),
		runtime.WithFilled(d.filled),
	}
	if d.registry != nil {
		execOpts = append(execOpts, runtime.WithRegistry(d.registry))
	}
	d.exec = runtime.NewExecutor(execOpts...)
	d.undo = history.New(history.WithMaxDepth(d.undoDepth))
	return d
}

// Project captures the drawing for persistence.
func (d *Drawing) Project() *domain.Project {
	p := d.model.Project(d.snap)
	p.Name = d.Name
	return p
}

func (d *Drawing) Model() *domain.Model             { return d.model }
func (d *Drawing) Executor() *runtime.Executor      { return d.exec }
func (d *Drawing) Status() string                   { return d.exec.Status() }
func (d *Drawing) Snap() domain.SnapConfig          { return d.snap }
func (d *Drawing) SetModifiers(m command.Modifiers) { d.exec.SetModifiers(m) }

// Selection returns a copy of the selected ids.
func (d *Drawing) Selection() domain.Selection { return d.selection.Clone() }

// History returns the terminal log.
func (d *Drawing) History() []string { return append([]string(nil), d.log...) }

// CanUndo and CanRedo report the history state.
func (d *Drawing) CanUndo() bool { return d.undo.CanUndo() }
func (d *Drawing) CanRedo() bool { return d.undo.CanRedo() }

func (d *Drawing) record(line string) { d.log = append(d.log, line) }

func (d *Drawing) setStatus(s string) { d.exec.SetStatus(s) }

// Click feeds a point to the active command, or selects what lies under it
// when idle. Shift or ctrl toggle instead of replacing the selection.
func (d *Drawing) Click(p geom.Vector2) {
	if d.exec.IsActive() {
		d.undo.Save(d.model.Entities())
		d.exec.PushPoint(p, d.model, d.selection)
		d.pruneSelection()
		d.record(fmt.Sprintf("Point: %.2f, %.2f", p.X, p.Y))
		return
	}
	d.pick(p)
}

func (d *Drawing) pick(p geom.Vector2) {
	mods := d.exec.Modifiers()
	additive := mods.Shift || mods.Ctrl
	id, ok := d.model.Pick(p, d.pickTolerance)
	switch {
	case ok && additive:
		d.selection.Toggle(id)
	case ok:
		d.selection.Clear()
		d.selection.Add(id)
	case !additive:
		d.selection.Clear()
		d.setStatus("Selection cleared")
		return
	}
	d.setStatus(fmt.Sprintf("Selected %d items", d.selection.Len()))
}

// Cancel drops the active command and any pending confirmation.
func (d *Drawing) Cancel() {
	d.exec.Cancel()
	if d.pendingDelete {
		d.pendingDelete = false
		d.setStatus("Cancelled")
	}
}

// Submit handles one line of terminal input. Session tokens (undo, redo,
// fill, clear, delete, select, pick, layer, cancel) are handled here unless
// the active command claims them; everything else goes to the executor.
func (d *Drawing) Submit(input string) {
	token := strings.TrimSpace(input)
	if token == "" {
		if d.exec.IsActive() {
			d.exec.Cancel()
		}
		return
	}
	d.record("> " + token)

	if d.pendingDelete {
		d.confirmDelete(strings.ToLower(token))
		return
	}
	if !d.exec.Claims(token) && d.meta(token) {
		return
	}
	if d.exec.Forwards(token) {
		d.undo.Save(d.model.Entities())
	}
	d.exec.ProcessInput(token, d.model, d.selection)
	d.pruneSelection()
}

// pruneSelection drops ids a command removed from the model.
func (d *Drawing) pruneSelection() {
	for _, id := range d.selection.IDs() {
		if d.model.Find(id) == nil {
			d.selection.Remove(id)
		}
	}
}

func (d *Drawing) meta(token string) bool {
	fields := strings.Fields(token)
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch {
	case len(args) == 0 && (verb == "u" || verb == "undo"):
		d.Undo()
	case len(args) == 0 && verb == "redo":
		d.Redo()
	case len(args) == 0 && (verb == "fill" || verb == "shade"):
		mode := "OFF"
		if d.exec.ToggleFilled() {
			mode = "ON"
		}
		d.setStatus("SHADE mode: " + mode)
		d.record("Shade mode is now " + mode)
	case len(args) == 0 && verb == "clear":
		d.Clear()
	case len(args) == 0 && (verb == "d" || verb == "delete"):
		if d.selection.Len() == 0 {
			d.setStatus("Nothing selected to delete")
			break
		}
		d.pendingDelete = true
		d.setStatus(deletePrompt)
		d.record(deletePrompt)
	case len(args) == 0 && (verb == "esc" || verb == "cancel"):
		d.Cancel()
	case verb == "select" && len(args) > 0:
		d.selectArgs(strings.Join(args, ""))
	case verb == "pick" && len(args) > 0:
		p, ok := command.ParsePoint(strings.Join(args, ""))
		if !ok {
			d.setStatus(fmt.Sprintf("Invalid point %q.", strings.Join(args, " ")))
			break
		}
		d.pick(p)
	case verb == "layer" && len(args) > 0:
		d.useLayer(strings.Join(args, " "))
	default:
		return false
	}
	return true
}

func (d *Drawing) confirmDelete(answer string) {
	d.pendingDelete = false
	switch answer {
	case "y", "yes":
		d.DeleteSelected()
	case "n", "no":
		d.setStatus("Delete cancelled")
		d.record("Cancelled.")
	default:
		d.setStatus("Delete cancelled (invalid input)")
	}
}

func (d *Drawing) selectArgs(arg string) {
	switch strings.ToLower(arg) {
	case "all":
		d.selection.Clear()
		for _, e := range d.model.Entities() {
			d.selection.Add(e.ID)
		}
	case "none":
		d.selection.Clear()
	default:
		var ids []uint64
		for _, part := range strings.Split(arg, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil || d.model.Find(id) == nil {
				d.setStatus(fmt.Sprintf("Unknown entity %q.", part))
				return
			}
			ids = append(ids, id)
		}
		d.Select(ids...)
	}
	d.setStatus(fmt.Sprintf("Selected %d items", d.selection.Len()))
}

func (d *Drawing) useLayer(arg string) {
	layer, ok := d.model.Layers.ByName(arg)
	if !ok {
		if id, err := strconv.ParseUint(arg, 10, 64); err == nil {
			layer, ok = d.model.Layers.Get(id)
		}
	}
	if !ok {
		d.setStatus(fmt.Sprintf("Unknown layer %q.", arg))
		return
	}
	d.model.Layers.SetActive(layer.ID)
	d.setStatus("Active layer: " + layer.Name)
}

// Select replaces the selection.
func (d *Drawing) Select(ids ...uint64) {
	d.selection.Clear()
	for _, id := range ids {
		d.selection.Add(id)
	}
}

// DeleteSelected removes the selected entities and returns how many went.
func (d *Drawing) DeleteSelected() int {
	if d.selection.Len() == 0 {
		d.setStatus("Nothing selected to delete")
		return 0
	}
	d.undo.Save(d.model.Entities())
	n := d.model.Remove(d.selection)
	d.selection.Clear()
	d.setStatus(fmt.Sprintf("Deleted %d items", n))
	d.record(fmt.Sprintf("Deleted %d items", n))
	d.logger.Debug("entities deleted", "count", n)
	return n
}

// Clear empties the drawing and the terminal log. It can be undone.
func (d *Drawing) Clear() {
	d.undo.Save(d.model.Entities())
	d.model.Clear()
	d.selection.Clear()
	d.log = nil
	d.exec.Cancel()
}

// Undo restores the previous snapshot.
func (d *Drawing) Undo() bool {
	prev, ok := d.undo.Undo(d.model.Entities())
	if !ok {
		d.setStatus("Nothing to undo")
		return false
	}
	d.model.SetEntities(prev)
	d.selection.Clear()
	d.record("Undo")
	d.setStatus("Undo")
	return true
}

// Redo re-applies the last undone snapshot.
func (d *Drawing) Redo() bool {
	next, ok := d.undo.Redo(d.model.Entities())
	if !ok {
		d.setStatus("Nothing to redo")
		return false
	}
	d.model.SetEntities(next)
	d.selection.Clear()
	d.record("Redo")
	d.setStatus("Redo")
	return true
}
