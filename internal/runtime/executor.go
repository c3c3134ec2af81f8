package runtime

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/registry"
)

// IdleStatus is published whenever no command is active.
const IdleStatus = "Command:"

// Executor drives at most one active command and publishes a status line
// after every call. It is not safe for concurrent use.
type Executor struct {
	registry *registry.Registry
	logger   *slog.Logger
	hooks    domain.LifecycleHooks

	active    command.Command
	startedAt time.Time
	status    string

	filled     bool
	modifiers  command.Modifiers
	columnType uint64
	beamType   uint64
}

// Option configures an Executor.
type Option func(*Executor)

// WithRegistry replaces the default command set.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Executor) {
		e.registry = r
	}
}

// WithLogger sets a custom structured logger for the executor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithHooks registers lifecycle observers.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Executor) {
		e.hooks = hooks
	}
}

// WithFilled starts the executor in filled mode.
func WithFilled(filled bool) Option {
	return func(e *Executor) {
		e.filled = filled
	}
}

// NewExecutor creates an idle executor.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{status: IdleStatus}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = registry.NewDefault()
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

func (e *Executor) context(model *domain.Model, sel domain.Selection) command.Context {
	if sel == nil {
		sel = domain.NewSelection()
	}
	return command.Context{
		Model:            model,
		Selection:        sel,
		Filled:           e.filled,
		Modifiers:        e.modifiers,
		ActiveColumnType: e.columnType,
		ActiveBeamType:   e.beamType,
	}
}

func (e *Executor) emit(t domain.EventType, name, input string) {
	ev := &domain.CommandEvent{
		Timestamp: time.Now(),
		Type:      t,
		Command:   name,
		Input:     input,
		Status:    e.status,
	}
	if t == domain.EventCommandComplete || t == domain.EventCommandCancel {
		ev.Elapsed = time.Since(e.startedAt)
	}
	e.hooks.Emit(ev)
}

// StartCommand installs the command registered under name. It returns false
// for unknown names and for commands that refuse the current selection; in
// the latter case the refusal becomes the status and any running command
// keeps running.
func (e *Executor) StartCommand(name string, model *domain.Model, sel domain.Selection) bool {
	cmd, err := e.registry.Create(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return false
	}
	ctx := e.context(model, sel)
	if !cmd.CanExecute(ctx) {
		e.status = cmd.RefusalMessage()
		e.logger.Debug("command refused", logging.KeyCommand, cmd.Name(), "reason", e.status)
		e.emit(domain.EventCommandRefused, cmd.Name(), name)
		return false
	}
	if e.active != nil {
		e.drop()
	}
	cmd.OnStart(ctx)
	e.active = cmd
	e.startedAt = time.Now()
	e.status = cmd.InitialPrompt()
	e.logger.Debug("command started", logging.KeyCommand, cmd.Name())
	e.emit(domain.EventCommandStart, cmd.Name(), name)
	return true
}

// PushPoint feeds a clicked point to the active command after constraining
// it against the command's last point. Without an active command it does
// nothing.
func (e *Executor) PushPoint(p geom.Vector2, model *domain.Model, sel domain.Selection) {
	if e.active == nil {
		return
	}
	var last *geom.Vector2
	if pts := e.active.Points(); len(pts) > 0 {
		last = &pts[len(pts)-1]
	}
	p = e.active.ConstrainPoint(p, last, e.modifiers)
	res := e.active.PushPoint(p, e.context(model, sel))
	e.step(fmt.Sprintf("%.2f,%.2f", p.X, p.Y), res.Prompt, res.Complete)
}

// Claims reports whether the active command explicitly owns token.
func (e *Executor) Claims(token string) bool {
	cl, ok := e.active.(command.TokenClaimer)
	return ok && cl.ClaimsToken(strings.TrimSpace(token))
}

// Forwards reports whether ProcessInput would hand token to the active
// command rather than start a new one or reject it.
func (e *Executor) Forwards(token string) bool {
	token = strings.TrimSpace(token)
	if e.active == nil || token == "" {
		return false
	}
	if e.Claims(token) {
		return true
	}
	return !e.registry.Has(strings.ToLower(token))
}

// ProcessInput handles a typed token. Tokens the active command claims are
// forwarded to it; otherwise a registered name starts that command; any
// other token goes to the active command with its original case.
func (e *Executor) ProcessInput(token string, model *domain.Model, sel domain.Selection) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if !e.Forwards(token) {
		lower := strings.ToLower(token)
		if e.registry.Has(lower) {
			e.StartCommand(lower, model, sel)
			return
		}
		e.status = fmt.Sprintf("Unknown command %q.", lower)
		return
	}
	res := e.active.ProcessInput(token, e.context(model, sel))
	e.step(token, res.Status(), res.Complete())
}

func (e *Executor) step(input, status string, complete bool) {
	name := e.active.Name()
	if complete {
		e.active = nil
		e.status = IdleStatus
		e.logger.Debug("command completed", logging.KeyCommand, name)
		e.emit(domain.EventCommandComplete, name, input)
		return
	}
	e.status = status
	e.emit(domain.EventCommandStep, name, input)
}

// Cancel drops the active command, if any.
func (e *Executor) Cancel() {
	if e.active != nil {
		e.drop()
	}
	e.status = IdleStatus
}

func (e *Executor) drop() {
	name := e.active.Name()
	e.active = nil
	e.status = IdleStatus
	e.logger.Debug("command cancelled", logging.KeyCommand, name)
	e.emit(domain.EventCommandCancel, name, "")
}

func (e *Executor) Status() string { return e.status }

// SetStatus overrides the status line, for hosts that handle some tokens
// themselves.
func (e *Executor) SetStatus(s string) { e.status = s }

func (e *Executor) IsActive() bool { return e.active != nil }

// Active returns the name of the active command, or "".
func (e *Executor) Active() string {
	if e.active == nil {
		return ""
	}
	return e.active.Name()
}

// Command returns the active command itself.
func (e *Executor) Command() command.Command { return e.active }

// PreviewPoints returns the points collected by the active command.
func (e *Executor) PreviewPoints() []geom.Vector2 {
	if e.active == nil {
		return nil
	}
	return e.active.Points()
}

// Preview returns the rubber-band polyline for the cursor position.
func (e *Executor) Preview(cursor geom.Vector2) []geom.Vector2 {
	if e.active == nil {
		return nil
	}
	return command.Preview(e.active, cursor)
}

func (e *Executor) SetModifiers(m command.Modifiers) { e.modifiers = m }
func (e *Executor) Modifiers() command.Modifiers     { return e.modifiers }

// ToggleFilled flips filled mode and returns the new value.
func (e *Executor) ToggleFilled() bool {
	e.filled = !e.filled
	return e.filled
}

func (e *Executor) Filled() bool { return e.filled }

// SetActiveTypes selects the column and beam types used by placements.
// Zero means the lowest-id type.
func (e *Executor) SetActiveTypes(column, beam uint64) {
	e.columnType, e.beamType = column, beam
}

// ToggleArcDirection reverses an active Arc. It reports false when the
// active command is not an Arc.
func (e *Executor) ToggleArcDirection() bool {
	arc, ok := e.active.(*command.Arc)
	if !ok {
		return false
	}
	e.status = arc.Reverse()
	return true
}

// CyclePlacementAnchor moves an active placement to its next anchor.
func (e *Executor) CyclePlacementAnchor() bool {
	switch c := e.active.(type) {
	case *command.PlaceColumn:
		e.status = c.CycleAnchor()
	case *command.PlaceBeam:
		e.status = c.CycleAnchor()
	default:
		return false
	}
	return true
}

// RotatePlacement turns an active column by 90 degrees or flips an active
// beam's anchor face.
func (e *Executor) RotatePlacement() bool {
	switch c := e.active.(type) {
	case *command.PlaceColumn:
		e.status = c.RotatePlacement()
	case *command.PlaceBeam:
		e.status = c.RotatePlacement()
	default:
		return false
	}
	return true
}
