package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
)

// Runner drives a drawing from an IOHandler.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on stdin/stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Store persists the project after every request.
	// If nil, the drawing is ephemeral.
	Store     ports.ProjectStore
	SessionID string

	Banner string
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{Logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the loop until the input ends, the user exits, ctx is
// cancelled, or an interrupt arrives while no command is active. An
// interrupt during a command cancels the command instead.
func (r *Runner) Run(ctx context.Context, d *mugincad.Drawing) error {
	handler := r.resolveHandler()
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}

	signals := NewSignalManager(ctx)
	defer signals.Stop()

	if r.Banner != "" {
		if err := handler.SystemOutput(ctx, r.Banner); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	offset := len(d.History())
	if err := handler.Output(ctx, Snapshot(d, offset)); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	for {
		req, err := handler.Input(signals.Context())
		if err != nil {
			signals.CheckRace()
			switch {
			case ctx.Err() != nil:
				return ctx.Err()
			case signals.Context().Err() != nil:
				if !d.Executor().IsActive() {
					r.Logger.Debug("interrupted while idle")
					return nil
				}
				d.Cancel()
				signals.Reset()
				r.Logger.Debug("interrupt cancelled the active command")
			case errors.Is(err, io.EOF):
				return nil
			default:
				return fmt.Errorf("input error: %w", err)
			}
		} else {
			if req.Type == RequestExit {
				return nil
			}
			apply(d, req)
		}

		frame := Snapshot(d, offset)
		offset += len(frame.Log)
		if err := handler.Output(ctx, frame); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
		if err := r.save(ctx, d); err != nil {
			return fmt.Errorf("critical persistence error: %w", err)
		}
	}
}

func (r *Runner) save(ctx context.Context, d *mugincad.Drawing) error {
	if r.Store == nil || r.SessionID == "" {
		return nil
	}
	if err := r.Store.Save(ctx, r.SessionID, d.Project()); err != nil {
		return err
	}
	r.Logger.Debug("project saved", "session_id", r.SessionID, "entities", d.Model().Len())
	return nil
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdout, WithStdin())
	}
	return r.Handler
}
