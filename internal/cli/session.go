package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/internal/config"
	"github.com/Hakkology/MuginCAD-sub000/internal/presentation/tui"
	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/loam"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/observability"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
	"github.com/Hakkology/MuginCAD-sub000/pkg/runner"
	"github.com/muesli/termenv"
)

// RunOptions configures an interactive drawing session.
type RunOptions struct {
	Config    config.Config
	SessionID string
	JSON      bool
	Headless  bool
	Debug     bool

	// In and Out default to stdin and stdout.
	In  io.Reader
	Out io.Writer
}

// RunSession drives one drawing from the terminal (or a JSON stream) until
// the input ends. With a session id the drawing is loaded from, and saved
// back to, the configured store.
func RunSession(ctx context.Context, opts RunOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	quiet := opts.JSON || opts.Headless

	logger, err := NewLogger(opts.Config, opts.Debug)
	if err != nil {
		return err
	}
	backend, err := OpenBackend(opts.Config.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	hooks := domain.LifecycleHooks{}
	if opts.Debug {
		hooks = observability.LoggingHooks(logger)
	}
	drawingOpts := DrawingOptions(opts.Config, logger, hooks)

	d, loaded, err := openDrawing(ctx, backend.Store, opts.SessionID, drawingOpts)
	if err != nil {
		return fmt.Errorf("failed to init session: %w", err)
	}
	if !loaded {
		importCatalog(ctx, opts.Config.CatalogDir, d, logger)
	}

	if !quiet && isTerminal(opts.Out) {
		tui.PrintBanner(opts.Out)
	}
	if !quiet {
		switch {
		case loaded:
			printSystemMessage(opts.Out, "Resuming session '%s' with %d entities.", opts.SessionID, d.Model().Len())
		case opts.SessionID != "":
			printSystemMessage(opts.Out, "Session '%s' active.", opts.SessionID)
		}
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithInputHandler(newHandler(opts)),
	}
	if opts.SessionID != "" {
		runnerOpts = append(runnerOpts, runner.WithSessionID(opts.SessionID), runner.WithStore(backend.Store))
	}

	runErr := runner.NewRunner(runnerOpts...).Run(ctx, d)
	logger.Debug("Session finished", "session_id", opts.SessionID, "entities", d.Model().Len(), "err", runErr)
	return handleExecutionError(runErr)
}

// openDrawing loads id from store, or starts an empty drawing when there is
// no id or nothing stored under it yet.
func openDrawing(ctx context.Context, store ports.ProjectStore, id string, opts []mugincad.Option) (*mugincad.Drawing, bool, error) {
	if id == "" {
		return mugincad.New(opts...), false, nil
	}
	p, err := store.Load(ctx, id)
	if errors.Is(err, domain.ErrProjectNotFound) {
		d := mugincad.New(opts...)
		d.Name = id
		return d, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	d, err := mugincad.Open(p, opts...)
	if err != nil {
		return nil, false, err
	}
	return d, true, nil
}

// importCatalog merges the type catalog into a fresh drawing. A missing or
// broken catalog is logged, never fatal.
func importCatalog(ctx context.Context, dir string, d *mugincad.Drawing, logger *slog.Logger) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		return
	}
	cat, err := loam.Open(dir, true, loam.WithLogger(logger))
	if err != nil {
		logger.Warn("Failed to open catalog", "dir", dir, "error", err)
		return
	}
	n, err := cat.Import(ctx, d.Model().Definitions)
	if err != nil {
		logger.Warn("Failed to import catalog", "dir", dir, "error", err)
		return
	}
	logger.Debug("Catalog loaded", "dir", dir, "types", n)
}

func newHandler(opts RunOptions) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(opts.Out, opts.In)
	}
	handlerOpts := []runner.TextHandlerOption{runner.WithReader(opts.In)}
	if isTerminal(opts.Out) {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.StatusStyler(termenv.ColorProfile())))
	}
	return runner.NewTextHandler(opts.Out, handlerOpts...)
}
