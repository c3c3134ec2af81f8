package runner

import (
	"context"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// RequestType tells the runner how to apply a request.
type RequestType string

const (
	RequestSubmit RequestType = "submit"
	RequestClick  RequestType = "click"
	RequestCancel RequestType = "cancel"
	RequestExit   RequestType = "exit"
)

// Request is one user action read by an IOHandler.
type Request struct {
	Type      RequestType        `json:"type"`
	Text      string             `json:"text,omitempty"`
	Point     *geom.Vector2      `json:"point,omitempty"`
	Modifiers *command.Modifiers `json:"modifiers,omitempty"`
}

// Frame is what the runner shows after every request.
type Frame struct {
	Status   string   `json:"status"`
	Command  string   `json:"command,omitempty"`
	Log      []string `json:"log,omitempty"` // lines added since the previous frame
	Entities int      `json:"entities"`
	Selected int      `json:"selected"`
	CanUndo  bool     `json:"can_undo"`
	CanRedo  bool     `json:"can_redo"`
}

// Snapshot builds a frame for d. Only history lines from offset on are
// included.
func Snapshot(d *mugincad.Drawing, offset int) Frame {
	f := Frame{
		Status:   d.Status(),
		Entities: d.Model().Len(),
		Selected: d.Selection().Len(),
		CanUndo:  d.CanUndo(),
		CanRedo:  d.CanRedo(),
	}
	if cmd := d.Executor().Command(); cmd != nil {
		f.Command = cmd.Name()
	}
	if log := d.History(); offset < len(log) {
		f.Log = log[offset:]
	}
	return f
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI) and JSON (structured) modes.
type IOHandler interface {
	// Output presents the drawing state after a request.
	Output(ctx context.Context, frame Frame) error

	// Input reads the next request. It returns io.EOF when the source is
	// exhausted and ctx.Err() when ctx ends first.
	Input(ctx context.Context) (Request, error)

	// SystemOutput presents a meta-message (e.g. banner, save errors).
	SystemOutput(ctx context.Context, msg string) error
}

// apply runs one request against d.
func apply(d *mugincad.Drawing, req Request) {
	if req.Modifiers != nil {
		d.SetModifiers(*req.Modifiers)
	}
	switch req.Type {
	case RequestSubmit:
		d.Submit(req.Text)
	case RequestClick:
		if req.Point != nil {
			d.Click(*req.Point)
		}
	case RequestCancel:
		d.Cancel()
	}
}
