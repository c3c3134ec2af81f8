package logging

import (
	"io"
	"log/slog"
	"os"
)

// Attribute keys shared by the drawing, session and executor logs.
const (
	KeyDrawing = "drawing"
	KeySession = "session_id"
	KeyCommand = "command"
)

// New creates the application logger on Stderr, keeping Stdout free for
// the terminal prompt and JSON-RPC frames.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit sink. An "error" key is written as
// "err".
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForDrawing tags every record with the drawing name.
func ForDrawing(l *slog.Logger, name string) *slog.Logger {
	return l.With(KeyDrawing, name)
}

// ForSession tags every record with the session id.
func ForSession(l *slog.Logger, id string) *slog.Logger {
	return l.With(KeySession, id)
}
