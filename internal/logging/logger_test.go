package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("error key is shortened", func(t *testing.T) {
		var buf bytes.Buffer
		l := logging.NewWithWriter(&buf, slog.LevelInfo)
		l.Info("save failed", "error", errors.New("disk full"))
		assert.Contains(t, buf.String(), `err="disk full"`)
		assert.NotContains(t, buf.String(), "error=")
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := logging.NewWithWriter(&buf, slog.LevelInfo)
		l.Debug("point pushed")
		assert.Empty(t, buf.String())
	})
}

func TestScopedLoggers(t *testing.T) {
	var buf bytes.Buffer
	l := logging.ForDrawing(logging.ForSession(logging.NewWithWriter(&buf, slog.LevelDebug), "s1"), "plan")
	l.Debug("entities deleted", "count", 2)

	out := buf.String()
	assert.Contains(t, out, "session_id=s1")
	assert.Contains(t, out, "drawing=plan")
	assert.Contains(t, out, "count=2")
}
