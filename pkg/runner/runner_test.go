package runner_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/memory"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, r *runner.Runner, d *mugincad.Drawing) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- r.Run(t.Context(), d) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Runner timed out")
	}
}

func TestRunner_TextSession(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.NewReader("circle\n0,0\n5\nexit\nline\n")
	store := memory.NewStore()

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(out, runner.WithReader(in))),
		runner.WithStore(store),
		runner.WithSessionID("floor-1"),
		runner.WithBanner("MuginCAD"),
	)
	d := mugincad.New()
	run(t, r, d)

	assert.Equal(t, 1, d.Model().Len())
	assert.False(t, d.Executor().IsActive(), "input after exit is not read")

	p, err := store.Load(context.Background(), "floor-1")
	require.NoError(t, err)
	require.Len(t, p.Entities, 1)
	assert.Equal(t, domain.ShapeCircle, p.Entities[0].Kind())

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "[System] MuginCAD\n"))
	assert.Contains(t, text, "Command:")
}

func TestRunner_EndsOnEOF(t *testing.T) {
	r := runner.NewRunner(runner.WithInputHandler(
		runner.NewTextHandler(&bytes.Buffer{}, runner.WithReader(strings.NewReader("line\n0,0\n")))))
	d := mugincad.New()
	run(t, r, d)

	assert.True(t, d.Executor().IsActive(), "EOF leaves the drawing as it was")
	assert.Equal(t, 0, d.Model().Len())
}

func TestRunner_JSONFrames(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join([]string{
		`{"type":"submit","text":"rect"}`,
		`{"type":"click","point":{"x":0,"y":0}}`,
		`{"type":"click","point":{"x":2,"y":3}}`,
		`{"type":"submit","text":"u"}`,
		`{"type":"exit"}`,
	}, "\n"))

	r := runner.NewRunner(runner.WithInputHandler(runner.NewJSONHandler(out, in)))
	d := mugincad.New()
	run(t, r, d)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5, "initial frame plus one per request")
	assert.Contains(t, lines[3], `"entities":1`)
	assert.Contains(t, lines[4], `"status":"Undo"`)
	assert.Contains(t, lines[4], `"can_redo":true`)
	assert.Equal(t, 0, d.Model().Len())
}

func TestSnapshot(t *testing.T) {
	d := mugincad.New()
	d.Submit("line")
	d.Click(geom.Vec(0, 0))

	f := runner.Snapshot(d, 0)
	assert.Equal(t, "LINE", f.Command)
	assert.Equal(t, []string{"> line", "Point: 0.00, 0.00"}, f.Log)

	f = runner.Snapshot(d, 1)
	assert.Equal(t, []string{"Point: 0.00, 0.00"}, f.Log)
}
