package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Output(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewJSONHandler(buf)

	frame := Frame{Status: "Command:", Log: []string{"> u"}, Entities: 2, CanRedo: true}
	require.NoError(t, handler.Output(context.Background(), frame))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var decoded Frame
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, frame, decoded)
}

func TestJSONHandler_Input(t *testing.T) {
	buf := &bytes.Buffer{}
	input := strings.Join([]string{
		`"line"`,
		`{"type":"click","point":{"x":1,"y":2},"modifiers":{"shift":true}}`,
		`not json`,
		`{"type":"click"}`,
		`{"type":"cancel"}`,
	}, "\n")
	handler := NewJSONHandler(buf, strings.NewReader(input))
	ctx := context.Background()

	req, err := handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, Request{Type: RequestSubmit, Text: "line"}, req)

	req, err = handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, RequestClick, req.Type)
	assert.Equal(t, geom.Vec(1, 2), *req.Point)
	require.NotNil(t, req.Modifiers)
	assert.True(t, req.Modifiers.Shift)

	// The two malformed lines are reported and skipped.
	req, err = handler.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, RequestCancel, req.Type)
	assert.Equal(t, 2, strings.Count(buf.String(), `"system"`))

	_, err = handler.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}
