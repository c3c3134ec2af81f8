package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(outBuf)
	handler.Renderer = func(s string) (string, error) {
		return "Rendered: " + s, nil
	}

	err := handler.Output(context.Background(), Frame{Status: "LINE Specify first point:"})
	require.NoError(t, err)
	assert.Equal(t, "Rendered: LINE Specify first point:\n", outBuf.String())

	outBuf.Reset()
	require.NoError(t, handler.Output(context.Background(), Frame{}))
	assert.Empty(t, outBuf.String())
}

func TestTextHandler_Input(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(outBuf)

	go handler.FeedInput("  10,20  \n", nil)

	req, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Request{Type: RequestSubmit, Text: "10,20"}, req)
	assert.Equal(t, "> ", outBuf.String())
}

func TestTextHandler_InputExitAndEmptyLine(t *testing.T) {
	handler := NewTextHandler(io.Discard, WithReader(strings.NewReader("\nQUIT\n")))

	req, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Request{Type: RequestSubmit, Text: ""}, req, "empty line still reaches the drawing")

	req, err = handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RequestExit, req.Type)

	_, err = handler.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestTextHandler_InputRejectsOversizedLine(t *testing.T) {
	t.Setenv(EnvMaxTokenSize, "4")
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(outBuf)

	handler.FeedInput("toolong", nil)
	handler.FeedInput("line", nil)

	req, err := handler.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "line", req.Text)
	assert.Contains(t, outBuf.String(), "Please try again.")
}

func TestTextHandler_InputHonoursContext(t *testing.T) {
	handler := NewTextHandler(io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := handler.Input(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
