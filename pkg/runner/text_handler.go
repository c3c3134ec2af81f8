package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ContentRenderer transforms text before it is written.
// This allows terminal styling without coupling the core package.
type ContentRenderer func(string) (string, error)

// TextHandler implements line-oriented terminal IO.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer
	Prompt   string

	reader    io.Reader
	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithReader reads lines from r.
func WithReader(r io.Reader) TextHandlerOption {
	return func(h *TextHandler) {
		h.reader = r
	}
}

// WithStdin reads lines from os.Stdin.
func WithStdin() TextHandlerOption {
	return WithReader(os.Stdin)
}

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler writing to w. Without a reader, input
// only arrives through FeedInput.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:    w,
		Prompt:    "> ",
		inputChan: make(chan inputResult, DefaultInputBufferSize),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// FeedInput injects a line as if it was typed.
func (h *TextHandler) FeedInput(text string, err error) {
	h.inputChan <- inputResult{text: text, err: err}
}

func (h *TextHandler) initPump() {
	if h.reader == nil {
		return
	}
	h.startOnce.Do(func() {
		go h.pump(bufio.NewReader(h.reader))
	})
}

func (h *TextHandler) pump(r *bufio.Reader) {
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err == io.EOF {
				h.inputChan <- inputResult{err: io.EOF}
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff so a persistent read error does not spin.
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (h *TextHandler) render(s string) string {
	if h.Renderer == nil {
		return s
	}
	if out, err := h.Renderer(s); err == nil {
		return out
	}
	return s
}

// Output writes the status line.
func (h *TextHandler) Output(ctx context.Context, frame Frame) error {
	if frame.Status == "" {
		return nil
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(h.render(frame.Status)))
	return err
}

// Input reads one line. "exit" and "quit" end the run; every other line is
// submitted as a token, including the empty line that cancels.
func (h *TextHandler) Input(ctx context.Context) (Request, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		default:
			fmt.Fprint(h.Writer, h.Prompt)
		}

		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		case res := <-h.inputChan:
			if res.err != nil {
				return Request{}, res.err
			}
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			switch strings.ToLower(clean) {
			case "exit", "quit":
				return Request{Type: RequestExit}, nil
			}
			return Request{Type: RequestSubmit, Text: clean}, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", h.render(msg))
	return err
}
