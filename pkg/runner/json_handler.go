package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// JSONHandler implements IOHandler for JSON-Lines communication. Each input
// line is a Request object, or a bare JSON string submitted as a token.
type JSONHandler struct {
	Encoder *json.Encoder

	inputChan chan inputResult
	reader    io.Reader
	started   bool
}

// NewJSONHandler creates a handler writing frames to w. A nil reader means
// input only arrives through FeedInput.
func NewJSONHandler(w io.Writer, r ...io.Reader) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &JSONHandler{
		Encoder:   json.NewEncoder(w),
		inputChan: make(chan inputResult, DefaultInputBufferSize),
	}
	if len(r) > 0 {
		h.reader = r[0]
	}
	return h
}

// FeedInput injects a raw line.
func (h *JSONHandler) FeedInput(line string, err error) {
	h.inputChan <- inputResult{text: line, err: err}
}

func (h *JSONHandler) pump() {
	sc := bufio.NewScanner(h.reader)
	for sc.Scan() {
		h.inputChan <- inputResult{text: sc.Text()}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	h.inputChan <- inputResult{err: err}
}

func (h *JSONHandler) Output(ctx context.Context, frame Frame) error {
	return h.Encoder.Encode(frame)
}

func (h *JSONHandler) Input(ctx context.Context) (Request, error) {
	if h.reader != nil && !h.started {
		h.started = true
		go h.pump()
	}

	for {
		var res inputResult
		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		case res = <-h.inputChan:
		}
		if res.err != nil {
			return Request{}, res.err
		}

		line := strings.TrimSpace(res.text)
		if line == "" {
			continue
		}
		req, err := decodeRequest(line)
		if err != nil {
			_ = h.SystemOutput(ctx, err.Error())
			continue
		}
		return req, nil
	}
}

func decodeRequest(line string) (Request, error) {
	var token string
	if err := json.Unmarshal([]byte(line), &token); err == nil {
		clean, err := SanitizeInput(token)
		if err != nil {
			return Request{}, err
		}
		return Request{Type: RequestSubmit, Text: clean}, nil
	}

	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return Request{}, fmt.Errorf("invalid request: %w", err)
	}
	switch req.Type {
	case RequestSubmit:
		clean, err := SanitizeInput(req.Text)
		if err != nil {
			return Request{}, err
		}
		req.Text = clean
	case RequestClick:
		if req.Point == nil {
			return Request{}, fmt.Errorf("invalid request: click without point")
		}
	case RequestCancel, RequestExit:
	default:
		return Request{}, fmt.Errorf("invalid request: unknown type %q", req.Type)
	}
	return req, nil
}

// SystemOutput emits {"system": msg}.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(map[string]string{"system": msg})
}
