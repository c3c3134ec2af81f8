package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/internal/presentation/graph"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/runner"
	"github.com/Hakkology/MuginCAD-sub000/pkg/session"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
)

// Server implements ServerInterface on top of a session manager.
type Server struct {
	Sessions *session.Manager
	metrics  http.Handler
	logger   *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler. Requests are validated against the
// embedded OpenAPI document before they reach the session manager.
func NewHandler(sessions *session.Manager, opts ...Option) (http.Handler, error) {
	server := &Server{Sessions: sessions, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(server)
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build request router: %w", err)
	}

	r := chi.NewRouter()
	r.Use(enableCORS)
	r.Use(server.validate(router))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	if server.metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.metrics)
	}

	return HandlerFromMux(server, r, server.paramError), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// validate checks requests for documented routes against their schema.
// Anything the document does not describe passes through to chi.
func (s *Server) validate(router routers.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				s.logger.Warn("Request rejected", "path", r.URL.Path, "error", err)
				writeJSON(w, http.StatusBadRequest, Error{Error: err.Error()})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, Error{Error: err.Error()})
}

// fail maps err onto a status code.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, Error{Error: err.Error()})
	case errors.Is(err, runner.ErrInputTooLarge), errors.Is(err, runner.ErrInvalidUTF8):
		writeJSON(w, http.StatusBadRequest, Error{Error: err.Error()})
	default:
		s.logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, Error{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

// act runs fn on an existing session and answers with the frame shown
// after it. The frame log holds only the lines fn added.
func (s *Server) act(w http.ResponseWriter, r *http.Request, id string, fn func(d *mugincad.Drawing)) {
	s.respond(w, r, id, -1, fn)
}

// respond is act with an explicit history offset; a negative offset means
// the history length before fn.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, id string, offset int, fn func(d *mugincad.Drawing)) {
	if _, err := s.Sessions.Load(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	var frame runner.Frame
	err := s.Sessions.Do(r.Context(), id, func(d *mugincad.Drawing) error {
		from := offset
		if from < 0 {
			from = len(d.History())
		}
		fn(d)
		frame = runner.Snapshot(d, from)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": strings.TrimSpace(mugincad.Version),
	})
}

// ListSessions handles the GET /sessions request.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Sessions.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, SessionList{Sessions: ids})
}

// GetSession handles the GET /sessions/{sessionId} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, sessionID string, params GetSessionParams) {
	offset := 0
	if params.Offset != nil {
		offset = *params.Offset
	}
	s.respond(w, r, sessionID, offset, func(*mugincad.Drawing) {})
}

// StartSession handles the POST /sessions/{sessionId} request.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if _, err := s.Sessions.LoadOrStart(r.Context(), sessionID); err != nil {
		s.fail(w, err)
		return
	}
	s.logger.Info("Session opened", "session_id", sessionID)
	s.act(w, r, sessionID, func(*mugincad.Drawing) {})
}

// DeleteSession handles the DELETE /sessions/{sessionId} request.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.Sessions.Delete(r.Context(), sessionID); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitInput handles the POST /sessions/{sessionId}/input request.
func (s *Server) SubmitInput(w http.ResponseWriter, r *http.Request, sessionID string) {
	var body InputRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, Error{Error: "invalid request body"})
		return
	}
	text, err := runner.SanitizeInput(body.Text)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.act(w, r, sessionID, func(d *mugincad.Drawing) { d.Submit(text) })
}

// Click handles the POST /sessions/{sessionId}/click request.
func (s *Server) Click(w http.ResponseWriter, r *http.Request, sessionID string) {
	var body ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, Error{Error: "invalid request body"})
		return
	}
	s.act(w, r, sessionID, func(d *mugincad.Drawing) {
		if body.Modifiers != nil {
			d.SetModifiers(*body.Modifiers)
		}
		d.Click(geom.Vec(body.X, body.Y))
	})
}

// Cancel handles the POST /sessions/{sessionId}/cancel request.
func (s *Server) Cancel(w http.ResponseWriter, r *http.Request, sessionID string) {
	s.act(w, r, sessionID, func(d *mugincad.Drawing) { d.Cancel() })
}

// Undo handles the POST /sessions/{sessionId}/undo request.
func (s *Server) Undo(w http.ResponseWriter, r *http.Request, sessionID string) {
	s.act(w, r, sessionID, func(d *mugincad.Drawing) { d.Undo() })
}

// Redo handles the POST /sessions/{sessionId}/redo request.
func (s *Server) Redo(w http.ResponseWriter, r *http.Request, sessionID string) {
	s.act(w, r, sessionID, func(d *mugincad.Drawing) { d.Redo() })
}

// ListEntities handles the GET /sessions/{sessionId}/entities request.
func (s *Server) ListEntities(w http.ResponseWriter, r *http.Request, sessionID string) {
	p, err := s.Sessions.Load(r.Context(), sessionID)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runner.Outline(domain.ModelFromProject(p)))
}

// GetProject handles the GET /sessions/{sessionId}/project request.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request, sessionID string) {
	p, err := s.Sessions.Load(r.Context(), sessionID)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetGraph handles the GET /sessions/{sessionId}/graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request, sessionID string) {
	if _, err := s.Sessions.Load(r.Context(), sessionID); err != nil {
		s.fail(w, err)
		return
	}
	var out string
	err := s.Sessions.Do(r.Context(), sessionID, func(d *mugincad.Drawing) error {
		overlay := &graph.GraphOverlay{Selected: d.Selection().IDs()}
		if cmd := d.Executor().Command(); cmd != nil {
			overlay.Active = cmd.Name()
		}
		out = graph.GenerateMermaid(d.Name, d.Model(), overlay)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(out))
}
