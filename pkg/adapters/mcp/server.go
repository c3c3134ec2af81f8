package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/internal/logging"
	"github.com/Hakkology/MuginCAD-sub000/internal/presentation/graph"
	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/runner"
	"github.com/Hakkology/MuginCAD-sub000/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	sessionsURI     = "mugincad://sessions"
	projectTemplate = "mugincad://sessions/{session_id}/project"
)

// Server exposes drawing sessions as MCP tools.
type Server struct {
	sessions  *session.Manager
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		sessions:  sessions,
		mcpServer: server.NewMCPServer("mugincad-mcp", strings.TrimSpace(mugincad.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx ends.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionArg() mcp.ToolOption {
	return mcp.WithString("session_id", mcp.Required(), mcp.Description("Drawing session; created on first use"))
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("submit",
		mcp.WithDescription("Type a command name, option token or value, as on the command line."),
		sessionArg(),
		mcp.WithString("text", mcp.Required(), mcp.Description("Token such as 'line', 'c', '25' or 'undo'")),
		mcp.WithOutputSchema[runner.Frame](),
	), s.handleSubmit)

	s.mcpServer.AddTool(mcp.NewTool("click",
		mcp.WithDescription("Click a point in world coordinates. Feeds the active command or picks an entity when idle."),
		sessionArg(),
		mcp.WithNumber("x", mcp.Required()),
		mcp.WithNumber("y", mcp.Required()),
		mcp.WithBoolean("shift", mcp.Description("Ortho lock, or additive pick when idle")),
		mcp.WithBoolean("ctrl", mcp.Description("Toggle pick when idle")),
		mcp.WithOutputSchema[runner.Frame](),
	), s.handleClick)

	s.mcpServer.AddTool(mcp.NewTool("cancel",
		mcp.WithDescription("Cancel the active command."),
		sessionArg(),
		mcp.WithOutputSchema[runner.Frame](),
	), s.frameTool(func(d *mugincad.Drawing) { d.Cancel() }))

	s.mcpServer.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Restore the previous snapshot."),
		sessionArg(),
		mcp.WithOutputSchema[runner.Frame](),
	), s.frameTool(func(d *mugincad.Drawing) { d.Undo() }))

	s.mcpServer.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Re-apply the last undone snapshot."),
		sessionArg(),
		mcp.WithOutputSchema[runner.Frame](),
	), s.frameTool(func(d *mugincad.Drawing) { d.Redo() }))

	s.mcpServer.AddTool(mcp.NewTool("status",
		mcp.WithDescription("Read the status line and counters without changing anything."),
		sessionArg(),
		mcp.WithOutputSchema[runner.Frame](),
	), s.frameTool(func(*mugincad.Drawing) {}))

	s.mcpServer.AddTool(mcp.NewTool("list_entities",
		mcp.WithDescription("List the entity tree depth first."),
		sessionArg(),
	), s.handleListEntities)

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Render the entity tree as a Mermaid diagram."),
		sessionArg(),
	), s.handleGetGraph)

	s.mcpServer.AddTool(mcp.NewTool("list_sessions",
		mcp.WithDescription("List stored drawing sessions."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.sessions.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		return mcp.NewToolResultText(strings.Join(ids, "\n")), nil
	})
}

// run applies fn to the session named in request and returns the frame
// shown after it.
func (s *Server) run(ctx context.Context, request mcp.CallToolRequest, fn func(d *mugincad.Drawing)) *mcp.CallToolResult {
	id, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	var frame runner.Frame
	err = s.sessions.Do(ctx, id, func(d *mugincad.Drawing) error {
		offset := len(d.History())
		fn(d)
		frame = runner.Snapshot(d, offset)
		return nil
	})
	if err != nil {
		s.logger.Error("MCP tool failed", "tool", request.Params.Name, "session_id", id, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", request.Params.Name, err))
	}
	data, _ := json.Marshal(frame)
	return mcp.NewToolResultStructured(frame, string(data))
}

func (s *Server) frameTool(fn func(d *mugincad.Drawing)) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.run(ctx, request, fn), nil
	}
}

func (s *Server) handleSubmit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	clean, err := runner.SanitizeInput(text)
	if err != nil {
		s.logger.Warn("MCP submit: input rejected", "err", err, "size", len(text))
		return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err)), nil
	}
	return s.run(ctx, request, func(d *mugincad.Drawing) { d.Submit(clean) }), nil
}

func (s *Server) handleClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, err := request.RequireFloat("x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := request.RequireFloat("y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mods := command.Modifiers{
		Shift: request.GetBool("shift", false),
		Ctrl:  request.GetBool("ctrl", false),
	}
	return s.run(ctx, request, func(d *mugincad.Drawing) {
		d.SetModifiers(mods)
		d.Click(geom.Vec(float32(x), float32(y)))
	}), nil
}

// stored loads the saved project of an existing session.
func (s *Server) stored(ctx context.Context, request mcp.CallToolRequest) (string, *domain.Project, *mcp.CallToolResult) {
	id, err := request.RequireString("session_id")
	if err != nil {
		return "", nil, mcp.NewToolResultError(err.Error())
	}
	p, err := s.sessions.Load(ctx, id)
	if err != nil {
		return id, nil, mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err))
	}
	return id, p, nil
}

func (s *Server) handleListEntities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, p, fail := s.stored(ctx, request)
	if fail != nil {
		return fail, nil
	}
	data, err := json.Marshal(runner.Outline(domain.ModelFromProject(p)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, p, fail := s.stored(ctx, request)
	if fail != nil {
		return fail, nil
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(id, domain.ModelFromProject(p), nil)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(sessionsURI, "Stored drawing sessions",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.sessions.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		if ids == nil {
			ids = []string{}
		}
		data, _ := json.Marshal(ids)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: sessionsURI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})

	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(projectTemplate, "Session project",
		mcp.WithTemplateMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI
		id, ok := projectSession(uri)
		if !ok {
			return nil, fmt.Errorf("unexpected resource %q", uri)
		}
		p, err := s.sessions.Load(ctx, id)
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, fmt.Errorf("session %q: %w", id, err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode project: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: uri, MIMEType: "application/json", Text: string(data)},
		}, nil
	})
}

// projectSession extracts the session id from a project resource URI.
func projectSession(uri string) (string, bool) {
	rest, ok := strings.CutPrefix(uri, sessionsURI+"/")
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(rest, "/project")
	return id, ok && id != "" && !strings.Contains(id, "/")
}
