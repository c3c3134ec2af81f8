package http

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/Hakkology/MuginCAD-sub000/pkg/command"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	return doc, nil
}

// InputRequest is the body of POST /sessions/{sessionId}/input.
type InputRequest struct {
	Text string `json:"text"`
}

// ClickRequest is the body of POST /sessions/{sessionId}/click.
type ClickRequest struct {
	X         float32            `json:"x"`
	Y         float32            `json:"y"`
	Modifiers *command.Modifiers `json:"modifiers,omitempty"`
}

type SessionList struct {
	Sessions []string `json:"sessions"`
}

type Error struct {
	Error string `json:"error"`
}

// GetSessionParams are the query parameters of GET /sessions/{sessionId}.
type GetSessionParams struct {
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	GetHealth(w http.ResponseWriter, r *http.Request)
	ListSessions(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request, sessionID string, params GetSessionParams)
	StartSession(w http.ResponseWriter, r *http.Request, sessionID string)
	DeleteSession(w http.ResponseWriter, r *http.Request, sessionID string)
	SubmitInput(w http.ResponseWriter, r *http.Request, sessionID string)
	Click(w http.ResponseWriter, r *http.Request, sessionID string)
	Cancel(w http.ResponseWriter, r *http.Request, sessionID string)
	Undo(w http.ResponseWriter, r *http.Request, sessionID string)
	Redo(w http.ResponseWriter, r *http.Request, sessionID string)
	ListEntities(w http.ResponseWriter, r *http.Request, sessionID string)
	GetProject(w http.ResponseWriter, r *http.Request, sessionID string)
	GetGraph(w http.ResponseWriter, r *http.Request, sessionID string)
}

// InvalidParamFormatError reports a parameter that could not be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// serverInterfaceWrapper binds path and query parameters before calling
// the handler.
type serverInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sessionID string)

func (siw *serverInterfaceWrapper) session(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		err := runtime.BindStyledParameterWithOptions("simple", "sessionId", chi.URLParam(r, "sessionId"), &sessionID,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "sessionId", Err: err})
			return
		}
		next(w, r, sessionID)
	}
}

func (siw *serverInterfaceWrapper) getSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	var params GetSessionParams
	if err := runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}
	siw.Handler.GetSession(w, r, sessionID, params)
}

// HandlerFromMux registers every operation of si on r.
func HandlerFromMux(si ServerInterface, r chi.Router, errorHandler func(w http.ResponseWriter, r *http.Request, err error)) http.Handler {
	wrapper := &serverInterfaceWrapper{Handler: si, ErrorHandlerFunc: errorHandler}

	r.Get("/health", si.GetHealth)
	r.Get("/sessions", si.ListSessions)
	r.Route("/sessions/{sessionId}", func(r chi.Router) {
		r.Get("/", wrapper.session(wrapper.getSession))
		r.Post("/", wrapper.session(si.StartSession))
		r.Delete("/", wrapper.session(si.DeleteSession))
		r.Post("/input", wrapper.session(si.SubmitInput))
		r.Post("/click", wrapper.session(si.Click))
		r.Post("/cancel", wrapper.session(si.Cancel))
		r.Post("/undo", wrapper.session(si.Undo))
		r.Post("/redo", wrapper.session(si.Redo))
		r.Get("/entities", wrapper.session(si.ListEntities))
		r.Get("/project", wrapper.session(si.GetProject))
		r.Get("/graph", wrapper.session(si.GetGraph))
	})
	return r
}
