package command

import (
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

// Category decides the default executability rule.
type Category int

const (
	Creation Category = iota
	Manipulation
	Utility
)

func (c Category) String() string {
	switch c {
	case Manipulation:
		return "manipulation"
	case Utility:
		return "utility"
	default:
		return "creation"
	}
}

// Kind tags the concrete command type.
type Kind int

const (
	KindLine Kind = iota + 1
	KindCircle
	KindRectangle
	KindArc
	KindMove
	KindRotate
	KindScale
	KindCopy
	KindAxis
	KindTrim
	KindOffset
	KindText
	KindPlaceColumn
	KindPlaceBeam
	KindDistance
	KindMeasure
	KindArea
	KindPerimeter
	KindSelectRegion
)

// Modifiers are the keyboard modifiers held during a step.
type Modifiers struct {
	Shift bool `json:"shift,omitempty" mapstructure:"shift"`
	Ctrl  bool `json:"ctrl,omitempty" mapstructure:"ctrl"`
	Alt   bool `json:"alt,omitempty" mapstructure:"alt"`
}

// Context is what one step may see. Model is exclusively the step's for
// the duration of the call; Selection is read only.
type Context struct {
	Model            *domain.Model
	Selection        domain.Selection
	Filled           bool
	Modifiers        Modifiers
	ActiveColumnType uint64
	ActiveBeamType   uint64
}

// PointResult is the outcome of a step.
type PointResult struct {
	Complete bool
	Prompt   string
}

// NeedMore keeps the command running and publishes the next prompt.
func NeedMore(prompt string) PointResult { return PointResult{Prompt: prompt} }

// Done finishes the command and returns the executor to idle.
func Done() PointResult { return PointResult{Complete: true} }

// InputKind tells the executor how a typed token was consumed.
type InputKind int

const (
	// InputPoint is a token parsed as a point and fed to PushPoint.
	InputPoint InputKind = iota
	// InputParameter is a value or keyword such as a radius, factor or 'r'.
	InputParameter
	// InputInvalid leaves the command state untouched.
	InputInvalid
)

// InputResult is the outcome of a typed token. Point is meaningful unless
// Kind is InputInvalid, in which case Message explains the rejection.
type InputResult struct {
	Kind    InputKind
	Point   PointResult
	Message string
}

// PointInput wraps the result of a typed point.
func PointInput(r PointResult) InputResult { return InputResult{Kind: InputPoint, Point: r} }

// ParameterInput wraps the result of a typed value or keyword.
func ParameterInput(r PointResult) InputResult { return InputResult{Kind: InputParameter, Point: r} }

// Invalid rejects a token with msg as the status line.
func Invalid(msg string) InputResult { return InputResult{Kind: InputInvalid, Message: msg} }

// Complete reports whether the token finished the command.
func (r InputResult) Complete() bool { return r.Kind != InputInvalid && r.Point.Complete }

// Status is the text to publish after the token.
func (r InputResult) Status() string {
	if r.Kind == InputInvalid {
		return r.Message
	}
	return r.Point.Prompt
}

// Command is implemented only by the types in this package.
type Command interface {
	Name() string
	Kind() Kind
	Category() Category
	InitialPrompt() string

	CanExecute(ctx Context) bool
	RefusalMessage() string
	OnStart(ctx Context)

	PushPoint(p geom.Vector2, ctx Context) PointResult
	ProcessInput(token string, ctx Context) InputResult
	ConstrainPoint(p geom.Vector2, last *geom.Vector2, mods Modifiers) geom.Vector2

	// Points returns a copy of the points collected so far.
	Points() []geom.Vector2

	sealed()
}

// TokenClaimer is implemented by commands that own some tokens which would
// otherwise be read as command names (Arc's "r", free text content).
type TokenClaimer interface {
	ClaimsToken(token string) bool
}
