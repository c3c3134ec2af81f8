package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventCommandStart    EventType = "command_start"
	EventCommandStep     EventType = "command_step"
	EventCommandComplete EventType = "command_complete"
	EventCommandCancel   EventType = "command_cancel"
	EventCommandRefused  EventType = "command_refused"
)

// CommandEvent describes one transition of the active command.
type CommandEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Command   string        `json:"command"`
	Input     string        `json:"input,omitempty"` // token or formatted point
	Status    string        `json:"status,omitempty"`
	Elapsed   time.Duration `json:"elapsed,omitempty"` // since start, set on complete/cancel
}

// LifecycleHooks defines callbacks for executor observability.
// Every field is optional.
type LifecycleHooks struct {
	OnCommandStart    func(*CommandEvent)
	OnCommandStep     func(*CommandEvent)
	OnCommandComplete func(*CommandEvent)
	OnCommandCancel   func(*CommandEvent)
	OnCommandRefused  func(*CommandEvent)
}

// Emit dispatches ev to the matching hook, if any.
func (h LifecycleHooks) Emit(ev *CommandEvent) {
	var fn func(*CommandEvent)
	switch ev.Type {
	case EventCommandStart:
		fn = h.OnCommandStart
	case EventCommandStep:
		fn = h.OnCommandStep
	case EventCommandComplete:
		fn = h.OnCommandComplete
	case EventCommandCancel:
		fn = h.OnCommandCancel
	case EventCommandRefused:
		fn = h.OnCommandRefused
	}
	if fn != nil {
		fn(ev)
	}
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	chain := func(a, b func(*CommandEvent)) func(*CommandEvent) {
		if a == nil {
			return b
		}
		if b == nil {
			return a
		}
		return func(ev *CommandEvent) { a(ev); b(ev) }
	}
	return LifecycleHooks{
		OnCommandStart:    chain(h.OnCommandStart, other.OnCommandStart),
		OnCommandStep:     chain(h.OnCommandStep, other.OnCommandStep),
		OnCommandComplete: chain(h.OnCommandComplete, other.OnCommandComplete),
		OnCommandCancel:   chain(h.OnCommandCancel, other.OnCommandCancel),
		OnCommandRefused:  chain(h.OnCommandRefused, other.OnCommandRefused),
	}
}
