// Package history keeps undo and redo stacks of entity-list snapshots.
package history

import "github.com/Hakkology/MuginCAD-sub000/pkg/domain"

// DefaultMaxDepth bounds the undo stack when no option is given.
const DefaultMaxDepth = 50

// Manager holds deep copies of the top-level entity list. It is not safe
// for concurrent use.
type Manager struct {
	undo     [][]*domain.Entity
	redo     [][]*domain.Entity
	maxDepth int
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxDepth caps the number of undo snapshots. Values below 1 are
// ignored.
func WithMaxDepth(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxDepth = n
		}
	}
}

func New(opts ...Option) *Manager {
	m := &Manager{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save records the state before a change. Any redo history is dropped and
// the oldest snapshot is evicted past the depth limit.
func (m *Manager) Save(entities []*domain.Entity) {
	m.redo = nil
	m.undo = append(m.undo, domain.CloneEntities(entities))
	if over := len(m.undo) - m.maxDepth; over > 0 {
		m.undo = append(m.undo[:0:0], m.undo[over:]...)
	}
}

// Undo returns the previous state and pushes current onto the redo stack.
func (m *Manager) Undo(current []*domain.Entity) ([]*domain.Entity, bool) {
	if len(m.undo) == 0 {
		return nil, false
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, domain.CloneEntities(current))
	return prev, true
}

// Redo is the inverse of Undo.
func (m *Manager) Redo(current []*domain.Entity) ([]*domain.Entity, bool) {
	if len(m.redo) == 0 {
		return nil, false
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, domain.CloneEntities(current))
	return next, true
}

func (m *Manager) CanUndo() bool  { return len(m.undo) > 0 }
func (m *Manager) CanRedo() bool  { return len(m.redo) > 0 }
func (m *Manager) UndoCount() int { return len(m.undo) }
func (m *Manager) RedoCount() int { return len(m.redo) }
func (m *Manager) MaxDepth() int  { return m.maxDepth }

// Clear drops both stacks.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}
