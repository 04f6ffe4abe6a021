// Package history provides linear undo/redo over full snapshots of the
// element collection.
package history

import "github.com/inamate/sketchpad/internal/document"

// DefaultLimit caps the undo stack. Zero means unbounded.
const DefaultLimit = 200

// Snapshot is an independent deep copy of the element collection.
type Snapshot []document.Element

func capture(doc *document.Document) Snapshot {
	return Snapshot(doc.Snapshot())
}

// Manager holds the undo and redo stacks. Every snapshot it stores is owned
// exclusively by the manager; restoring hands out fresh copies.
type Manager struct {
	undo  []Snapshot
	redo  []Snapshot
	limit int
}

// NewManager creates a manager that keeps at most limit undo steps
// (0 for no limit).
func NewManager(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{limit: limit}
}

// Push records the current state of doc as an undo step and clears the
// redo stack. Call it once per gesture, before the gesture mutates doc.
func (m *Manager) Push(doc *document.Document) {
	m.pushUndo(capture(doc))
	m.redo = nil
}

func (m *Manager) pushUndo(snap []document.Element) {
	m.undo = append(m.undo, snap)
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = m.undo[len(m.undo)-m.limit:]
	}
}

// Discard drops the most recent undo step without restoring it, for a
// gesture that ended without changing anything. depth is the undo depth
// reported right after the matching Push; if the stack has moved since,
// nothing is dropped.
func (m *Manager) Discard(depth int) bool {
	if depth == 0 || len(m.undo) != depth {
		return false
	}
	m.undo = m.undo[:len(m.undo)-1]
	return true
}

// Undo restores the most recent undo step into doc. The state being left is
// pushed onto the redo stack. It reports false when there is nothing to undo.
func (m *Manager) Undo(doc *document.Document) bool {
	if len(m.undo) == 0 {
		return false
	}
	m.redo = append(m.redo, capture(doc))
	last := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	doc.Restore(last)
	return true
}

// Redo re-applies the most recently undone step. It reports false when
// there is nothing to redo.
func (m *Manager) Redo(doc *document.Document) bool {
	if len(m.redo) == 0 {
		return false
	}
	m.pushUndo(capture(doc))
	last := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	doc.Restore(last)
	return true
}

// CanUndo reports whether Undo would change anything.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo would change anything.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (m *Manager) Depth() (undo, redo int) {
	return len(m.undo), len(m.redo)
}

// Reset drops all history.
func (m *Manager) Reset() {
	m.undo = nil
	m.redo = nil
}
