// Package drag implements the pointer-drag state machine that moves
// elements. A gesture runs from Begin to End; every Move in between
// updates the element position in place, and the whole gesture commits
// as a single history entry when it ends.
package drag

import (
	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/types"
)

// Editor is the interface the drag manager expects from the editor.
type Editor interface {
	FindElement(id document.ID) (*document.TextElement, bool)
	SetElementPosition(id document.ID, pos types.Point) bool
	SelectElement(id document.ID) (*document.TextElement, bool)
	ClearSelection()
	CommitHistory()
}

// State identifies the machine state.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Session holds the transient data of one active gesture.
type Session struct {
	TargetID document.ID
	// PointerOffset is the grab point minus the element origin,
	// captured once at Begin and held constant for the gesture. Both
	// are expressed in the same canvas-local frame.
	PointerOffset types.Point
}

// Manager runs the drag state machine. At most one session is active
// at a time.
type Manager struct {
	editor  Editor
	state   State
	session Session
}

// NewManager creates an idle drag manager.
func NewManager(editor Editor) *Manager {
	return &Manager{
		editor: editor,
		state:  StateIdle,
	}
}

// State returns the current machine state.
func (m *Manager) State() State {
	return m.state
}

// IsDragging reports whether a gesture is active.
func (m *Manager) IsDragging() bool {
	return m.state == StateDragging
}

// Target returns the id being dragged, empty while idle.
func (m *Manager) Target() document.ID {
	if m.state != StateDragging {
		return ""
	}
	return m.session.TargetID
}

// Begin starts a gesture on the element under the pointer and selects
// it. It fails silently, changing nothing, when the element is unknown
// or another gesture is already active; simultaneous drags are out of
// scope, so a second Begin is rejected rather than ending the first.
func (m *Manager) Begin(id document.ID, pointer types.Point) bool {
	if m.state == StateDragging {
		logger.DebugTagf("drag", "Begin rejected: gesture already active on %s", m.session.TargetID)
		return false
	}
	el, ok := m.editor.FindElement(id)
	if !ok {
		logger.DebugTagf("drag", "Begin rejected: element %s not found", id)
		return false
	}
	m.editor.SelectElement(id)
	m.session = Session{
		TargetID:      id,
		PointerOffset: pointer.Sub(el.Pos),
	}
	m.state = StateDragging
	logger.DebugTagf("drag", "Idle -> Dragging: %s grabbed at offset (%.1f, %.1f)",
		id, m.session.PointerOffset.X, m.session.PointerOffset.Y)
	return true
}

// Move repositions the dragged element so it keeps its grab offset
// from the pointer. This fires at pointer-move frequency and records
// no history; the gesture commits once on End. Moving while idle is a
// safe no-op, which also covers move events arriving after End.
func (m *Manager) Move(pointer types.Point) bool {
	if m.state != StateDragging {
		return false
	}
	pos := pointer.Sub(m.session.PointerOffset)
	if !m.editor.SetElementPosition(m.session.TargetID, pos) {
		// The element was deleted mid-gesture. Position updates
		// degrade to no-ops; End still fires once as usual.
		logger.DebugTagf("drag", "Move: element %s vanished mid-gesture", m.session.TargetID)
		return false
	}
	return true
}

// End finishes the active gesture: the document is committed exactly
// once, the selection is cleared, and the session is discarded. The
// element keeps its last reported position. Ending while idle is a
// safe no-op. Pointer-up and leaving the canvas both land here.
func (m *Manager) End() bool {
	if m.state != StateDragging {
		return false
	}
	id := m.session.TargetID
	m.state = StateIdle
	m.session = Session{}
	m.editor.CommitHistory()
	m.editor.ClearSelection()
	logger.DebugTagf("drag", "Dragging -> Idle: gesture on %s committed", id)
	return true
}
