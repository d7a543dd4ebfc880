// internal/event/event.go
package event

import (
	"github.com/gdamore/tcell/v2"
	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Document Events
	TypeDocumentChanged  // Fired when document content changes (create/delete/move/undo/redo)
	TypeSelectionChanged // Fired when the selected element changes
	TypeDragStarted      // Fired when a drag gesture begins on an element
	TypeDragEnded        // Fired when a drag gesture finishes
	TypeStyleChanged     // Fired when the style profile changes

	// Input Events (potentially useful for reacting to raw keys)
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---
// (Define structs for data associated with specific event types)

// DocumentChangedData describes what mutated the document.
type DocumentChangedData struct {
	Reason string // e.g. "create", "delete", "move", "undo", "redo"
}

// SelectionChangedData carries the newly selected element id.
// ID is empty when the selection was cleared.
type SelectionChangedData struct {
	ID document.ID
}

// DragStartedData contains the dragged element and the grab point.
type DragStartedData struct {
	ID      document.ID
	Pointer types.Point
}

// DragEndedData reports the element whose drag finished.
type DragEndedData struct {
	ID document.ID
}

// StyleChangedData signals that the active style profile changed.
// Subscribers re-read the profile from the editor; no copy travels here.
type StyleChangedData struct{}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
