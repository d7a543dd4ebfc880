// internal/core/editor.go
package core

import (
	"github.com/okvee/placard/internal/config"
	"github.com/okvee/placard/internal/core/drag"
	"github.com/okvee/placard/internal/core/history"
	"github.com/okvee/placard/internal/core/style"
	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/event"
	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/types"
)

// Editor owns the canvas state: the element store, the history engine,
// the drag machine, and the active style profile. It exposes the
// command surface the presentation layer calls; all commands run to
// completion on a single event loop.
type Editor struct {
	store   *document.Store
	history *history.Engine
	drag    *drag.Manager
	profile *style.Profile

	eventManager *event.Manager // Added for dispatching events on mutation etc.
}

// Options configure a new editor.
type Options struct {
	// CanvasSize bounds new element placement. Zero falls back to the
	// configured defaults.
	CanvasSize types.Size
	// HistoryDepth bounds the undo stack. 0 keeps every snapshot;
	// negative values fall back to history.DefaultMaxDepth.
	HistoryDepth int
	// InitialStyle seeds the style profile. Zero or unrecognized
	// fields are replaced with defaults.
	InitialStyle document.Style
}

// NewEditor creates an editor with an empty canvas.
func NewEditor(opts Options) *Editor {
	canvas := opts.CanvasSize
	if canvas.IsZero() {
		canvas = types.Size{Width: config.DefaultCanvasWidth, Height: config.DefaultCanvasHeight}
	}
	e := &Editor{
		store:   document.NewStore(canvas),
		profile: style.NewProfile(opts.InitialStyle),
	}
	e.history = history.NewEngine(e.store.Elements(), opts.HistoryDepth)
	e.drag = drag.NewManager(e)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the editor's event manager (may be nil).
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// --- Command Surface ---

// CreateElement places a new label carrying a by-value snapshot of the
// active style profile, at a position chosen by the placement policy.
// The text must contain at least one non-space character.
func (e *Editor) CreateElement(text string) (document.ID, error) {
	el, err := e.store.Add(text, e.profile.Snapshot())
	if err != nil {
		logger.Warnf("Editor: create rejected: %v", err)
		return "", err
	}
	e.history.Commit(e.store.Elements())
	e.dispatch(event.TypeDocumentChanged, event.DocumentChangedData{Reason: "create"})
	return el.ID, nil
}

// DeleteElement removes a label and records one history entry. An
// unknown id is a safe no-op and records nothing.
func (e *Editor) DeleteElement(id document.ID) bool {
	wasSelected := e.store.Selection() == id
	if !e.store.Remove(id) {
		return false
	}
	e.history.Commit(e.store.Elements())
	e.dispatch(event.TypeDocumentChanged, event.DocumentChangedData{Reason: "delete"})
	if wasSelected {
		e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{ID: ""})
	}
	return true
}

// BeginDrag starts a drag gesture on the element under the pointer and
// selects it. Returns false, changing nothing, when the element is
// unknown or a gesture is already active.
func (e *Editor) BeginDrag(id document.ID, pointer types.Point) bool {
	if !e.drag.Begin(id, pointer) {
		return false
	}
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{ID: id})
	e.dispatch(event.TypeDragStarted, event.DragStartedData{ID: id, Pointer: pointer})
	return true
}

// DragTo moves the dragged element so it keeps its grab offset from
// the pointer. Safe no-op without an active gesture. No history entry
// and no event is produced per move; the gesture commits on EndDrag.
func (e *Editor) DragTo(pointer types.Point) bool {
	return e.drag.Move(pointer)
}

// EndDrag finishes the active gesture, committing exactly one history
// entry and clearing the selection. Safe no-op while idle.
func (e *Editor) EndDrag() bool {
	id := e.drag.Target()
	if !e.drag.End() {
		return false
	}
	e.dispatch(event.TypeDragEnded, event.DragEndedData{ID: id})
	e.dispatch(event.TypeDocumentChanged, event.DocumentChangedData{Reason: "move"})
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{ID: ""})
	return true
}

// PointerLeft reports that the pointer left the canvas. An active
// gesture ends exactly as on pointer-up: the element keeps its last
// reported position rather than snapping back.
func (e *Editor) PointerLeft() bool {
	return e.EndDrag()
}

// Undo steps the document back one committed mutation and returns the
// document now in effect. With nothing to undo it returns the current
// document unchanged. An active gesture is committed first so the undo
// applies to a consistent state.
func (e *Editor) Undo() (document.Document, bool) {
	if e.drag.IsDragging() {
		e.EndDrag()
	}
	doc, ok := e.history.Undo()
	if !ok {
		return e.store.Elements(), false
	}
	e.store.Restore(doc)
	e.dispatch(event.TypeDocumentChanged, event.DocumentChangedData{Reason: "undo"})
	return e.store.Elements(), true
}

// Redo reapplies the most recently undone mutation and returns the
// document now in effect. With an empty redo stack it returns the
// current document unchanged. An active gesture is committed first,
// which clears the redo stack, so redo during a drag degrades to just
// committing the gesture.
func (e *Editor) Redo() (document.Document, bool) {
	if e.drag.IsDragging() {
		e.EndDrag()
	}
	doc, ok := e.history.Redo()
	if !ok {
		return e.store.Elements(), false
	}
	e.store.Restore(doc)
	e.dispatch(event.TypeDocumentChanged, event.DocumentChangedData{Reason: "redo"})
	return e.store.Elements(), true
}

// NewSession clears the canvas and starts history afresh.
func (e *Editor) NewSession() {
	e.EndDrag()
	e.store.Restore(document.Document{})
	e.history.Clear(e.store.Elements())
	e.dispatch(event.TypeDocumentChanged, event.DocumentChangedData{Reason: "new"})
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{ID: ""})
}

// --- Style Profile ---

// StyleProfile returns the active style profile.
func (e *Editor) StyleProfile() *style.Profile {
	return e.profile
}

// UpdateStyleProfile merges a partial style change into the profile.
// Only subsequently created elements are affected.
func (e *Editor) UpdateStyleProfile(patch style.Patch) {
	e.profile.Apply(patch)
	e.dispatch(event.TypeStyleChanged, event.StyleChangedData{})
}

// ToggleStyle flips one of the two-valued style fields: "weight",
// "italic" or "underline". Unknown field names are ignored.
func (e *Editor) ToggleStyle(field string) {
	switch field {
	case "weight":
		e.profile.ToggleWeight()
	case "italic":
		e.profile.ToggleItalic()
	case "underline":
		e.profile.ToggleUnderline()
	default:
		logger.Warnf("Editor: unknown style toggle %q", field)
		return
	}
	e.dispatch(event.TypeStyleChanged, event.StyleChangedData{})
}

// SetFontFamily replaces the profile's font family.
func (e *Editor) SetFontFamily(family string) {
	e.profile.SetFontFamily(family)
	e.dispatch(event.TypeStyleChanged, event.StyleChangedData{})
}

// SetFontSize replaces the profile's font size.
func (e *Editor) SetFontSize(size float64) {
	e.profile.SetFontSize(size)
	e.dispatch(event.TypeStyleChanged, event.StyleChangedData{})
}

// SetColor replaces the profile's hex color.
func (e *Editor) SetColor(hex string) {
	e.profile.SetColor(hex)
	e.dispatch(event.TypeStyleChanged, event.StyleChangedData{})
}

// --- Query Surface ---

// Document returns an independent snapshot of the current document.
func (e *Editor) Document() document.Document {
	return e.store.Snapshot()
}

// Elements returns the live document for read-only iteration, e.g.
// drawing. Use Document for an owned copy.
func (e *Editor) Elements() document.Document {
	return e.store.Elements()
}

// Selection returns the selected element id, empty if none.
func (e *Editor) Selection() document.ID {
	return e.store.Selection()
}

// SelectedElement returns the selected element, if any.
func (e *Editor) SelectedElement() (*document.TextElement, bool) {
	id := e.store.Selection()
	if id == "" {
		return nil, false
	}
	return e.store.Find(id)
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// IsDragging reports whether a drag gesture is active.
func (e *Editor) IsDragging() bool {
	return e.drag.IsDragging()
}

// DragTarget returns the id being dragged, empty while idle.
func (e *Editor) DragTarget() document.ID {
	return e.drag.Target()
}

// SetCanvasSize updates the bounds used for new element placement.
func (e *Editor) SetCanvasSize(size types.Size) {
	e.store.SetCanvasSize(size)
}

// CanvasSize returns the current canvas bounds.
func (e *Editor) CanvasSize() types.Size {
	return e.store.CanvasSize()
}

// SetPlacement overrides the placement policy for new elements.
func (e *Editor) SetPlacement(fn document.PlacementFunc) {
	e.store.SetPlacement(fn)
}

// --- Drag Manager Wiring ---

// FindElement returns the live element with the given id.
func (e *Editor) FindElement(id document.ID) (*document.TextElement, bool) {
	return e.store.Find(id)
}

// SetElementPosition moves an element in place without recording
// history. Drag gestures call this at pointer-move frequency.
func (e *Editor) SetElementPosition(id document.ID, pos types.Point) bool {
	return e.store.SetPosition(id, pos)
}

// SelectElement marks the element as selected and returns it. Unknown
// ids clear the selection instead of failing.
func (e *Editor) SelectElement(id document.ID) (*document.TextElement, bool) {
	return e.store.Select(id)
}

// ClearSelection drops the current selection.
func (e *Editor) ClearSelection() {
	e.store.ClearSelection()
}

// CommitHistory records the current document as a new history entry.
func (e *Editor) CommitHistory() {
	e.history.Commit(e.store.Elements())
}

// Ensure Editor satisfies the drag manager's interface
var _ drag.Editor = (*Editor)(nil)
