// internal/document/store.go
package document

import (
	"math/rand/v2"
	"strings"

	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/types"
)

// PlacementFunc chooses where a newly created element lands.
type PlacementFunc func(canvas types.Size) types.Point

// RandomPlacement scatters new elements uniformly inside the canvas.
func RandomPlacement(canvas types.Size) types.Point {
	return types.Point{
		X: rand.Float64() * canvas.Width,
		Y: rand.Float64() * canvas.Height,
	}
}

// Store holds the live document plus the current selection. It does
// no locking; commands run on a single event loop.
type Store struct {
	elements  Document
	selection ID // empty when nothing is selected
	canvas    types.Size
	place     PlacementFunc
}

// NewStore creates an empty store for a canvas of the given size.
func NewStore(canvas types.Size) *Store {
	return &Store{
		elements: Document{},
		canvas:   canvas,
		place:    RandomPlacement,
	}
}

// SetPlacement overrides the placement policy for new elements.
func (s *Store) SetPlacement(fn PlacementFunc) {
	if fn != nil {
		s.place = fn
	}
}

// SetCanvasSize updates the bounds used for new element placement.
// A zero size is ignored.
func (s *Store) SetCanvasSize(size types.Size) {
	if size.IsZero() {
		return
	}
	s.canvas = size
}

// CanvasSize returns the current canvas bounds.
func (s *Store) CanvasSize() types.Size {
	return s.canvas
}

// Add creates a new element with the given text and style snapshot and
// appends it to the document. Returns ErrEmptyText for blank text.
func (s *Store) Add(text string, style Style) (*TextElement, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	el := &TextElement{
		ID:    NewID(),
		Text:  text,
		Pos:   s.place(s.canvas),
		Style: style,
	}
	s.elements = append(s.elements, el)
	logger.DebugTagf("store", "Added element %s at (%.1f, %.1f)", el.ID, el.Pos.X, el.Pos.Y)
	return el, nil
}

// Remove deletes the element with the given id and reports whether it
// was present. Removing a missing element is not an error.
func (s *Store) Remove(id ID) bool {
	idx := s.elements.IndexOf(id)
	if idx < 0 {
		logger.DebugTagf("store", "Remove: element %s not found", id)
		return false
	}
	s.elements = append(s.elements[:idx], s.elements[idx+1:]...)
	if s.selection == id {
		s.selection = ""
	}
	logger.DebugTagf("store", "Removed element %s", id)
	return true
}

// SetPosition moves an element in place without recording history.
// Reports false when the id is unknown.
func (s *Store) SetPosition(id ID, pos types.Point) bool {
	el, ok := s.elements.Find(id)
	if !ok {
		return false
	}
	el.Pos = pos
	return true
}

// Select marks the element as selected and returns it. An unknown id
// clears the selection instead of failing; a delete can race a drag,
// and a stale id must degrade safely.
func (s *Store) Select(id ID) (*TextElement, bool) {
	el, ok := s.elements.Find(id)
	if !ok {
		s.selection = ""
		return nil, false
	}
	s.selection = id
	return el, true
}

// ClearSelection drops the current selection.
func (s *Store) ClearSelection() {
	s.selection = ""
}

// Selection returns the selected element id, empty if none.
func (s *Store) Selection() ID {
	return s.selection
}

// Find returns the live element with the given id.
func (s *Store) Find(id ID) (*TextElement, bool) {
	return s.elements.Find(id)
}

// Len returns the number of placed elements.
func (s *Store) Len() int {
	return len(s.elements)
}

// Elements returns the live document. Callers must not hold the slice
// across mutations; use Snapshot for an independent copy.
func (s *Store) Elements() Document {
	return s.elements
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() Document {
	return s.elements.Clone()
}

// Restore replaces the document with a deep copy of doc. The selection
// survives only if the selected element still exists afterwards.
func (s *Store) Restore(doc Document) {
	s.elements = doc.Clone()
	if s.selection != "" {
		if _, ok := s.elements.Find(s.selection); !ok {
			s.selection = ""
		}
	}
}
