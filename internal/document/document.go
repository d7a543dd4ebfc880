// internal/document/document.go
package document

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/types"
)

// ID uniquely identifies a TextElement. Ids are never reused within a
// session; snapshots restored from history keep their original ids.
type ID string

// NewID mints a fresh random element id.
func NewID() ID {
	return ID(uuid.NewString())
}

// ErrEmptyText is returned when creating an element with blank text.
var ErrEmptyText = errors.New("element text is empty")

// Weight is the font weight of an element.
type Weight string

// Slant is the font slant of an element.
type Slant string

// Decoration is the text decoration of an element.
type Decoration string

// Recognized style values. Toggles flip between exactly these pairs;
// anything else falls back to the first value of its pair.
const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"

	SlantNormal Slant = "normal"
	SlantItalic Slant = "italic"

	DecorationNone      Decoration = "none"
	DecorationUnderline Decoration = "underline"
)

// Style describes how an element is rendered. It is copied by value
// from the active style profile when the element is created and never
// mutated afterwards.
type Style struct {
	FontFamily string
	FontSize   float64
	FontWeight Weight
	FontStyle  Slant
	Decoration Decoration
	Color      string // Hex, e.g. "#1a2b3c"
}

// TextElement is one placed text fragment on the canvas.
type TextElement struct {
	ID    ID
	Text  string
	Pos   types.Point
	Style Style
}

// Document is the ordered collection of placed elements. Order is
// stacking order for rendering, oldest first.
type Document []*TextElement

// Clone returns a deep copy sharing no pointers with the receiver.
// The result is never nil so snapshots compare cleanly.
func (d Document) Clone() Document {
	clone := make(Document, 0, len(d))
	if err := copier.CopyWithOption(&clone, &d, copier.Option{DeepCopy: true}); err != nil {
		// Should not happen for a plain slice of structs; log and
		// return what we have rather than panicking mid-edit.
		logger.Errorf("document: deep copy failed: %v", err)
	}
	return clone
}

// Find returns the element with the given id, if present.
func (d Document) Find(id ID) (*TextElement, bool) {
	for _, el := range d {
		if el.ID == id {
			return el, true
		}
	}
	return nil, false
}

// IndexOf returns the position of id within the document, or -1.
func (d Document) IndexOf(id ID) int {
	for i, el := range d {
		if el.ID == id {
			return i
		}
	}
	return -1
}
