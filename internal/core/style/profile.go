// Package style manages the pending style applied to new elements.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/logger"
)

// Default values for a fresh profile.
const (
	DefaultFontFamily = "sans-serif"
	DefaultFontSize   = 16.0
	DefaultColor      = "#000000"
)

// DefaultStyle returns the style a fresh profile starts from.
func DefaultStyle() document.Style {
	return document.Style{
		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
		FontWeight: document.WeightNormal,
		FontStyle:  document.SlantNormal,
		Decoration: document.DecorationNone,
		Color:      DefaultColor,
	}
}

// Profile holds the mutable current style selection. It is independent
// of any element; elements receive a by-value snapshot at creation.
type Profile struct {
	current document.Style
}

// NewProfile creates a profile starting from the given style. Zero or
// unrecognized fields are replaced with defaults.
func NewProfile(initial document.Style) *Profile {
	p := &Profile{current: initial}
	p.sanitize()
	return p
}

// sanitize resets unusable field values to their defaults.
func (p *Profile) sanitize() {
	if p.current.FontFamily == "" {
		p.current.FontFamily = DefaultFontFamily
	}
	if p.current.FontSize <= 0 {
		p.current.FontSize = DefaultFontSize
	}
	if p.current.FontWeight != document.WeightNormal && p.current.FontWeight != document.WeightBold {
		p.current.FontWeight = document.WeightNormal
	}
	if p.current.FontStyle != document.SlantNormal && p.current.FontStyle != document.SlantItalic {
		p.current.FontStyle = document.SlantNormal
	}
	if p.current.Decoration != document.DecorationNone && p.current.Decoration != document.DecorationUnderline {
		p.current.Decoration = document.DecorationNone
	}
	if _, err := colorful.Hex(p.current.Color); err != nil {
		p.current.Color = DefaultColor
	}
}

// Snapshot returns the current style by value.
func (p *Profile) Snapshot() document.Style {
	return p.current
}

// SetFontFamily replaces the font family. Empty values are ignored.
func (p *Profile) SetFontFamily(family string) {
	if family == "" {
		return
	}
	p.current.FontFamily = family
}

// SetFontSize replaces the font size. Non-positive values are ignored.
func (p *Profile) SetFontSize(size float64) {
	if size <= 0 {
		logger.Warnf("Style: ignoring font size %.2f", size)
		return
	}
	p.current.FontSize = size
}

// SetColor replaces the color. The value must parse as a hex color
// (e.g. "#1a2b3c"); anything else is ignored.
func (p *Profile) SetColor(hex string) {
	if _, err := colorful.Hex(hex); err != nil {
		logger.Warnf("Style: ignoring color %q: %v", hex, err)
		return
	}
	p.current.Color = hex
}

// ToggleWeight flips between normal and bold and returns the new
// value. An unrecognized stored value fails closed to normal.
func (p *Profile) ToggleWeight() document.Weight {
	switch p.current.FontWeight {
	case document.WeightNormal:
		p.current.FontWeight = document.WeightBold
	case document.WeightBold:
		p.current.FontWeight = document.WeightNormal
	default:
		p.current.FontWeight = document.WeightNormal
	}
	logger.DebugTagf("style", "Weight toggled to %s", p.current.FontWeight)
	return p.current.FontWeight
}

// ToggleItalic flips between normal and italic and returns the new
// value. An unrecognized stored value fails closed to normal.
func (p *Profile) ToggleItalic() document.Slant {
	switch p.current.FontStyle {
	case document.SlantNormal:
		p.current.FontStyle = document.SlantItalic
	case document.SlantItalic:
		p.current.FontStyle = document.SlantNormal
	default:
		p.current.FontStyle = document.SlantNormal
	}
	logger.DebugTagf("style", "Slant toggled to %s", p.current.FontStyle)
	return p.current.FontStyle
}

// ToggleUnderline flips between none and underline and returns the new
// value. An unrecognized stored value fails closed to none.
func (p *Profile) ToggleUnderline() document.Decoration {
	switch p.current.Decoration {
	case document.DecorationNone:
		p.current.Decoration = document.DecorationUnderline
	case document.DecorationUnderline:
		p.current.Decoration = document.DecorationNone
	default:
		p.current.Decoration = document.DecorationNone
	}
	logger.DebugTagf("style", "Decoration toggled to %s", p.current.Decoration)
	return p.current.Decoration
}

// Patch carries partial profile updates. Nil fields are left unchanged,
// so a caller can adjust one field without knowing the rest.
type Patch struct {
	FontFamily *string
	FontSize   *float64
	FontWeight *document.Weight
	FontStyle  *document.Slant
	Decoration *document.Decoration
	Color      *string
}

// Apply merges the set fields of patch into the profile. Family, size
// and color go through the same validation as their setters. The enum
// fields are replaced as given; an unrecognized value sits in the
// profile until the next toggle fails it closed.
func (p *Profile) Apply(patch Patch) {
	if patch.FontFamily != nil {
		p.SetFontFamily(*patch.FontFamily)
	}
	if patch.FontSize != nil {
		p.SetFontSize(*patch.FontSize)
	}
	if patch.FontWeight != nil {
		p.current.FontWeight = *patch.FontWeight
	}
	if patch.FontStyle != nil {
		p.current.FontStyle = *patch.FontStyle
	}
	if patch.Decoration != nil {
		p.current.Decoration = *patch.Decoration
	}
	if patch.Color != nil {
		p.SetColor(*patch.Color)
	}
}

// Describe renders the profile for status display, e.g.
// "sans-serif 16.0 #000000 bold underline".
func (p *Profile) Describe() string {
	out := fmt.Sprintf("%s %.1f %s", p.current.FontFamily, p.current.FontSize, p.current.Color)
	if p.current.FontWeight == document.WeightBold {
		out += " bold"
	}
	if p.current.FontStyle == document.SlantItalic {
		out += " italic"
	}
	if p.current.Decoration == document.DecorationUnderline {
		out += " underline"
	}
	return out
}
