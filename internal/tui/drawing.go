// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/okvee/placard/internal/core"
	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/types"
)

// CanvasCell projects a canvas point onto the cell grid of a view that
// is width cells wide and height cells tall.
func CanvasCell(pos types.Point, canvas types.Size, width, height int) (int, int) {
	if canvas.IsZero() || width <= 0 || height <= 0 {
		return 0, 0
	}
	x := int(pos.X * float64(width) / canvas.Width)
	y := int(pos.Y * float64(height) / canvas.Height)
	return x, y
}

// CanvasPoint maps a cell back into canvas coordinates. Inverse of
// CanvasCell, used to translate pointer events.
func CanvasPoint(x, y int, canvas types.Size, width, height int) types.Point {
	if canvas.IsZero() || width <= 0 || height <= 0 {
		return types.Point{}
	}
	return types.Point{
		X: float64(x) * canvas.Width / float64(width),
		Y: float64(y) * canvas.Height / float64(height),
	}
}

// elementStyle converts an element's text style to a tcell style. Font
// family and size have no cell-grid representation; they only take
// effect in the PNG export.
func elementStyle(st document.Style, base tcell.Style) tcell.Style {
	s := base
	if st.Color != "" {
		s = s.Foreground(tcell.GetColor(st.Color))
	}
	if st.FontWeight == document.WeightBold {
		s = s.Bold(true)
	}
	if st.FontStyle == document.SlantItalic {
		s = s.Italic(true)
	}
	if st.Decoration == document.DecorationUnderline {
		s = s.Underline(true)
	}
	return s
}

// DrawCanvas draws every element onto the text area above the status
// bar. Elements are painted in document order, so later elements win
// overlapping cells. The selected element is drawn reversed.
func DrawCanvas(tuiManager *TUI, editor *core.Editor, statusBarHeight int) {
	width, height := tuiManager.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	defaultStyle := tcell.StyleDefault
	canvas := editor.CanvasSize()
	selected := editor.Selection()

	// --- A: Fill the canvas area with the default style ---
	for y := 0; y < viewHeight; y++ {
		for x := 0; x < width; x++ {
			tuiManager.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	// --- B: Draw elements ---
	for _, el := range editor.Elements() {
		cellX, cellY := CanvasCell(el.Pos, canvas, width, viewHeight)
		if cellY < 0 || cellY >= viewHeight {
			continue
		}

		style := elementStyle(el.Style, defaultStyle)
		if el.ID == selected {
			style = style.Reverse(true)
		}

		gr := uniseg.NewGraphemes(el.Text)
		currentX := cellX
		for gr.Next() {
			clusterWidth := gr.Width()
			if currentX >= width {
				break // Rest of the text is off the right edge
			}

			runes := gr.Runes()
			if currentX >= 0 && len(runes) > 0 {
				mainRune := runes[0]
				var combiningRunes []rune
				if len(runes) > 1 {
					combiningRunes = runes[1:]
				}
				tuiManager.screen.SetContent(currentX, cellY, mainRune, combiningRunes, style)
				// Fill remaining cells for wide characters
				for cw := 1; cw < clusterWidth; cw++ {
					fillX := currentX + cw
					if fillX < width {
						tuiManager.screen.SetContent(fillX, cellY, ' ', nil, style)
					}
				}
			}

			currentX += clusterWidth // Advance by the visual width
		}
	}
}

// HitTest returns the topmost element whose rendered text covers the
// given cell, walking the document back to front so that overlap
// resolves to the element painted last.
func HitTest(editor *core.Editor, x, y, width, height, statusBarHeight int) (document.ID, bool) {
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 || y < 0 || y >= viewHeight {
		return "", false
	}

	canvas := editor.CanvasSize()
	elements := editor.Elements()
	for i := len(elements) - 1; i >= 0; i-- {
		el := elements[i]
		cellX, cellY := CanvasCell(el.Pos, canvas, width, viewHeight)
		if y != cellY {
			continue
		}
		textWidth := uniseg.StringWidth(el.Text)
		if textWidth < 1 {
			textWidth = 1
		}
		if x >= cellX && x < cellX+textWidth {
			return el.ID, true
		}
	}
	return "", false
}
