// internal/app/commands.go
package app

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/okvee/placard/internal/config"
	"github.com/okvee/placard/internal/event"
	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/tui"
)

// colorPalette is the cycle order for the 'c' command.
var colorPalette = []string{
	"#000000", "#e11d48", "#2563eb", "#16a34a", "#d97706", "#7c3aed",
}

// fontFamilies is the cycle order for the 'f' command. Only families
// the PNG export can map to a Go font are offered.
var fontFamilies = []string{"sans-serif", "mono"}

// handleKeyEvent routes a key press to the prompt or the command map
// and reports whether the screen needs redrawing.
func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	if a.promptActive {
		return a.handlePromptKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.requestQuit()
		return false
	case tcell.KeyRune:
		return a.handleCommandRune(ev.Rune())
	}
	return false
}

// handleCommandRune executes a single-key command.
func (a *App) handleCommandRune(r rune) bool {
	switch r {
	case 'q':
		a.requestQuit()
		return false
	case 'a':
		a.promptActive = true
		a.promptBuffer = ""
		return true
	case 'b':
		a.editor.ToggleStyle("weight")
		return true
	case 'i':
		a.editor.ToggleStyle("italic")
		return true
	case 'u':
		a.editor.ToggleStyle("underline")
		return true
	case '+', '=':
		a.adjustFontSize(+2)
		return true
	case '-', '_':
		a.adjustFontSize(-2)
		return true
	case 'c':
		a.cycleColor()
		return true
	case 'f':
		a.cycleFamily()
		return true
	case 'z':
		if _, ok := a.editor.Undo(); !ok {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
		return true
	case 'Z':
		if _, ok := a.editor.Redo(); !ok {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}
		return true
	case 'n':
		a.editor.NewSession()
		a.statusBar.SetTemporaryMessage("New canvas")
		return true
	case 'p':
		a.exportPNG()
		return true
	case 'y':
		a.copyToClipboard()
		return true
	}
	return false
}

// handlePromptKey feeds a key press into the add-label prompt.
func (a *App) handlePromptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.promptActive = false
		a.promptBuffer = ""
		a.statusBar.ResetTemporaryMessage()
		return true

	case tcell.KeyEnter:
		text := a.promptBuffer
		a.promptActive = false
		a.promptBuffer = ""
		a.statusBar.ResetTemporaryMessage()
		if _, err := a.editor.CreateElement(text); err != nil {
			a.statusBar.SetTemporaryMessage("Cannot add label: %v", err)
		}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.promptBuffer != "" {
			runes := []rune(a.promptBuffer)
			a.promptBuffer = string(runes[:len(runes)-1])
		}
		return true

	case tcell.KeyRune:
		a.promptBuffer += string(ev.Rune())
		return true
	}
	return false
}

// handleMouseEvent drives the drag gesture and pointer commands.
// The editor's drag state doubles as the press/release edge detector:
// a held primary button either begins or continues a gesture, and
// anything else while dragging ends it.
func (a *App) handleMouseEvent(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	width, height := a.tuiManager.Size()
	statusBarHeight := a.cfg.Editor.StatusBarHeight
	pointer := tui.CanvasPoint(x, y, a.editor.CanvasSize(), width, height-statusBarHeight)

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.adjustFontSize(+1)
		return true

	case buttons&tcell.WheelDown != 0:
		a.adjustFontSize(-1)
		return true

	case buttons&tcell.ButtonPrimary != 0:
		if a.editor.IsDragging() {
			return a.editor.DragTo(pointer)
		}
		if id, ok := tui.HitTest(a.editor, x, y, width, height, statusBarHeight); ok {
			return a.editor.BeginDrag(id, pointer)
		}
		return false

	case buttons&tcell.ButtonSecondary != 0:
		if a.editor.IsDragging() {
			return a.editor.EndDrag()
		}
		if id, ok := tui.HitTest(a.editor, x, y, width, height, statusBarHeight); ok {
			if a.editor.DeleteElement(id) {
				a.statusBar.SetTemporaryMessage("Deleted label")
				return true
			}
		}
		return false

	default: // All buttons released
		if a.editor.IsDragging() {
			return a.editor.EndDrag()
		}
	}
	return false
}

// --- Commands ---

// adjustFontSize steps the profile's font size, clamped to stay
// positive so the setter never rejects it.
func (a *App) adjustFontSize(delta float64) {
	size := a.editor.StyleProfile().Snapshot().FontSize + delta
	if size < 1 {
		size = 1
	}
	a.editor.SetFontSize(size)
}

// cycleColor advances to the next palette color.
func (a *App) cycleColor() {
	a.paletteIndex = (a.paletteIndex + 1) % len(colorPalette)
	hex := colorPalette[a.paletteIndex]
	a.editor.SetColor(hex)
	a.statusBar.SetTemporaryMessage("Color %s", hex)
}

// cycleFamily advances to the next font family.
func (a *App) cycleFamily() {
	a.familyIndex = (a.familyIndex + 1) % len(fontFamilies)
	family := fontFamilies[a.familyIndex]
	a.editor.SetFontFamily(family)
	a.statusBar.SetTemporaryMessage("Font %s", family)
}

// exportPNG rasterizes the current document to the configured path.
func (a *App) exportPNG() {
	path := a.cfg.Editor.ExportPath
	if path == "" {
		path = config.DefaultExportFileName
	}
	if err := a.renderer.WritePNG(a.editor.Document(), path); err != nil {
		logger.Errorf("App: export failed: %v", err)
		a.statusBar.SetTemporaryMessage("Export failed: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Exported to %s", path)
}

// copyToClipboard writes every label's text, top to bottom, to the
// system clipboard.
func (a *App) copyToClipboard() {
	if !a.cfg.Editor.SystemClipboard {
		a.statusBar.SetTemporaryMessage("System clipboard is disabled")
		return
	}

	doc := a.editor.Document()
	if len(doc) == 0 {
		a.statusBar.SetTemporaryMessage("Nothing to copy")
		return
	}

	var b strings.Builder
	for i, el := range doc {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(el.Text)
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		logger.Warnf("App: clipboard write failed: %v", err)
		a.statusBar.SetTemporaryMessage("Clipboard unavailable: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Copied %d labels", len(doc))
}
