// internal/app/ui.go
package app

import (
	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/tui"
)

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	// Update status bar content before drawing it
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	statusBarHeight := a.cfg.Editor.StatusBarHeight

	logger.DebugTagf("draw", "drawEditor: screen %dx%d, status bar height %d", width, height, statusBarHeight)

	a.tuiManager.Clear()
	tui.DrawCanvas(a.tuiManager, a.editor, statusBarHeight)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetDocumentInfo(len(a.editor.Elements()))
	a.statusBar.SetHistoryInfo(a.editor.CanUndo(), a.editor.CanRedo())
	a.statusBar.SetStyleInfo(a.editor.StyleProfile().Describe())
	a.statusBar.SetDragging(a.editor.IsDragging())

	label := ""
	if el, ok := a.editor.SelectedElement(); ok {
		label = el.Text
	}
	a.statusBar.SetSelectionInfo(label)

	// While the prompt is open it owns the status line.
	if a.promptActive {
		a.statusBar.SetTemporaryMessage("text: %s", a.promptBuffer)
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
