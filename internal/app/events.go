// internal/app/events.go
package app

import (
	"github.com/okvee/placard/internal/event"
	"github.com/okvee/placard/internal/logger"
)

// handleDocumentChangedForStatus refreshes counts after any mutation
func (a *App) handleDocumentChangedForStatus(e event.Event) bool {
	a.statusBar.SetDocumentInfo(len(a.editor.Elements()))
	a.statusBar.SetHistoryInfo(a.editor.CanUndo(), a.editor.CanRedo())
	if data, ok := e.Data.(event.DocumentChangedData); ok {
		logger.DebugTagf("app", "document changed: %s", data.Reason)
	}
	return false // Not consumed
}

// handleSelectionChangedForStatus mirrors the selection into the status bar
func (a *App) handleSelectionChangedForStatus(e event.Event) bool {
	label := ""
	if el, ok := a.editor.SelectedElement(); ok {
		label = el.Text
	}
	a.statusBar.SetSelectionInfo(label)
	return false // Not consumed
}

// handleStyleChangedForStatus refreshes the style readout
func (a *App) handleStyleChangedForStatus(e event.Event) bool {
	a.statusBar.SetStyleInfo(a.editor.StyleProfile().Describe())
	return false // Not consumed
}

// handleDragStartedForStatus turns on the drag indicator
func (a *App) handleDragStartedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.DragStartedData); ok {
		logger.DebugTagf("app", "drag started on %s", data.ID)
	}
	a.statusBar.SetDragging(true)
	return false // Not consumed
}

// handleDragEndedForStatus turns off the drag indicator
func (a *App) handleDragEndedForStatus(e event.Event) bool {
	a.statusBar.SetDragging(false)
	return false // Not consumed
}
