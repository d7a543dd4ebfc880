// Package history keeps full-document snapshots for undo and redo.
//
// Snapshots trade memory for simplicity: no inverse operations are
// needed, and any mutation funneled through Commit is replayed with
// perfect fidelity. Documents are small (interactive label counts),
// so the O(document) cost per step is acceptable.
package history

import (
	"sync"

	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/logger"
)

// DefaultMaxDepth bounds the undo stack unless configured otherwise.
const DefaultMaxDepth = 100

// Engine handles the undo/redo snapshot stacks.
//
// The undo stack is ordered oldest first; index 0 is the initial
// document and the last entry always equals the current document.
// Both stacks push and pop at the end.
type Engine struct {
	undoStack []document.Document
	redoStack []document.Document
	maxDepth  int // 0 keeps every snapshot
	mutex     sync.Mutex
}

// NewEngine creates a history engine seeded with the initial document.
// maxDepth bounds the undo stack (oldest snapshots are evicted first);
// 0 keeps everything, negative values fall back to DefaultMaxDepth.
func NewEngine(initial document.Document, maxDepth int) *Engine {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Engine{
		undoStack: []document.Document{initial.Clone()},
		maxDepth:  maxDepth,
	}
}

// Commit appends an independent copy of doc as the new current state
// and clears the redo stack. Identical consecutive documents are still
// recorded as separate entries; callers rely on one entry per gesture.
func (e *Engine) Commit(doc document.Document) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.undoStack = append(e.undoStack, doc.Clone())
	e.redoStack = e.redoStack[:0]

	// Limit history size
	if e.maxDepth > 0 && len(e.undoStack) > e.maxDepth {
		// Drop the oldest snapshots (simple FIFO eviction)
		e.undoStack = e.undoStack[len(e.undoStack)-e.maxDepth:]
	}

	logger.Debugf("History: Committed snapshot. Depth: %d", len(e.undoStack))
}

// Undo steps back one snapshot and returns the document now in effect.
// With only the initial state on the stack it is a no-op: the current
// document is returned unchanged and ok is false.
//
// Returned snapshots are owned by the engine; callers must copy before
// mutating.
func (e *Engine) Undo() (doc document.Document, ok bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if len(e.undoStack) < 2 {
		logger.Debugf("History: Nothing to undo.")
		return e.undoStack[len(e.undoStack)-1], false
	}

	top := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, top)

	current := e.undoStack[len(e.undoStack)-1]
	logger.Debugf("History: Undo. Depth: %d, Redo: %d", len(e.undoStack), len(e.redoStack))
	return current, true
}

// Redo reapplies the most recently undone snapshot and returns it.
// With an empty redo stack it is a no-op returning the current state.
func (e *Engine) Redo() (doc document.Document, ok bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if len(e.redoStack) == 0 {
		logger.Debugf("History: Nothing to redo.")
		return e.undoStack[len(e.undoStack)-1], false
	}

	top := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, top)

	logger.Debugf("History: Redo. Depth: %d, Redo: %d", len(e.undoStack), len(e.redoStack))
	return top, true
}

// Current returns the snapshot the engine considers in effect.
func (e *Engine) Current() document.Document {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.undoStack[len(e.undoStack)-1]
}

// Clear resets the stacks to a single initial snapshot. Call this when
// starting a fresh session.
func (e *Engine) Clear(initial document.Document) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.undoStack = e.undoStack[:0]
	e.undoStack = append(e.undoStack, initial.Clone())
	e.redoStack = e.redoStack[:0]
	logger.Debugf("History: Cleared.")
}

// CanUndo returns true if a prior snapshot exists.
func (e *Engine) CanUndo() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return len(e.undoStack) > 1
}

// CanRedo returns true if an undone snapshot can be reapplied.
func (e *Engine) CanRedo() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return len(e.redoStack) > 0
}

// Depth returns the number of snapshots on the undo stack.
func (e *Engine) Depth() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return len(e.undoStack)
}

// RedoDepth returns the number of snapshots waiting for redo.
func (e *Engine) RedoDepth() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return len(e.redoStack)
}
