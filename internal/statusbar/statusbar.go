// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleDrag      tcell.Style // Style while a drag gesture is live
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleDrag:      tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	// Content fields (updated externally from editor state)
	elementCount int
	selection    string // Short label of the selected element, empty when none
	styleDesc    string // Current style profile, e.g. "sans-serif 16.0 #333333 bold"
	dragging     bool
	canUndo      bool
	canRedo      bool

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetDocumentInfo updates the element count shown in the status bar.
func (sb *StatusBar) SetDocumentInfo(count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.elementCount = count
}

// SetSelectionInfo updates the selection label. Pass empty to clear.
func (sb *StatusBar) SetSelectionInfo(label string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selection = label
}

// SetStyleInfo updates the displayed style profile description.
func (sb *StatusBar) SetStyleInfo(desc string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.styleDesc = desc
}

// SetHistoryInfo updates the undo/redo availability indicator.
func (sb *StatusBar) SetHistoryInfo(canUndo, canRedo bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canUndo = canUndo
	sb.canRedo = canRedo
}

// SetDragging toggles the drag indicator.
func (sb *StatusBar) SetDragging(dragging bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.dragging = dragging
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	// Assumes the lock is held by Draw.
	plural := "s"
	if sb.elementCount == 1 {
		plural = ""
	}

	selection := ""
	if sb.dragging && sb.selection != "" {
		selection = fmt.Sprintf(" -- dragging %q", sb.selection)
	} else if sb.selection != "" {
		selection = fmt.Sprintf(" -- %q", sb.selection)
	}

	history := ""
	switch {
	case sb.canUndo && sb.canRedo:
		history = " -- undo/redo"
	case sb.canUndo:
		history = " -- undo"
	case sb.canRedo:
		history = " -- redo"
	}

	return fmt.Sprintf("%d element%s%s -- %s%s",
		sb.elementCount, plural, selection, sb.styleDesc, history)
}

// Draw renders the status bar onto the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock() // Lock for potential modification of tempMessageTime
	// Clear expired temporary message *before* getting display text
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout

	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	// Determine style and text based on whether a temporary message is active
	var style tcell.Style
	var text string

	switch {
	case isTempMsgActive:
		text = sb.tempMessage
		style = sb.config.StyleMessage
	case sb.dragging:
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDrag
	default:
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}

	sb.mu.Unlock() // Unlock after accessing/modifying state

	// --- Actual Drawing ---
	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for width calculation
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}

		currentX += clusterWidth // Advance by the calculated visual width
	}
}
