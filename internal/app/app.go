// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/okvee/placard/internal/config"
	"github.com/okvee/placard/internal/core"
	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/event"
	"github.com/okvee/placard/internal/export"
	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/statusbar"
	"github.com/okvee/placard/internal/tui"
	"github.com/okvee/placard/internal/types"
)

// App encapsulates the core components and main loop of the canvas.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	renderer     *export.Renderer

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}

	// Add-label prompt state; only the run loop goroutine touches it.
	promptActive bool
	promptBuffer string

	// Cycling positions for the color palette and font families
	paletteIndex int
	familyIndex  int
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config) (*App, error) {
	// --- Create Core Components ---
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	editor := core.NewEditor(core.Options{
		CanvasSize:   types.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		HistoryDepth: cfg.Canvas.HistoryDepth,
		InitialStyle: document.Style{
			FontSize: cfg.Style.FontSize,
			Color:    cfg.Style.Color,
		},
	})

	sbConfig := statusbar.DefaultConfig()
	sbConfig.MessageTimeout = config.MessageTimeout
	statusBar := statusbar.New(sbConfig)

	eventManager := event.NewManager()

	// Set event manager in editor so it can dispatch events
	editor.SetEventManager(eventManager)

	// --- Create App Instance ---
	appInstance := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		renderer:      export.NewRenderer(editor.CanvasSize()),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeDocumentChanged, appInstance.handleDocumentChangedForStatus)
	eventManager.Subscribe(event.TypeSelectionChanged, appInstance.handleSelectionChangedForStatus)
	eventManager.Subscribe(event.TypeStyleChanged, appInstance.handleStyleChangedForStatus)
	eventManager.Subscribe(event.TypeDragStarted, appInstance.handleDragStartedForStatus)
	eventManager.Subscribe(event.TypeDragEnded, appInstance.handleDragEndedForStatus)

	return appInstance, nil
}

// Run starts the application's main loop. Terminal events are pumped
// from their own goroutine; handling and drawing both happen here, so
// editor state is only ever touched from one goroutine.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	events := make(chan tcell.Event, 16)
	go a.pumpEvents(events)

	// Initial setup
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("placard - a add | drag to move | b/i/u style | z/Z undo/redo | p export | q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting placard.")
			return nil
		case ev := <-events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// pumpEvents forwards tcell events to the run loop. PollEvent returns
// nil once the screen is finalized, which ends the goroutine.
func (a *App) pumpEvents(events chan<- tcell.Event) {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// handleEvent processes one terminal event and reports whether the
// screen needs redrawing.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true

	case *tcell.EventKey:
		return a.handleKeyEvent(eventData)

	case *tcell.EventMouse:
		return a.handleMouseEvent(eventData)

	case *tcell.EventFocus:
		// Losing terminal focus mid-gesture counts as the pointer
		// leaving the canvas: the drag ends where it was.
		if !eventData.Focused && a.editor.IsDragging() {
			a.editor.PointerLeft()
			return true
		}
	}
	return false
}

// requestQuit signals the run loop to exit. Safe to call repeatedly.
func (a *App) requestQuit() {
	a.quitOnce.Do(func() {
		close(a.quit)
	})
}
