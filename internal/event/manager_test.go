package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okvee/placard/internal/event"
)

func TestSubscribeAndDispatch(t *testing.T) {
	m := event.NewManager()

	var got []event.Event
	m.Subscribe(event.TypeDocumentChanged, func(e event.Event) bool {
		got = append(got, e)
		return false
	})

	m.Dispatch(event.TypeDocumentChanged, event.DocumentChangedData{Reason: "create"})

	assert.Len(t, got, 1)
	assert.Equal(t, event.TypeDocumentChanged, got[0].Type)
	data, ok := got[0].Data.(event.DocumentChangedData)
	assert.True(t, ok)
	assert.Equal(t, "create", data.Reason)
}

func TestDispatchReachesAllHandlers(t *testing.T) {
	m := event.NewManager()

	calls := 0
	for i := 0; i < 3; i++ {
		m.Subscribe(event.TypeAppQuit, func(event.Event) bool {
			calls++
			return false
		})
	}

	m.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	assert.Equal(t, 3, calls)
}

func TestDispatchToOtherTypeNotDelivered(t *testing.T) {
	m := event.NewManager()

	called := false
	m.Subscribe(event.TypeSelectionChanged, func(event.Event) bool {
		called = true
		return false
	})

	m.Dispatch(event.TypeDocumentChanged, nil)
	assert.False(t, called)
}

func TestDispatchWithoutHandlersIsSafe(t *testing.T) {
	m := event.NewManager()
	assert.NotPanics(t, func() {
		m.Dispatch(event.TypeDragEnded, event.DragEndedData{ID: "x"})
	})
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := event.NewManager()

	m.Subscribe(event.TypeAppReady, func(event.Event) bool {
		// Subscribing from inside a handler must not deadlock or panic.
		m.Subscribe(event.TypeAppReady, func(event.Event) bool { return false })
		return false
	})

	assert.NotPanics(t, func() {
		m.Dispatch(event.TypeAppReady, event.AppReadyData{})
	})
}
