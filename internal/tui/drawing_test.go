package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvee/placard/internal/core"
	"github.com/okvee/placard/internal/tui"
	"github.com/okvee/placard/internal/types"
)

var testCanvas = types.Size{Width: 800, Height: 600}

func newTestEditor(place types.Point) *core.Editor {
	ed := core.NewEditor(core.Options{CanvasSize: testCanvas})
	ed.SetPlacement(func(canvas types.Size) types.Point {
		return place
	})
	return ed
}

func TestCanvasCellProjection(t *testing.T) {
	x, y := tui.CanvasCell(types.Point{}, testCanvas, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = tui.CanvasCell(types.Point{X: 400, Y: 300}, testCanvas, 80, 24)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	// The far corner projects one past the last cell.
	x, y = tui.CanvasCell(types.Point{X: 800, Y: 600}, testCanvas, 80, 24)
	assert.Equal(t, 80, x)
	assert.Equal(t, 24, y)
}

func TestCanvasPointRoundTrip(t *testing.T) {
	p := tui.CanvasPoint(40, 12, testCanvas, 80, 24)
	assert.InDelta(t, 400, p.X, 0.001)
	assert.InDelta(t, 300, p.Y, 0.001)

	x, y := tui.CanvasCell(p, testCanvas, 80, 24)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)
}

func TestProjectionDegenerateInputs(t *testing.T) {
	x, y := tui.CanvasCell(types.Point{X: 10, Y: 10}, types.Size{}, 80, 24)
	assert.Zero(t, x)
	assert.Zero(t, y)

	assert.Equal(t, types.Point{}, tui.CanvasPoint(3, 4, testCanvas, 0, 0))
}

func TestHitTest(t *testing.T) {
	// An 80x25 screen with a one-row status bar leaves a 80x24 view,
	// so canvas point (400,300) lands on cell (40,12).
	ed := newTestEditor(types.Point{X: 400, Y: 300})
	id, err := ed.CreateElement("hello")
	require.NoError(t, err)

	got, ok := tui.HitTest(ed, 40, 12, 80, 25, 1)
	require.True(t, ok)
	assert.Equal(t, id, got)

	// "hello" spans five cells.
	got, ok = tui.HitTest(ed, 44, 12, 80, 25, 1)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = tui.HitTest(ed, 45, 12, 80, 25, 1)
	assert.False(t, ok)

	_, ok = tui.HitTest(ed, 40, 13, 80, 25, 1)
	assert.False(t, ok)

	// The status bar row is never a hit.
	_, ok = tui.HitTest(ed, 40, 24, 80, 25, 1)
	assert.False(t, ok)
}

func TestHitTestPrefersLastPainted(t *testing.T) {
	ed := newTestEditor(types.Point{X: 400, Y: 300})
	_, err := ed.CreateElement("below")
	require.NoError(t, err)
	top, err := ed.CreateElement("above")
	require.NoError(t, err)

	got, ok := tui.HitTest(ed, 40, 12, 80, 25, 1)
	require.True(t, ok)
	assert.Equal(t, top, got)
}
