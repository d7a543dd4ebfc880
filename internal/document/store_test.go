package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/types"
)

var testCanvas = types.Size{Width: 800, Height: 600}

func newTestStore() *document.Store {
	s := document.NewStore(testCanvas)
	s.SetPlacement(func(canvas types.Size) types.Point {
		return types.Point{X: 10, Y: 20}
	})
	return s
}

func testStyle() document.Style {
	return document.Style{
		FontFamily: "sans-serif",
		FontSize:   16,
		FontWeight: document.WeightNormal,
		FontStyle:  document.SlantNormal,
		Decoration: document.DecorationNone,
		Color:      "#000000",
	}
}

func TestStoreAdd(t *testing.T) {
	s := newTestStore()

	el, err := s.Add("Hello", testStyle())
	require.NoError(t, err)
	assert.NotEmpty(t, el.ID)
	assert.Equal(t, "Hello", el.Text)
	assert.Equal(t, types.Point{X: 10, Y: 20}, el.Pos)
	assert.Equal(t, testStyle(), el.Style)
	assert.Equal(t, 1, s.Len())
}

func TestStoreAddBlankText(t *testing.T) {
	s := newTestStore()

	_, err := s.Add("", testStyle())
	assert.ErrorIs(t, err, document.ErrEmptyText)

	_, err = s.Add("  \t\n ", testStyle())
	assert.ErrorIs(t, err, document.ErrEmptyText)

	assert.Equal(t, 0, s.Len())
}

func TestStoreAddUniqueIDs(t *testing.T) {
	s := newTestStore()

	seen := make(map[document.ID]bool)
	for i := 0; i < 100; i++ {
		el, err := s.Add("label", testStyle())
		require.NoError(t, err)
		assert.False(t, seen[el.ID], "id %s minted twice", el.ID)
		seen[el.ID] = true
	}
}

func TestStoreRemove(t *testing.T) {
	s := newTestStore()
	a, _ := s.Add("A", testStyle())
	b, _ := s.Add("B", testStyle())

	assert.True(t, s.Remove(a.ID))
	assert.Equal(t, 1, s.Len())
	_, found := s.Find(a.ID)
	assert.False(t, found)
	_, found = s.Find(b.ID)
	assert.True(t, found)

	// Removing again is a safe no-op
	assert.False(t, s.Remove(a.ID))
	assert.Equal(t, 1, s.Len())
}

func TestStoreRemoveClearsSelection(t *testing.T) {
	s := newTestStore()
	a, _ := s.Add("A", testStyle())
	b, _ := s.Add("B", testStyle())

	s.Select(a.ID)
	s.Remove(a.ID)
	assert.Empty(t, s.Selection())

	// Removing an unselected element leaves selection alone
	s.Select(b.ID)
	c, _ := s.Add("C", testStyle())
	s.Remove(c.ID)
	assert.Equal(t, b.ID, s.Selection())
}

func TestStoreSetPosition(t *testing.T) {
	s := newTestStore()
	el, _ := s.Add("A", testStyle())

	assert.True(t, s.SetPosition(el.ID, types.Point{X: 50, Y: 70}))
	got, _ := s.Find(el.ID)
	assert.Equal(t, types.Point{X: 50, Y: 70}, got.Pos)

	assert.False(t, s.SetPosition("missing", types.Point{X: 1, Y: 1}))
}

func TestStoreSelectUnknownClears(t *testing.T) {
	s := newTestStore()
	el, _ := s.Add("A", testStyle())

	got, ok := s.Select(el.ID)
	require.True(t, ok)
	assert.Equal(t, el.ID, got.ID)
	assert.Equal(t, el.ID, s.Selection())

	_, ok = s.Select("missing")
	assert.False(t, ok)
	assert.Empty(t, s.Selection())
}

func TestStoreSnapshotIndependent(t *testing.T) {
	s := newTestStore()
	el, _ := s.Add("A", testStyle())

	snap := s.Snapshot()
	require.Len(t, snap, 1)

	s.SetPosition(el.ID, types.Point{X: 99, Y: 99})
	assert.Equal(t, types.Point{X: 10, Y: 20}, snap[0].Pos, "snapshot must not alias live elements")

	snap[0].Text = "mutated"
	got, _ := s.Find(el.ID)
	assert.Equal(t, "A", got.Text)
}

func TestStoreRestore(t *testing.T) {
	s := newTestStore()
	a, _ := s.Add("A", testStyle())
	snap := s.Snapshot()

	s.Add("B", testStyle())
	s.Select(a.ID)

	s.Restore(snap)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, a.ID, s.Selection(), "selection survives when element still exists")

	// Restoring a document without the selected element clears selection
	s.Restore(document.Document{})
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Selection())
}

func TestStoreRestoreCopies(t *testing.T) {
	s := newTestStore()
	a, _ := s.Add("A", testStyle())
	snap := s.Snapshot()

	s.Restore(snap)
	s.SetPosition(a.ID, types.Point{X: 42, Y: 42})
	assert.Equal(t, types.Point{X: 10, Y: 20}, snap[0].Pos, "restore must not alias the source document")
}

func TestRandomPlacementWithinBounds(t *testing.T) {
	canvas := types.Size{Width: 300, Height: 200}
	for i := 0; i < 200; i++ {
		p := document.RandomPlacement(canvas)
		assert.True(t, canvas.Contains(p), "point %v outside canvas", p)
	}
}

func TestDocumentCloneDeep(t *testing.T) {
	doc := document.Document{
		{ID: document.NewID(), Text: "A", Pos: types.Point{X: 1, Y: 2}, Style: testStyle()},
		{ID: document.NewID(), Text: "B", Pos: types.Point{X: 3, Y: 4}, Style: testStyle()},
	}

	clone := doc.Clone()
	assert.Equal(t, doc, clone)

	clone[0].Pos = types.Point{X: 9, Y: 9}
	assert.Equal(t, types.Point{X: 1, Y: 2}, doc[0].Pos)

	empty := document.Document(nil).Clone()
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}
