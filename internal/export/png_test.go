package export_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/export"
	"github.com/okvee/placard/internal/types"
)

func testElement(text string, pos types.Point, st document.Style) *document.TextElement {
	return &document.TextElement{
		ID:    document.NewID(),
		Text:  text,
		Pos:   pos,
		Style: st,
	}
}

func boldUnderlined() document.Style {
	return document.Style{
		FontFamily: "sans-serif",
		FontSize:   24,
		FontWeight: document.WeightBold,
		FontStyle:  document.SlantNormal,
		Decoration: document.DecorationUnderline,
		Color:      "#000000",
	}
}

func TestRenderProducesCanvasSizedImage(t *testing.T) {
	r := export.NewRenderer(types.Size{Width: 200, Height: 100})
	doc := document.Document{
		testElement("Hello", types.Point{X: 20, Y: 30}, boldUnderlined()),
	}

	im, err := r.Render(doc)
	require.NoError(t, err)

	bounds := im.Bounds()
	assert.Equal(t, 200, bounds.Dx())
	assert.Equal(t, 100, bounds.Dy())

	// The glyphs must darken some pixels of the white background.
	dark := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !dark; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := im.At(x, y).RGBA()
			if cr < 0x8000 && cg < 0x8000 && cb < 0x8000 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark, "expected rendered text to darken some pixels")
}

func TestRenderEmptyDocumentIsBlank(t *testing.T) {
	r := export.NewRenderer(types.Size{Width: 40, Height: 40})

	im, err := r.Render(document.Document{})
	require.NoError(t, err)

	cr, cg, cb, _ := im.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), cr)
	assert.Equal(t, uint32(0xffff), cg)
	assert.Equal(t, uint32(0xffff), cb)
}

func TestRenderUnusableColorFallsBackToBlack(t *testing.T) {
	st := boldUnderlined()
	st.Color = "chartreuse"
	r := export.NewRenderer(types.Size{Width: 100, Height: 60})

	_, err := r.Render(document.Document{
		testElement("x", types.Point{X: 10, Y: 10}, st),
	})
	assert.NoError(t, err)
}

func TestRenderZeroCanvasFails(t *testing.T) {
	r := export.NewRenderer(types.Size{})
	_, err := r.Render(document.Document{})
	assert.Error(t, err)
}

func TestWritePNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.png")
	r := export.NewRenderer(types.Size{Width: 120, Height: 80})

	st := boldUnderlined()
	st.FontFamily = "mono"
	st.FontStyle = document.SlantItalic
	doc := document.Document{
		testElement("mixed", types.Point{X: 5, Y: 5}, st),
	}
	require.NoError(t, r.WritePNG(doc, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	im, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, im.Bounds().Dx())
	assert.Equal(t, 80, im.Bounds().Dy())
}
