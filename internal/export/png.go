// internal/export/png.go

// Package export rasterizes the canvas document to PNG files using the
// Go font family. The terminal view can only approximate styles; the
// export is where font family, size and exact colors become visible.
package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/okvee/placard/internal/config"
	"github.com/okvee/placard/internal/document"
	"github.com/okvee/placard/internal/logger"
	"github.com/okvee/placard/internal/types"
)

// Renderer rasterizes documents onto a fixed-size canvas. Parsed fonts
// are cached per variant, so a Renderer is cheap to reuse across
// exports but is not safe for concurrent use.
type Renderer struct {
	canvas types.Size
	fonts  map[string]*truetype.Font
}

// NewRenderer creates a renderer for the given canvas size.
func NewRenderer(canvas types.Size) *Renderer {
	return &Renderer{
		canvas: canvas,
		fonts:  make(map[string]*truetype.Font),
	}
}

// variantFor picks the Go font variant matching the style. Any family
// other than mono falls back to the proportional face; the Go fonts
// ship no serif.
func variantFor(st document.Style) (string, []byte) {
	mono := st.FontFamily == "mono" || st.FontFamily == "monospace"
	bold := st.FontWeight == document.WeightBold
	italic := st.FontStyle == document.SlantItalic

	switch {
	case mono && bold && italic:
		return "gomonobolditalic", gomonobolditalic.TTF
	case mono && bold:
		return "gomonobold", gomonobold.TTF
	case mono && italic:
		return "gomonoitalic", gomonoitalic.TTF
	case mono:
		return "gomono", gomono.TTF
	case bold && italic:
		return "gobolditalic", gobolditalic.TTF
	case bold:
		return "gobold", gobold.TTF
	case italic:
		return "goitalic", goitalic.TTF
	default:
		return "goregular", goregular.TTF
	}
}

// font returns the parsed font for the style, parsing and caching the
// variant on first use.
func (r *Renderer) font(st document.Style) (*truetype.Font, error) {
	name, data := variantFor(st)
	if f, ok := r.fonts[name]; ok {
		return f, nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	r.fonts[name] = f
	return f, nil
}

// Render draws every element of the document onto a white background
// and returns the image.
func (r *Renderer) Render(doc document.Document) (image.Image, error) {
	width := int(r.canvas.Width)
	height := int(r.canvas.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cannot render canvas of size %gx%g", r.canvas.Width, r.canvas.Height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	for _, el := range doc {
		if err := r.drawElement(dc, el); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

// WritePNG renders the document and saves it to path.
func (r *Renderer) WritePNG(doc document.Document, path string) error {
	im, err := r.Render(doc)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, im); err != nil {
		return fmt.Errorf("failed to save PNG to %s: %w", path, err)
	}
	logger.InfoTagf("export", "wrote %d elements to %s", len(doc), path)
	return nil
}

// drawElement draws one label. The element position is its top-left
// corner; DrawString wants the baseline, so the face ascent bridges
// the two.
func (r *Renderer) drawElement(dc *gg.Context, el *document.TextElement) error {
	fnt, err := r.font(el.Style)
	if err != nil {
		return err
	}

	size := el.Style.FontSize
	if size <= 0 {
		size = config.DefaultFontSize
	}
	face := truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	col, err := colorful.Hex(el.Style.Color)
	if err != nil {
		logger.Warnf("export: element %s has unusable color %q, drawing black", el.ID, el.Style.Color)
		col = colorful.Color{}
	}
	dc.SetColor(col)

	ascent := float64(face.Metrics().Ascent) / 64
	x := el.Pos.X
	baseline := el.Pos.Y + ascent
	dc.DrawString(el.Text, x, baseline)

	if el.Style.Decoration == document.DecorationUnderline {
		textWidth, _ := dc.MeasureString(el.Text)
		offset := size * 0.1
		if offset < 1 {
			offset = 1
		}
		lineWidth := size / 16
		if lineWidth < 1 {
			lineWidth = 1
		}
		dc.SetLineWidth(lineWidth)
		dc.DrawLine(x, baseline+offset, x+textWidth, baseline+offset)
		dc.Stroke()
	}

	return nil
}
