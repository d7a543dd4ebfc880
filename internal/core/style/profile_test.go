package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okvee/placard/internal/core/style"
	"github.com/okvee/placard/internal/document"
)

func TestNewProfileFillsDefaults(t *testing.T) {
	p := style.NewProfile(document.Style{})

	snap := p.Snapshot()
	assert.Equal(t, style.DefaultFontFamily, snap.FontFamily)
	assert.Equal(t, style.DefaultFontSize, snap.FontSize)
	assert.Equal(t, document.WeightNormal, snap.FontWeight)
	assert.Equal(t, document.SlantNormal, snap.FontStyle)
	assert.Equal(t, document.DecorationNone, snap.Decoration)
	assert.Equal(t, style.DefaultColor, snap.Color)
}

func TestNewProfileSanitizesGarbage(t *testing.T) {
	p := style.NewProfile(document.Style{
		FontSize:   -3,
		FontWeight: "heavy",
		FontStyle:  "oblique",
		Decoration: "blink",
		Color:      "not-a-color",
	})

	snap := p.Snapshot()
	assert.Equal(t, style.DefaultFontSize, snap.FontSize)
	assert.Equal(t, document.WeightNormal, snap.FontWeight)
	assert.Equal(t, document.SlantNormal, snap.FontStyle)
	assert.Equal(t, document.DecorationNone, snap.Decoration)
	assert.Equal(t, style.DefaultColor, snap.Color)
}

func TestToggles(t *testing.T) {
	p := style.NewProfile(document.Style{})

	assert.Equal(t, document.WeightBold, p.ToggleWeight())
	assert.Equal(t, document.WeightNormal, p.ToggleWeight())

	assert.Equal(t, document.SlantItalic, p.ToggleItalic())
	assert.Equal(t, document.SlantNormal, p.ToggleItalic())

	assert.Equal(t, document.DecorationUnderline, p.ToggleUnderline())
	assert.Equal(t, document.DecorationNone, p.ToggleUnderline())
}

func TestTogglesFailClosed(t *testing.T) {
	p := style.NewProfile(document.Style{})

	// Unrecognized values can arrive via a patch; the next toggle must
	// land on the safe value, not an inverted garbage state.
	w := document.Weight("heavy")
	sl := document.Slant("oblique")
	d := document.Decoration("blink")
	p.Apply(style.Patch{FontWeight: &w, FontStyle: &sl, Decoration: &d})

	assert.Equal(t, document.WeightNormal, p.ToggleWeight())
	assert.Equal(t, document.SlantNormal, p.ToggleItalic())
	assert.Equal(t, document.DecorationNone, p.ToggleUnderline())
}

func TestSetters(t *testing.T) {
	p := style.NewProfile(document.Style{})

	p.SetFontFamily("mono")
	p.SetFontSize(24)
	p.SetColor("#ff8800")

	snap := p.Snapshot()
	assert.Equal(t, "mono", snap.FontFamily)
	assert.Equal(t, 24.0, snap.FontSize)
	assert.Equal(t, "#ff8800", snap.Color)
}

func TestSettersRejectBadValues(t *testing.T) {
	p := style.NewProfile(document.Style{})
	before := p.Snapshot()

	p.SetFontFamily("")
	p.SetFontSize(0)
	p.SetFontSize(-10)
	p.SetColor("red")
	p.SetColor("#12")

	assert.Equal(t, before, p.Snapshot())
}

func TestApplyPartialPatch(t *testing.T) {
	p := style.NewProfile(document.Style{})
	size := 30.0
	p.Apply(style.Patch{FontSize: &size})

	snap := p.Snapshot()
	assert.Equal(t, 30.0, snap.FontSize)
	assert.Equal(t, style.DefaultFontFamily, snap.FontFamily, "unset fields stay put")
	assert.Equal(t, style.DefaultColor, snap.Color)
}

func TestApplyValidatesLikeSetters(t *testing.T) {
	p := style.NewProfile(document.Style{})
	size := -1.0
	color := "bogus"
	p.Apply(style.Patch{FontSize: &size, Color: &color})

	snap := p.Snapshot()
	assert.Equal(t, style.DefaultFontSize, snap.FontSize)
	assert.Equal(t, style.DefaultColor, snap.Color)
}

func TestSnapshotIsCopy(t *testing.T) {
	p := style.NewProfile(document.Style{})
	snap := p.Snapshot()

	p.ToggleWeight()
	assert.Equal(t, document.WeightNormal, snap.FontWeight)
}

func TestDescribe(t *testing.T) {
	p := style.NewProfile(document.Style{})
	assert.Equal(t, "sans-serif 16.0 #000000", p.Describe())

	p.ToggleWeight()
	p.ToggleItalic()
	p.ToggleUnderline()
	assert.Equal(t, "sans-serif 16.0 #000000 bold italic underline", p.Describe())
}
