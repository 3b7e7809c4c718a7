// Package theme resolves attribute classes to terminal styles. A
// theme is a fixed table indexed by class; the built-in default can
// be overridden per class from a JSON theme file.
package theme

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/revgrid/internal/render/core"
)

// Theme maps attribute classes to terminal styles.
type Theme struct {
	styles [32]tcell.Style
}

// Style returns the style for the given class.
func (t *Theme) Style(c core.Class) tcell.Style {
	if int(c) >= len(t.styles) {
		return tcell.StyleDefault
	}
	return t.styles[c]
}

// Set overrides the style for the given class.
func (t *Theme) Set(c core.Class, style tcell.Style) {
	if int(c) < len(t.styles) {
		t.styles[c] = style
	}
}

// Default returns the built-in theme.
func Default() *Theme {
	t := &Theme{}
	def := tcell.StyleDefault
	for i := range t.styles {
		t.styles[i] = def
	}

	t.Set(core.ClassCursor, def.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true))
	t.Set(core.ClassDelimiter, def.Foreground(tcell.ColorPurple))
	t.Set(core.ClassOverflow, def.Foreground(Dim(tcell.ColorWhite)))
	t.Set(core.ClassLineNumber, def.Foreground(tcell.ColorTeal))
	t.Set(core.ClassDate, def.Foreground(tcell.ColorBlue))
	t.Set(core.ClassAuthor, def.Foreground(tcell.ColorGreen))
	t.Set(core.ClassID, def.Foreground(tcell.ColorPurple))
	t.Set(core.ClassMode, def.Foreground(tcell.ColorOlive))
	t.Set(core.ClassFileSize, def.Foreground(tcell.ColorTeal))
	t.Set(core.ClassDirectory, def.Foreground(tcell.ColorOlive))

	t.Set(core.ClassRefHead, def.Foreground(tcell.ColorAqua).Bold(true))
	t.Set(core.ClassRefBranch, def.Foreground(tcell.ColorGreen))
	t.Set(core.ClassRefTracked, def.Foreground(tcell.ColorAqua))
	t.Set(core.ClassRefRemote, def.Foreground(tcell.ColorYellow))
	t.Set(core.ClassRefTag, def.Foreground(tcell.ColorFuchsia))
	t.Set(core.ClassRefLocalTag, def.Foreground(tcell.ColorFuchsia))
	t.Set(core.ClassRefReplace, def.Foreground(tcell.ColorMaroon))
	t.Set(core.ClassRefStash, def.Foreground(tcell.ColorFuchsia))

	t.Set(core.ClassGraphCommit, def.Foreground(tcell.ColorTeal))
	palette := []tcell.Color{
		tcell.ColorMaroon, tcell.ColorOlive, tcell.ColorGreen,
		tcell.ColorTeal, tcell.ColorNavy, tcell.ColorPurple, tcell.ColorSilver,
	}
	for i, color := range palette {
		t.Set(core.ClassPalette0+core.Class(i), def.Foreground(color))
	}
	return t
}

// Dim returns a darkened variant of a color, used to derive muted
// classes like the overflow marker from their base color.
func Dim(c tcell.Color) tcell.Color {
	r, g, b := c.TrueColor().RGB()
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := base.Hsv()
	dimmed := colorful.Hsv(h, s, v*0.6)
	return tcell.NewRGBColor(
		int32(math.Round(dimmed.R*255)),
		int32(math.Round(dimmed.G*255)),
		int32(math.Round(dimmed.B*255)),
	)
}

// AutoPalette generates n evenly-spaced branch colors. Hues are
// spread around the wheel at constant saturation and value so
// adjacent branch lanes stay distinguishable.
func AutoPalette(n int) []tcell.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]tcell.Color, n)
	for i := 0; i < n; i++ {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.65, 0.9)
		colors[i] = tcell.NewRGBColor(
			int32(math.Round(c.R*255)),
			int32(math.Round(c.G*255)),
			int32(math.Round(c.B*255)),
		)
	}
	return colors
}
