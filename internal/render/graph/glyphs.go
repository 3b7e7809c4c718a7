package graph

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/draw"
)

// GlyphSet maps topology symbols to terminal glyphs. Every symbol is
// two cells wide: a connector cell joining the previous lane, then
// the lane glyph. The leading variant, used for the first symbol of
// a row, omits the connector cell.
type GlyphSet interface {
	draw(w *draw.Writer, class core.Class, sym Symbol, first bool) bool
}

// Sets returns the glyph backends in graph-mode order: ASCII,
// line-drawing, wide UTF-8.
func Sets() [3]GlyphSet {
	return [3]GlyphSet{asciiSet{}, lineSet{}, utf8Set{}}
}

// asciiSet draws the graph with plain ASCII text.
type asciiSet struct{}

var asciiGlyphs = [...]struct{ full, lead string }{
	ShapeBlank:       {"  ", " "},
	ShapeBranch:      {" |", "|"},
	ShapeCommit:      {" *", "*"},
	ShapeMergeCommit: {"-*", "*"},
	ShapeMerge:       {"-'", "'"},
	ShapeFork:        {"-.", "."},
	ShapeCross:       {"-|", "|"},
}

func (asciiSet) draw(w *draw.Writer, class core.Class, sym Symbol, first bool) bool {
	g := asciiGlyphs[sym.Shape]
	if first {
		return w.Text(class, g.lead)
	}
	return w.Text(class, g.full)
}

// lineSet draws the graph with terminal line-drawing characters
// through the glyph-array path, which keeps them intact on the
// cursor row.
type lineSet struct{}

var lineGlyphs = [...][2]rune{
	ShapeBlank:       {' ', ' '},
	ShapeBranch:      {' ', tcell.RuneVLine},
	ShapeCommit:      {' ', tcell.RuneDiamond},
	ShapeMergeCommit: {tcell.RuneHLine, tcell.RuneDiamond},
	ShapeMerge:       {tcell.RuneHLine, tcell.RuneLRCorner},
	ShapeFork:        {tcell.RuneHLine, tcell.RuneURCorner},
	ShapeCross:       {tcell.RuneHLine, tcell.RunePlus},
}

func (lineSet) draw(w *draw.Writer, class core.Class, sym Symbol, first bool) bool {
	g := lineGlyphs[sym.Shape]
	if first {
		return w.Graphic(class, g[1:], false)
	}
	return w.Graphic(class, g[:], false)
}

// utf8Set draws the graph with Unicode branch glyphs.
type utf8Set struct{}

var utf8Glyphs = [...]struct{ full, lead string }{
	ShapeBlank:       {"  ", " "},
	ShapeBranch:      {" │", "│"},
	ShapeCommit:      {" ●", "●"},
	ShapeMergeCommit: {"─◉", "◉"},
	ShapeMerge:       {"─╯", "╯"},
	ShapeFork:        {"─╮", "╮"},
	ShapeCross:       {"─┼", "┼"},
}

func (utf8Set) draw(w *draw.Writer, class core.Class, sym Symbol, first bool) bool {
	g := utf8Glyphs[sym.Shape]
	if first {
		return w.Text(class, g.lead)
	}
	return w.Text(class, g.full)
}
