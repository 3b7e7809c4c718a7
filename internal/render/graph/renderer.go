package graph

import (
	"fmt"

	"github.com/dshills/revgrid/internal/config"
	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/draw"
)

// palette maps branch color indexes to attribute classes.
var palette = [...]core.Class{
	core.ClassPalette0,
	core.ClassPalette1,
	core.ClassPalette2,
	core.ClassPalette3,
	core.ClassPalette4,
	core.ClassPalette5,
	core.ClassPalette6,
}

// PaletteSize is the number of branch color lanes.
const PaletteSize = len(palette)

// colorClass picks the attribute class for a symbol. A commit node
// always uses the commit class; anything else indexes the palette.
// An index outside the palette is a contract violation by the
// topology collaborator.
func colorClass(sym Symbol) core.Class {
	if sym.IsCommit() {
		return core.ClassGraphCommit
	}
	if int(sym.Color) >= len(palette) {
		panic(fmt.Sprintf("graph: color index %d outside palette", sym.Color))
	}
	return palette[sym.Color]
}

// Renderer draws rows of graph symbols with a glyph backend fixed at
// construction, so the backend choice is never re-checked per symbol.
type Renderer struct {
	set GlyphSet
}

// NewRenderer creates a renderer for the configured graph mode.
func NewRenderer(mode config.GraphMode) *Renderer {
	sets := Sets()
	return &Renderer{set: sets[mode]}
}

// Draw renders one row's symbol sequence followed by the separating
// space. The first symbol uses the leading glyph variant.
func (r *Renderer) Draw(w *draw.Writer, symbols []Symbol) bool {
	for i, sym := range symbols {
		if r.set.draw(w, colorClass(sym), sym, i == 0) {
			return true
		}
	}
	return w.Text(core.ClassDefault, " ")
}
