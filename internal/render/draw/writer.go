// Package draw implements the per-row drawing primitives: the cell
// writer, the clipped/expanded/overflow text writes, and the
// fixed-width field renderers. Every operation returns a boolean
// "viewport exhausted" signal; budget exhaustion is the normal way a
// row stops drawing, never an error.
package draw

import (
	"strings"

	gdenc "github.com/gdamore/encoding"
	"github.com/gdamore/tcell/v2"
	textenc "golang.org/x/text/encoding"

	"github.com/dshills/revgrid/internal/config"
	"github.com/dshills/revgrid/internal/render/backend"
	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/text"
	"github.com/dshills/revgrid/internal/theme"
)

// stagingSize bounds formatted text and tab-expansion chunks.
const stagingSize = 1024

// Writer writes attributed cells into one row of a surface. It owns
// the per-row cursor state: the virtual column, the last-applied
// attribute class, and the selected-row lock. The orchestrator calls
// BeginRow before drawing each row; the column cursor never moves
// backwards within a row.
type Writer struct {
	surface backend.Surface
	theme   *theme.Theme
	opts    *config.Options

	encoder *textenc.Encoder
	decoder *textenc.Decoder

	width int // viewport width in cells
	skip  int // horizontal scroll offset: virtual cells left of the viewport
	y     int // screen row being drawn

	col      int // virtual cursor, 0-based from the row start
	curtype  core.Class
	style    tcell.Style
	selected bool
}

// NewWriter creates a writer over the given surface and theme.
func NewWriter(surface backend.Surface, th *theme.Theme) *Writer {
	opts := config.Default()
	w := &Writer{surface: surface, theme: th}
	w.SetOptions(&opts)
	return w
}

// SetOptions installs the option snapshot consulted during drawing
// and resolves the output encoding, if one is configured.
func (w *Writer) SetOptions(opts *config.Options) {
	w.opts = opts
	w.encoder, w.decoder = nil, nil
	if enc := lookupEncoding(opts.Encoding); enc != nil {
		w.encoder = enc.NewEncoder()
		w.decoder = enc.NewDecoder()
	}
}

// BeginRow resets the per-row state. A selected row is drawn with
// the cursor attribute for its entire width; per-field attribute
// switches are suppressed until the next BeginRow.
func (w *Writer) BeginRow(y, width, skip int, selected bool) {
	w.y = y
	w.width = width
	w.skip = skip
	w.col = 0
	w.curtype = core.ClassNone
	w.style = w.theme.Style(core.ClassDefault)
	w.selected = false
	if selected {
		w.setAttr(core.ClassCursor)
		w.selected = true
	}
}

// Col returns the current virtual column.
func (w *Writer) Col() int {
	return w.col
}

// MaxLen returns the remaining cell budget, counting cells still to
// be skipped for horizontal scrolling.
func (w *Writer) MaxLen() int {
	return w.width + w.skip - w.col
}

// Exhausted reports whether the budget has reached zero.
func (w *Writer) Exhausted() bool {
	return w.MaxLen() <= 0
}

// setAttr switches the active attribute class. The switch is lazy:
// nothing happens when the class is already active, and a selected
// row keeps its cursor attribute for the whole width.
func (w *Writer) setAttr(class core.Class) {
	if !w.selected && w.curtype != class {
		w.style = w.theme.Style(class)
		w.curtype = class
	}
}

// put writes one rune at a physical column using the active style.
func (w *Writer) put(x int, r rune) {
	if x < 0 || x >= w.width {
		return
	}
	cell := core.NewCell(r, w.style)
	w.surface.Put(x, w.y, cell)
	if cell.Width == 2 {
		w.surface.Put(x+1, w.y, core.ContinuationCell(w.style))
	}
}

// putString writes a string starting at a physical column, advancing
// by display widths.
func (w *Writer) putString(x int, s string) {
	for _, r := range s {
		width := core.RuneWidth(r)
		if width == 0 {
			continue
		}
		w.put(x, r)
		x += width
	}
}

// Chars writes up to maxLen cells of s in the given class. When the
// string is truncated and tilde is set, one overflow marker cell is
// appended in the delimiter class, within the same budget. The
// virtual cursor advances by the cells consumed, including any
// prefix skipped for horizontal scrolling.
func (w *Writer) Chars(class core.Class, s string, maxLen int, tilde bool) bool {
	if maxLen <= 0 {
		return w.Exhausted()
	}

	skip := 0
	if w.skip > w.col {
		skip = w.skip - w.col
	}

	out, cells, trimmed := text.Fit(s, skip, maxLen, w.opts.TabSize)
	if trimmed && tilde {
		out, cells, _ = text.Fit(s, skip, maxLen-1, w.opts.TabSize)
	}

	out = w.convert(out)

	w.setAttr(class)
	if out != "" || cells > 0 {
		w.putString(w.col+skip-w.skip, out)
		if trimmed && tilde {
			w.setAttr(core.ClassDelimiter)
			w.put(w.col+cells-w.skip, '~')
			cells++
		}
	}

	w.col += cells
	return w.Exhausted()
}

// spaceChunk bounds each padding write.
const spaceChunk = "                    "

// Space writes padding in the given class, clamped to max cells.
func (w *Writer) Space(class core.Class, max, spaces int) bool {
	if spaces > max {
		spaces = max
	}
	for spaces > 0 {
		n := spaces
		if n > len(spaceChunk) {
			n = len(spaceChunk)
		}
		if w.Chars(class, spaceChunk[:n], n, false) {
			return true
		}
		spaces -= n
	}
	return w.Exhausted()
}

// convert applies the configured output encoding to the substring
// actually being written. Width math performed before the call stays
// valid because unmapped runes are replaced, never dropped.
func (w *Writer) convert(s string) string {
	if w.encoder == nil || s == "" {
		return s
	}
	encoded, err := w.encoder.String(s)
	if err != nil {
		return s
	}
	decoded, err := w.decoder.String(encoded)
	if err != nil {
		return s
	}
	return decoded
}

// lookupEncoding resolves an output encoding name. Unknown names
// fall back to UTF-8 passthrough.
func lookupEncoding(name string) textenc.Encoding {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil
	case "ascii", "us-ascii":
		return gdenc.ASCII
	case "iso-8859-1", "latin-1", "latin1":
		return gdenc.ISO8859_1
	case "ebcdic":
		return gdenc.EBCDIC
	default:
		return nil
	}
}
