package draw

import (
	"fmt"

	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/text"
)

// Text writes a string with tab expansion, clipping to the remaining
// budget with an overflow marker.
func (w *Writer) Text(class core.Class, s string) bool {
	return w.TextExpanded(class, s, w.MaxLen(), true)
}

// TextExpanded writes a string with tabs expanded to the configured
// tab stop, emitting in chunks bounded by the staging buffer size
// until the whole string is written or the budget is exhausted.
func (w *Writer) TextExpanded(class core.Class, s string, maxLen int, tilde bool) bool {
	start := w.col
	for {
		chunk, consumed := text.Expand(s, w.opts.TabSize, stagingSize)
		if w.Chars(class, chunk, maxLen-(w.col-start), tilde) {
			return true
		}
		s = s[consumed:]
		if s == "" {
			return w.Exhausted()
		}
	}
}

// TextOverflow writes free text that may exceed a configured overflow
// width. When on, the first overflow cells are written normally with
// no marker; whatever spills past that point is written in the
// overflow class so overlong fields stand out. When off, this is a
// plain Text call.
func (w *Writer) TextOverflow(class core.Class, s string, on bool, overflow int) bool {
	if on {
		max := w.MaxLen()
		if max > overflow {
			max = overflow
		}

		if w.TextExpanded(class, s, max, max < overflow) {
			return true
		}

		s = text.Skip(s, overflow, w.opts.TabSize)
		class = core.ClassOverflow
	}

	if s != "" && w.Text(class, s) {
		return true
	}
	return w.Exhausted()
}

// Formatted renders a format string into the bounded staging buffer
// and writes the result. A result too large for the staging buffer
// draws nothing; the call degrades to a budget check.
func (w *Writer) Formatted(class core.Class, format string, args ...any) bool {
	s := fmt.Sprintf(format, args...)
	if len(s) > stagingSize {
		return w.Exhausted()
	}
	return w.Text(class, s)
}

// Graphic writes a fixed array of single-cell glyphs directly,
// optionally followed by one separator cell. The separator is only
// drawn when budget remains and the horizontal scroll does not skip
// into its position, but it always consumes a cursor cell so column
// strides stay fixed.
func (w *Writer) Graphic(class core.Class, glyphs []rune, separator bool) bool {
	skip := 0
	if w.skip > w.col {
		skip = w.skip - w.col
	}
	max := w.MaxLen()
	size := len(glyphs)
	if size > max {
		size = max
	}

	w.setAttr(class)
	x := w.col + skip - w.skip
	for i := skip; i < size; i++ {
		w.put(x, glyphs[i])
		x++
	}

	w.col += size
	if separator {
		if size < max && skip <= size {
			w.put(w.col-w.skip, ' ')
		}
		w.col++
	}

	return w.Exhausted()
}
