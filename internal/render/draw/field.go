package draw

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/revgrid/internal/config"
	"github.com/dshills/revgrid/internal/format"
	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/text"
)

// Align selects field content alignment.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// Field draws one fixed-width column. width is the cell budget
// including one trailing separator cell, so the effective content
// width is width-1 and the cursor lands exactly width cells past the
// field start regardless of content length. ok=false stands for an
// absent value and draws pure padding of the full width.
func (w *Writer) Field(class core.Class, s string, ok bool, width int, align Align, trim bool) bool {
	max := w.MaxLen()
	if max > width {
		max = width
	}
	start := w.col

	if !ok {
		return w.Space(class, max, max)
	}

	if align == AlignRight {
		textlen := text.WidthMax(s, max)
		leftpad := max - textlen - 1
		if leftpad > 0 {
			if w.Space(class, leftpad, leftpad) {
				return true
			}
			max -= leftpad
			start += leftpad
		}
	}

	return w.Chars(class, s, max-1, trim) ||
		w.Space(core.ClassDefault, max-(w.col-start), max)
}

// Date draws the date column. A zero width derives the column width
// from the configured date style. Returns false without drawing when
// dates are disabled.
func (w *Writer) Date(t time.Time, width int) bool {
	if w.opts.ShowDate == format.DateNo {
		return false
	}
	if width == 0 {
		width = w.opts.ShowDate.Width() + 1
	}
	return w.Field(core.ClassDate, format.Date(t, w.opts.ShowDate), !t.IsZero(), width, AlignLeft, false)
}

// Author draws the author column, shortening the name when the
// column is too narrow for the full form.
func (w *Writer) Author(ident *format.Ident, width int) bool {
	if w.opts.ShowAuthor == format.AuthorNo {
		return false
	}
	trim := format.AuthorTrim(width - 1)
	name := format.Author(ident, w.opts.ShowAuthor, width-1)
	return w.Field(core.ClassAuthor, name, ident != nil, width, AlignLeft, trim)
}

// IDCustom draws a commit id column in an explicit class.
func (w *Writer) IDCustom(class core.Class, id string, width int) bool {
	return w.Field(class, id, id != "", width, AlignLeft, false)
}

// ID draws the commit id column. A zero width falls back to the
// configured id width.
func (w *Writer) ID(id string, width int) bool {
	if !w.opts.ShowID {
		return false
	}
	if width == 0 {
		width = w.opts.IDWidth + 1
	}
	return w.IDCustom(core.ClassID, id, width)
}

// Filename draws the filename column. The mode bits only select the
// directory or file attribute class. autoEnabled gates drawing when
// the filename display mode is auto.
func (w *Writer) Filename(name string, autoEnabled bool, mode uint32, width int) bool {
	switch w.opts.ShowName {
	case config.FilenameNo:
		return false
	case config.FilenameAuto:
		if !autoEnabled {
			return false
		}
	}

	class := core.ClassFile
	if format.IsDir(mode) {
		class = core.ClassDirectory
	}
	trim := name != "" && text.Width(name) >= width
	return w.Field(class, name, name != "", width, AlignLeft, trim)
}

// FileSize draws the file-size column right-aligned. pad suppresses
// the value and draws blank padding, used for directory rows.
func (w *Writer) FileSize(size int64, width int, pad bool) bool {
	if width == 0 || w.opts.ShowSize == format.SizeNo {
		return false
	}
	value := ""
	if !pad {
		value = format.FileSize(size, w.opts.ShowSize)
	}
	return w.Field(core.ClassFileSize, value, !pad, width, AlignRight, false)
}

// Mode draws the permission-string column.
func (w *Writer) Mode(mode uint32) bool {
	return w.Field(core.ClassMode, format.Mode(mode), true, format.ModeWidth+1, AlignLeft, false)
}

// LineNumber draws the line-number column with sparse labeling:
// digits appear on the first row and on every interval'th row, with
// blank padding of identical width otherwise. The vertical separator
// glyph follows on every row.
func (w *Writer) LineNumber(lineno, interval, digits int) bool {
	if !w.opts.ShowLineNumbers {
		return false
	}
	if digits < 3 {
		digits = 3
	}
	max := w.MaxLen()
	if max > digits {
		max = digits
	}

	number := ""
	if lineno == 1 || lineno%interval == 0 {
		number = fmt.Sprintf("%*d", digits, lineno)
	}
	if number != "" {
		w.Chars(core.ClassLineNumber, number, max, true)
	} else {
		w.Space(core.ClassLineNumber, max, digits)
	}

	separator := '|'
	if w.opts.LineGraphics != config.GraphASCII {
		separator = tcell.RuneVLine
	}
	return w.Graphic(core.ClassDefault, []rune{separator}, true)
}
