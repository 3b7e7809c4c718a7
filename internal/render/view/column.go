package view

import (
	"github.com/dshills/revgrid/internal/format"
	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/draw"
)

// Column is one entry of a view's column schema. The set of
// implementations is closed: the orchestrator dispatches on them in
// schema order and each variant carries exactly the per-column
// configuration it needs. Width fields are schema widths in cells
// including the trailing separator; zero means resolved at layout
// time.
type Column interface {
	// draw renders the column for one row. width is the resolved
	// layout width. Returns true when the viewport is exhausted.
	draw(v *View, ln *Line, data *RowData, lineno, width int) bool

	// schemaWidth returns the configured width, 0 for flexible.
	schemaWidth() int
}

// DateColumn shows the commit or file date.
type DateColumn struct{ Width int }

func (c DateColumn) schemaWidth() int { return c.Width }

func (c DateColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	return v.writer.Date(data.Date, width)
}

// AuthorColumn shows the author identity. An author-width option
// overrides the resolved width.
type AuthorColumn struct{ Width int }

func (c AuthorColumn) schemaWidth() int { return c.Width }

func (c AuthorColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	if v.opts.AuthorWidth > 0 {
		width = v.opts.AuthorWidth
	}
	return v.writer.Author(data.Author, width)
}

// RefColumn shows a single ref name attributed by its kind.
type RefColumn struct{ Width int }

func (c RefColumn) schemaWidth() int { return c.Width }

func (c RefColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	class := core.ClassDefault
	name := ""
	ok := data.Ref != nil
	if ok {
		name = data.Ref.Name
		if data.Ref.Valid {
			class = data.Ref.Kind.Class()
		}
	}
	return v.writer.Field(class, name, ok, width, draw.AlignLeft, false)
}

// IDColumn shows the commit id. An id-width option supplies the
// width when the schema leaves it flexible.
type IDColumn struct{ Width int }

func (c IDColumn) schemaWidth() int { return c.Width }

func (c IDColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	return v.writer.ID(data.ID, width)
}

// LineNumberColumn shows sparse line numbers with a separator rule.
type LineNumberColumn struct{}

func (c LineNumberColumn) schemaWidth() int { return 0 }

func (c LineNumberColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	return v.writer.LineNumber(v.Pos.Offset+lineno+1, v.opts.LineNumberInterval, v.digits)
}

// ModeColumn shows the file permission string.
type ModeColumn struct{}

func (c ModeColumn) schemaWidth() int { return 0 }

func (c ModeColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	var mode uint32
	if data.Mode != nil {
		mode = *data.Mode
	}
	return v.writer.Mode(mode)
}

// FileSizeColumn shows the file size, blanked for directories. Size
// suppression is driven by the mode flag, not by a missing size, so
// a directory row with a stale size value still renders blank.
type FileSizeColumn struct{ Width int }

func (c FileSizeColumn) schemaWidth() int { return c.Width }

func (c FileSizeColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	pad := data.Mode == nil || format.IsDir(*data.Mode)
	var size int64
	if data.FileSize != nil {
		size = *data.FileSize
	}
	return v.writer.FileSize(size, width, pad)
}

// CommitTitleColumn shows the revision graph, the row's refs, and
// the commit title as overflow-aware free text.
type CommitTitleColumn struct{}

func (c CommitTitleColumn) schemaWidth() int { return 0 }

func (c CommitTitleColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	if len(data.Graph) > 0 && v.graph.Draw(v.writer, data.Graph) {
		return true
	}
	if len(data.Refs) > 0 && v.drawRefs(data.Refs) {
		return true
	}
	return v.writer.TextOverflow(core.ClassDefault, data.CommitTitle,
		v.opts.TitleOverflow > 0, v.opts.TitleOverflow)
}

// FileNameColumn shows the filename. A filename-width option
// overrides the resolved width.
type FileNameColumn struct{ Width int }

func (c FileNameColumn) schemaWidth() int { return c.Width }

func (c FileNameColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	if v.opts.FilenameWidth > 0 {
		width = v.opts.FilenameWidth
	}
	var mode uint32
	if data.Mode != nil {
		mode = *data.Mode
	}
	return v.writer.Filename(data.FileName, data.FileNameAuto, mode, width)
}

// TextColumn shows free text in the row's own class.
type TextColumn struct{}

func (c TextColumn) schemaWidth() int { return 0 }

func (c TextColumn) draw(v *View, ln *Line, data *RowData, lineno, width int) bool {
	return v.writer.Text(ln.Type, data.Text)
}

// drawRefs draws each ref as "[name]" in its kind's class followed
// by a separating space.
func (v *View) drawRefs(refs []*Ref) bool {
	if !v.opts.ShowRefs {
		return false
	}
	for _, ref := range refs {
		class := core.ClassDefault
		if ref.Valid {
			class = ref.Kind.Class()
		}
		if v.writer.Formatted(class, "[%s]", ref.Name) {
			return true
		}
		if v.writer.Text(core.ClassDefault, " ") {
			return true
		}
	}
	return false
}
