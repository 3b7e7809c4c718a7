package view

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/dshills/revgrid/internal/config"
	"github.com/dshills/revgrid/internal/format"
	"github.com/dshills/revgrid/internal/render/backend"
	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/draw"
	"github.com/dshills/revgrid/internal/render/graph"
	"github.com/dshills/revgrid/internal/render/text"
	"github.com/dshills/revgrid/internal/theme"
)

// Position is a view's scroll and cursor state.
type Position struct {
	// Offset is the index of the first visible row.
	Offset int

	// LineNo is the absolute index of the cursor row.
	LineNo int

	// Col is the horizontal scroll offset in cells.
	Col int
}

// View renders a window of rows from a source onto a surface using a
// fixed column schema. The application shell owns the view's
// lifetime and scroll state; the view owns layout and drawing.
type View struct {
	id      uuid.UUID
	surface backend.Surface
	store   *config.Store
	source  Source
	graph   *graph.Renderer
	writer  *draw.Writer

	width, height int

	// Pos is mutated freely by the shell between redraws.
	Pos Position

	columns   []Column
	widths    []int
	digits    int
	opts      config.Options
	layoutGen uint64
}

// New creates a view over the full surface. The graph glyph backend
// is fixed here for the lifetime of the view.
func New(surface backend.Surface, th *theme.Theme, store *config.Store, source Source, columns []Column) *View {
	width, height := surface.Size()
	v := &View{
		id:      uuid.New(),
		surface: surface,
		store:   store,
		source:  source,
		graph:   graph.NewRenderer(store.Snapshot().LineGraphics),
		writer:  draw.NewWriter(surface, th),
		width:   width,
		height:  height,
		columns: columns,
		widths:  make([]int, len(columns)),
	}
	v.relayout()
	return v
}

// ID returns the view's identity.
func (v *View) ID() uuid.UUID {
	return v.id
}

// Size returns the view dimensions.
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// Resize updates the view dimensions. The caller redraws afterwards.
func (v *View) Resize(width, height int) {
	v.width = width
	v.height = height
}

// LayoutStale reports whether options changed since the last layout
// pass, so shells can promote a dirty-only redraw to a full one.
func (v *View) LayoutStale() bool {
	return v.layoutGen != v.store.Generation()
}

// relayout resolves every column's width from the current options
// and the widest content in the source. It must complete before any
// row is drawn in the new layout.
func (v *View) relayout() {
	v.opts = v.store.Snapshot()
	v.writer.SetOptions(&v.opts)
	v.layoutGen = v.store.Generation()
	v.digits = len(strconv.Itoa(v.source.Count()))

	content := v.scanContent()
	for i, col := range v.columns {
		if w := col.schemaWidth(); w > 0 {
			v.widths[i] = w
			continue
		}
		switch col.(type) {
		case DateColumn:
			v.widths[i] = v.opts.ShowDate.Width() + 1
		case FileSizeColumn:
			v.widths[i] = format.SizeWidth + 1
		case AuthorColumn, RefColumn, FileNameColumn:
			v.widths[i] = content[i] + 1
		default:
			v.widths[i] = 0
		}
	}
}

// maxFlexWidth caps content-derived column widths.
const maxFlexWidth = 25

// scanContent measures the widest content of each flexible column
// across all rows.
func (v *View) scanContent() []int {
	widths := make([]int, len(v.columns))

	flexible := false
	for i, col := range v.columns {
		if col.schemaWidth() != 0 {
			continue
		}
		switch col.(type) {
		case AuthorColumn, RefColumn, FileNameColumn:
			flexible = true
			widths[i] = 1
		}
	}
	if !flexible {
		return widths
	}

	for index := 0; index < v.source.Count(); index++ {
		data, ok := v.source.RowData(index, v.source.Line(index))
		if !ok {
			continue
		}
		for i, col := range v.columns {
			if col.schemaWidth() != 0 {
				continue
			}
			value := ""
			switch col.(type) {
			case AuthorColumn:
				value = format.Author(data.Author, v.opts.ShowAuthor, maxFlexWidth)
			case RefColumn:
				if data.Ref != nil {
					value = data.Ref.Name
				}
			case FileNameColumn:
				value = data.FileName
			default:
				continue
			}
			if w := text.WidthMax(value, maxFlexWidth); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// DrawLine draws the row at the given screen position. It returns
// false when the position is past the last data row, which redraw
// loops use as their stop signal.
func (v *View) DrawLine(lineno int) bool {
	index := v.Pos.Offset + lineno
	if index >= v.source.Count() {
		return false
	}
	ln := v.source.Line(index)
	selected := index == v.Pos.LineNo

	if ln.ClearEOL {
		v.surface.ClearFrom(0, lineno)
	}
	ln.Selected = false
	ln.Dirty = false
	ln.ClearEOL = false

	v.writer.BeginRow(lineno, v.width, v.Pos.Col, selected)
	if selected {
		ln.Selected = true
		v.source.Select(index, ln)
	}

	drawn := v.drawColumns(ln, lineno)
	// The cursor row highlights its full width, not just the drawn
	// content.
	if selected && !v.writer.Exhausted() {
		v.writer.Space(core.ClassDefault, v.writer.MaxLen(), v.writer.MaxLen())
	}
	return drawn
}

// drawColumns dispatches the row to its column renderers in schema
// order, stopping at the first exhausted budget. Undrawn trailing
// columns are not an error.
func (v *View) drawColumns(ln *Line, lineno int) bool {
	data, ok := v.source.RowData(v.Pos.Offset+lineno, ln)
	if !ok {
		return true
	}
	for i, col := range v.columns {
		if col.draw(v, ln, data, lineno, v.widths[i]) {
			return true
		}
	}
	return true
}

// RedrawDirty redraws only the rows flagged dirty. The surface is
// flushed only when at least one row was actually redrawn.
func (v *View) RedrawDirty() {
	drawn := false
	for lineno := 0; lineno < v.height; lineno++ {
		index := v.Pos.Offset + lineno
		if index >= v.source.Count() {
			break
		}
		if !v.source.Line(index).Dirty {
			continue
		}
		drawn = true
		if !v.DrawLine(lineno) {
			break
		}
	}
	if !drawn {
		return
	}
	v.surface.Flush()
}

// RedrawFrom redraws every row from the given screen position to the
// bottom of the viewport, recomputing column layout first when
// options changed since the last pass.
func (v *View) RedrawFrom(lineno int) {
	if lineno < 0 || lineno >= v.height {
		panic(fmt.Sprintf("view: redraw start %d outside viewport height %d", lineno, v.height))
	}

	if v.LayoutStale() {
		v.relayout()
	}

	for ; lineno < v.height; lineno++ {
		if !v.DrawLine(lineno) {
			break
		}
	}
	v.surface.Flush()
}

// Redraw clears the viewport and redraws everything.
func (v *View) Redraw() {
	v.surface.Clear()
	v.RedrawFrom(0)
}
