// Package view drives per-viewport rendering: it dispatches a row's
// logical columns to the field and graph renderers in schema order
// and owns the full, from-row, dirty-only and single-row redraw
// loops. The data layer supplies rows and resolved display values;
// this package never fetches or computes repository data.
package view

import (
	"time"

	"github.com/dshills/revgrid/internal/format"
	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/render/graph"
)

// Line is one logical record to display. The transient flags are set
// by the data layer when content changes and cleared by the
// orchestrator the moment the row is redrawn.
type Line struct {
	// Type is the default attribute class for the row's free text.
	Type core.Class

	// Dirty marks the row for the next dirty-only redraw.
	Dirty bool

	// Selected marks the row as the one under the cursor.
	Selected bool

	// ClearEOL requests erasing trailing cells before drawing.
	ClearEOL bool
}

// RefKind categorizes a ref for attribute selection.
type RefKind uint8

const (
	RefHead RefKind = iota
	RefBranch
	RefTracked
	RefRemote
	RefTag
	RefLocalTag
	RefReplace
	RefStash
)

// Class returns the attribute class for refs of this kind.
func (k RefKind) Class() core.Class {
	switch k {
	case RefHead:
		return core.ClassRefHead
	case RefBranch:
		return core.ClassRefBranch
	case RefTracked:
		return core.ClassRefTracked
	case RefRemote:
		return core.ClassRefRemote
	case RefTag:
		return core.ClassRefTag
	case RefLocalTag:
		return core.ClassRefLocalTag
	case RefReplace:
		return core.ClassRefReplace
	default:
		return core.ClassRefStash
	}
}

// Ref is a named pointer into the repository. Refs are read-only to
// the render layers.
type Ref struct {
	Name  string
	Kind  RefKind
	Valid bool
}

// RowData carries the resolved display values for one row. Absent
// values stay nil or zero; each column renderer decides how absence
// is drawn.
type RowData struct {
	Date        time.Time
	Author      *format.Ident
	Ref         *Ref
	Refs        []*Ref
	ID          string
	Mode        *uint32
	FileSize    *int64
	Graph       []graph.Symbol
	CommitTitle string
	FileName    string
	// FileNameAuto enables the filename column for this row when the
	// filename display mode is auto.
	FileNameAuto bool
	Text         string
}

// Source supplies rows to a view. Implementations must be
// side-effect-free on repeated reads except for row-local staging.
type Source interface {
	// Count returns the total number of rows.
	Count() int

	// Line returns the row at the given index.
	Line(index int) *Line

	// RowData returns the resolved display values for a row. ok is
	// false when the row has nothing to draw.
	RowData(index int, ln *Line) (*RowData, bool)

	// Select is called when the row becomes the drawn cursor row.
	Select(index int, ln *Line)
}
