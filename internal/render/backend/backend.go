// Package backend provides the drawing surface abstraction for the
// render subsystem: a tcell-backed terminal for live output and an
// in-memory buffer for offscreen rendering and tests.
package backend

import "github.com/dshills/revgrid/internal/render/core"

// Surface is a grid of terminal cells addressed in physical screen
// coordinates. The render layers own all budget and scroll math; a
// surface only stores cells and makes them visible on Flush.
type Surface interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// Put writes one cell. Writes outside the surface are ignored.
	Put(x, y int, cell core.Cell)

	// ClearFrom erases row y from column x to the right edge.
	ClearFrom(x, y int)

	// Clear erases the whole surface.
	Clear()

	// Flush makes pending writes visible.
	Flush()
}
