package backend

import (
	"strings"

	"github.com/dshills/revgrid/internal/render/core"
)

// Buffer is an in-memory Surface. It backs rendering tests and can
// serve as an offscreen staging target; Flush only counts, so tests
// can assert how often a redraw actually hit the screen.
type Buffer struct {
	width, height int
	cells         [][]core.Cell
	flushes       int
}

// NewBuffer creates a buffer surface with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.allocate()
	return b
}

func (b *Buffer) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := 0; y < b.height; y++ {
		b.cells[y] = make([]core.Cell, b.width)
		for x := 0; x < b.width; x++ {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

// Resize resizes the buffer, discarding content.
func (b *Buffer) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) Put(x, y int, cell core.Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = cell
}

func (b *Buffer) ClearFrom(x, y int) {
	if y < 0 || y >= b.height {
		return
	}
	for ; x < b.width; x++ {
		if x >= 0 {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

func (b *Buffer) Clear() {
	for y := 0; y < b.height; y++ {
		b.ClearFrom(0, y)
	}
}

func (b *Buffer) Flush() {
	b.flushes++
}

// Flushes returns how many times Flush has been called.
func (b *Buffer) Flushes() int {
	return b.flushes
}

// Cell returns the cell at the given position.
func (b *Buffer) Cell(x, y int) core.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.EmptyCell()
	}
	return b.cells[y][x]
}

// Row returns the text content of row y with continuation cells
// omitted, for assertions against rendered output.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		cell := b.cells[y][x]
		if cell.IsContinuation() {
			continue
		}
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// Contents returns every row joined by newlines.
func (b *Buffer) Contents() string {
	rows := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}
