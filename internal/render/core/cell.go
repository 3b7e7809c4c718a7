package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of this cell: 1 for narrow runes,
	// 2 for wide runes, 0 for the continuation half of a wide rune.
	Width int

	// Style is the resolved terminal style for this cell.
	Style tcell.Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: tcell.StyleDefault}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style tcell.Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// ContinuationCell returns the zero-width cell that occupies the
// second column of a wide rune.
func ContinuationCell(style tcell.Style) Cell {
	return Cell{Rune: 0, Width: 0, Style: style}
}

// IsContinuation returns true if this is a wide-rune continuation cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style == other.Style
}

// RuneWidth returns the display width of a rune in terminal cells.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}
