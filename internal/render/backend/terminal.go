package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/revgrid/internal/render/core"
)

// Terminal implements Surface on a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal surface on a fresh tcell screen.
// The caller owns the screen lifecycle via Init and Shutdown.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, which is useful for
// simulation screens in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the underlying screen.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen for event polling.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) Put(x, y int, cell core.Cell) {
	if cell.IsContinuation() {
		// tcell tracks wide-rune continuations itself.
		return
	}
	t.screen.SetContent(x, y, cell.Rune, nil, cell.Style)
}

func (t *Terminal) ClearFrom(x, y int) {
	width, _ := t.screen.Size()
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Flush() {
	t.screen.Show()
}
