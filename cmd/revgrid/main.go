// Package main is a demonstration shell for the revgrid render
// engine. It feeds a synthetic commit log and tree listing through
// the view orchestrator onto a live terminal; all repository data is
// fabricated, the point is exercising the renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dshills/revgrid/internal/config"
	"github.com/dshills/revgrid/internal/render/backend"
	"github.com/dshills/revgrid/internal/render/view"
	"github.com/dshills/revgrid/internal/theme"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "settings file (TOML)")
	themePath := flag.String("theme", "", "theme file (JSON)")
	graphMode := flag.String("graph", "", "graph glyphs: ascii, default or utf-8")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "revgrid: stdout is not a terminal")
		return 1
	}

	store := config.NewStore(config.Default())
	path := *configPath
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "revgrid", "settings.toml")
		}
	}
	if path != "" {
		if err := store.LoadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "revgrid: %v\n", err)
			return 1
		}
		if watcher, err := config.NewWatcher(store, path); err == nil {
			defer watcher.Close()
		}
	}

	// The demo always shows ids and line numbers in the tree.
	if err := store.Update(func(o *config.Options) {
		o.ShowID = true
		o.ShowLineNumbers = true
	}); err != nil {
		fmt.Fprintf(os.Stderr, "revgrid: %v\n", err)
		return 1
	}
	if *graphMode != "" {
		var mode config.GraphMode
		if err := mode.UnmarshalText([]byte(*graphMode)); err != nil {
			fmt.Fprintf(os.Stderr, "revgrid: %v\n", err)
			return 1
		}
		if err := store.Update(func(o *config.Options) { o.LineGraphics = mode }); err != nil {
			fmt.Fprintf(os.Stderr, "revgrid: %v\n", err)
			return 1
		}
	}

	th := theme.Default()
	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "revgrid: %v\n", err)
			return 1
		}
		th = loaded
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "revgrid: creating terminal: %v\n", err)
		return 1
	}
	if err := terminal.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "revgrid: initializing terminal: %v\n", err)
		return 1
	}
	defer terminal.Shutdown()

	logSrc := newLogSource()
	treeSrc := newTreeSource()

	logView := view.New(terminal, th, store, logSrc, []view.Column{
		view.IDColumn{},
		view.DateColumn{},
		view.AuthorColumn{},
		view.CommitTitleColumn{},
	})
	treeView := view.New(terminal, th, store, treeSrc, []view.Column{
		view.LineNumberColumn{},
		view.ModeColumn{},
		view.FileSizeColumn{},
		view.DateColumn{},
		view.AuthorColumn{},
		view.FileNameColumn{},
	})

	active, inactive := logView, treeView
	sources := map[uuid.UUID]view.Source{
		logView.ID():  logSrc,
		treeView.ID(): treeSrc,
	}
	active.Redraw()

	for {
		switch event := terminal.Screen().PollEvent().(type) {
		case *tcell.EventResize:
			width, height := event.Size()
			active.Resize(width, height)
			inactive.Resize(width, height)
			active.Redraw()
		case *tcell.EventKey:
			switch {
			case event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC ||
				(event.Key() == tcell.KeyRune && event.Rune() == 'q'):
				return 0
			case event.Key() == tcell.KeyDown || (event.Key() == tcell.KeyRune && event.Rune() == 'j'):
				moveCursor(active, sources[active.ID()], 1)
			case event.Key() == tcell.KeyUp || (event.Key() == tcell.KeyRune && event.Rune() == 'k'):
				moveCursor(active, sources[active.ID()], -1)
			case event.Key() == tcell.KeyRight || (event.Key() == tcell.KeyRune && event.Rune() == 'l'):
				active.Pos.Col++
				active.Redraw()
			case event.Key() == tcell.KeyLeft || (event.Key() == tcell.KeyRune && event.Rune() == 'h'):
				if active.Pos.Col > 0 {
					active.Pos.Col--
					active.Redraw()
				}
			case event.Key() == tcell.KeyRune && event.Rune() == 't':
				active, inactive = inactive, active
				active.Redraw()
			case event.Key() == tcell.KeyRune && event.Rune() == 'r':
				active.Redraw()
			}
		}
	}
}

// moveCursor moves the selection, scrolling when the cursor leaves
// the window. In-window moves go through the dirty-only redraw path.
func moveCursor(v *view.View, src view.Source, delta int) {
	next := v.Pos.LineNo + delta
	if next < 0 || next >= src.Count() {
		return
	}
	src.Line(v.Pos.LineNo).Dirty = true
	src.Line(next).Dirty = true
	v.Pos.LineNo = next

	_, height := v.Size()
	switch {
	case next < v.Pos.Offset:
		v.Pos.Offset = next
		v.Redraw()
	case next >= v.Pos.Offset+height:
		v.Pos.Offset = next - height + 1
		v.Redraw()
	case v.LayoutStale():
		v.RedrawFrom(0)
	default:
		v.RedrawDirty()
	}
}
