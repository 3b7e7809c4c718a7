// Package config holds the option set read by the render layers at
// draw time: per-field display toggles, column widths, glyph backend
// selection, tab width and output encoding. Options load from a TOML
// settings file with an environment overlay, and a watcher bumps a
// generation counter on change so views know to recompute layout.
package config

import "fmt"

// GraphMode selects the revision-graph glyph backend. It is fixed for
// the lifetime of the process.
type GraphMode uint8

const (
	// GraphASCII draws the graph with plain ASCII characters.
	GraphASCII GraphMode = iota

	// GraphLineDrawing draws the graph with terminal line-drawing
	// characters.
	GraphLineDrawing

	// GraphUTF8 draws the graph with wide Unicode branch glyphs.
	GraphUTF8
)

// UnmarshalText parses a graph mode name from configuration.
func (m *GraphMode) UnmarshalText(data []byte) error {
	switch string(data) {
	case "ascii":
		*m = GraphASCII
	case "default":
		*m = GraphLineDrawing
	case "utf-8", "utf8":
		*m = GraphUTF8
	default:
		return fmt.Errorf("unknown graph mode %q", data)
	}
	return nil
}

// String returns the configuration name of the mode.
func (m GraphMode) String() string {
	switch m {
	case GraphLineDrawing:
		return "default"
	case GraphUTF8:
		return "utf-8"
	default:
		return "ascii"
	}
}

// FilenameMode selects when the filename column is drawn.
type FilenameMode uint8

const (
	// FilenameNo disables the filename column.
	FilenameNo FilenameMode = iota

	// FilenameAuto draws the filename only for rows that explicitly
	// enable it.
	FilenameAuto

	// FilenameAlways draws the filename for every row.
	FilenameAlways
)

// UnmarshalText parses a filename mode name from configuration.
func (m *FilenameMode) UnmarshalText(data []byte) error {
	switch string(data) {
	case "no", "false":
		*m = FilenameNo
	case "auto":
		*m = FilenameAuto
	case "always", "yes", "true":
		*m = FilenameAlways
	default:
		return fmt.Errorf("unknown filename mode %q", data)
	}
	return nil
}

// String returns the configuration name of the mode.
func (m FilenameMode) String() string {
	switch m {
	case FilenameAuto:
		return "auto"
	case FilenameAlways:
		return "always"
	default:
		return "no"
	}
}
