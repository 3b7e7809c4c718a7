package draw

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/revgrid/internal/config"
	"github.com/dshills/revgrid/internal/render/core"
)

func TestTextTabExpansion(t *testing.T) {
	w, buf, _ := testWriter(16, 1)
	w.BeginRow(0, 16, 0, false)

	w.Text(core.ClassDefault, "a\tb")
	if got := buf.Row(0); got != "a       b       " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := w.Col(); got != 9 {
		t.Errorf("Col() = %d, want 9", got)
	}
}

func TestTextTabSize(t *testing.T) {
	w, buf, _ := testWriter(16, 1)
	opts := config.Default()
	opts.TabSize = 4
	w.SetOptions(&opts)
	w.BeginRow(0, 16, 0, false)

	w.Text(core.ClassDefault, "a\tb")
	if got := buf.Row(0); got != "a   b           " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestTextClipsWithMarker(t *testing.T) {
	w, buf, _ := testWriter(5, 1)
	w.BeginRow(0, 5, 0, false)

	if !w.Text(core.ClassDefault, "abcdefgh") {
		t.Error("Text did not report exhaustion")
	}
	if got := buf.Row(0); got != "abcd~" {
		t.Errorf("Row(0) = %q, want %q", got, "abcd~")
	}
}

func TestTextOverflowOff(t *testing.T) {
	w, buf, _ := testWriter(20, 1)
	w.BeginRow(0, 20, 0, false)

	w.TextOverflow(core.ClassDefault, "abcdefgh", false, 5)
	if got := buf.Row(0); got != "abcdefgh            " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestTextOverflowMarksSpill(t *testing.T) {
	w, buf, th := testWriter(20, 1)
	w.BeginRow(0, 20, 0, false)

	w.TextOverflow(core.ClassDefault, "abcdefgh", true, 5)
	if got := buf.Row(0); got != "abcdefgh            " {
		t.Errorf("Row(0) = %q", got)
	}
	normal := th.Style(core.ClassDefault)
	spill := th.Style(core.ClassOverflow)
	for x := 0; x < 5; x++ {
		if got := buf.Cell(x, 0).Style; got != normal {
			t.Errorf("cell %d not in the normal class", x)
		}
	}
	for x := 5; x < 8; x++ {
		if got := buf.Cell(x, 0).Style; got != spill {
			t.Errorf("cell %d not in the overflow class", x)
		}
	}
}

func TestTextOverflowWithinLimit(t *testing.T) {
	w, buf, th := testWriter(20, 1)
	w.BeginRow(0, 20, 0, false)

	w.TextOverflow(core.ClassDefault, "abc", true, 5)
	if got := buf.Row(0); got != "abc                 " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := buf.Cell(2, 0).Style; got != th.Style(core.ClassDefault) {
		t.Error("short text drawn in the overflow class")
	}
}

func TestTextOverflowNarrowViewport(t *testing.T) {
	w, buf, _ := testWriter(4, 1)
	w.BeginRow(0, 4, 0, false)

	if !w.TextOverflow(core.ClassDefault, "abcdefgh", true, 10) {
		t.Error("TextOverflow did not report exhaustion")
	}
	if got := buf.Row(0); got != "abc~" {
		t.Errorf("Row(0) = %q, want %q", got, "abc~")
	}
}

func TestFormatted(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	w.Formatted(core.ClassDefault, "[%s]", "x")
	if got := buf.Row(0); got != "[x]       " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestFormattedOversizeDrawsNothing(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	huge := strings.Repeat("x", stagingSize+1)
	if w.Formatted(core.ClassDefault, "%s", huge) {
		t.Error("oversize format reported exhaustion with an empty row")
	}
	if got := w.Col(); got != 0 {
		t.Errorf("Col() = %d, oversize format moved the cursor", got)
	}
	if got := buf.Row(0); got != strings.Repeat(" ", 10) {
		t.Errorf("Row(0) = %q, want blank", got)
	}
}

func TestGraphicSeparator(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	w.Graphic(core.ClassDefault, []rune{'|'}, true)
	if got := buf.Cell(0, 0).Rune; got != '|' {
		t.Errorf("cell 0 = %q, want |", got)
	}
	if got := buf.Cell(1, 0).Rune; got != ' ' {
		t.Errorf("cell 1 = %q, want space", got)
	}
	if got := w.Col(); got != 2 {
		t.Errorf("Col() = %d, want 2", got)
	}
}

func TestGraphicSkipsScrolledGlyphs(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 1, false)

	w.Graphic(core.ClassDefault, []rune{'a', 'b'}, true)
	if got := buf.Cell(0, 0).Rune; got != 'b' {
		t.Errorf("cell 0 = %q, want b", got)
	}
	if got := buf.Cell(1, 0).Rune; got != ' ' {
		t.Errorf("cell 1 = %q, want separator space", got)
	}
	if got := w.Col(); got != 3 {
		t.Errorf("Col() = %d, want 3", got)
	}
}

func TestGraphicSeparatorConsumesCellAtEdge(t *testing.T) {
	w, _, _ := testWriter(1, 1)
	w.BeginRow(0, 1, 0, false)

	// No room to draw the separator, but the cursor still counts it
	// so column strides never vary with the viewport edge.
	if !w.Graphic(core.ClassDefault, []rune{'x'}, true) {
		t.Error("Graphic did not report exhaustion")
	}
	if got := w.Col(); got != 2 {
		t.Errorf("Col() = %d, want 2", got)
	}
}

func TestGraphicLineDrawingRunes(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	w.Graphic(core.ClassDefault, []rune{tcell.RuneVLine}, true)
	if got := buf.Cell(0, 0).Rune; got != tcell.RuneVLine {
		t.Errorf("cell 0 = %q, want vertical line", got)
	}
}
