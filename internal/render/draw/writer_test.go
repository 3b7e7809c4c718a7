package draw

import (
	"strings"
	"testing"

	"github.com/dshills/revgrid/internal/config"
	"github.com/dshills/revgrid/internal/render/backend"
	"github.com/dshills/revgrid/internal/render/core"
	"github.com/dshills/revgrid/internal/theme"
)

// testWriter builds a writer over an in-memory buffer with the
// default theme and options.
func testWriter(width, height int) (*Writer, *backend.Buffer, *theme.Theme) {
	buf := backend.NewBuffer(width, height)
	th := theme.Default()
	w := NewWriter(buf, th)
	return w, buf, th
}

func TestCharsBasic(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	exhausted := w.Chars(core.ClassDefault, "abc", 10, false)
	if exhausted {
		t.Error("Chars reported exhaustion with budget left")
	}
	if got := w.Col(); got != 3 {
		t.Errorf("Col() = %d, want 3", got)
	}
	if got := buf.Row(0); got != "abc       " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestCharsFillsExactWidth(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	if !w.Chars(core.ClassDefault, "abcdefghijXYZ", 10, false) {
		t.Error("Chars did not report exhaustion at full width")
	}
	if got := buf.Row(0); got != "abcdefghij" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := w.Col(); got != 10 {
		t.Errorf("Col() = %d, want 10", got)
	}
}

func TestCharsTilde(t *testing.T) {
	w, buf, th := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	w.Chars(core.ClassDefault, "abcdef", 4, true)
	if got := buf.Row(0); got != "abc~      " {
		t.Errorf("Row(0) = %q, want %q", got, "abc~      ")
	}
	// The marker consumes the last budget cell, never an extra one.
	if got := w.Col(); got != 4 {
		t.Errorf("Col() = %d, want 4", got)
	}
	if got := buf.Cell(3, 0).Style; got != th.Style(core.ClassDelimiter) {
		t.Error("overflow marker not drawn in the delimiter class")
	}
}

func TestCharsNoTildeWhenExactFit(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	w.Chars(core.ClassDefault, "abcd", 4, true)
	if got := buf.Row(0); got != "abcd      " {
		t.Errorf("Row(0) = %q, marker drawn on exact fit", got)
	}
}

func TestCharsWideTilde(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	// Two wide runes fill 4 cells; the third would straddle the
	// budget, so the marker lands on the fifth cell.
	w.Chars(core.ClassDefault, "日本語", 5, true)
	if got := buf.Row(0); got != "日本~     " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := w.Col(); got != 5 {
		t.Errorf("Col() = %d, want 5", got)
	}
}

func TestCharsHorizontalSkip(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 2, false)

	w.Chars(core.ClassDefault, "abcdef", w.MaxLen(), false)
	// The first two cells scroll off; the rest start at column zero.
	if got := buf.Row(0); got != "cdef      " {
		t.Errorf("Row(0) = %q", got)
	}
	// The virtual cursor counts the skipped prefix.
	if got := w.Col(); got != 6 {
		t.Errorf("Col() = %d, want 6", got)
	}
}

func TestCharsEntirelySkipped(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 8, false)

	w.Chars(core.ClassDefault, "abc", w.MaxLen(), false)
	if got := buf.Row(0); got != strings.Repeat(" ", 10) {
		t.Errorf("Row(0) = %q, want blank", got)
	}
	if got := w.Col(); got != 3 {
		t.Errorf("Col() = %d, want 3", got)
	}
}

func TestLazyAttributeSwitch(t *testing.T) {
	w, buf, th := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	w.Chars(core.ClassDate, "ab", 10, false)
	w.Chars(core.ClassDate, "c", 10, false)
	w.Chars(core.ClassID, "d", 10, false)

	dateStyle := th.Style(core.ClassDate)
	idStyle := th.Style(core.ClassID)
	for x := 0; x < 3; x++ {
		if got := buf.Cell(x, 0).Style; got != dateStyle {
			t.Errorf("cell %d not in date style", x)
		}
	}
	if got := buf.Cell(3, 0).Style; got != idStyle {
		t.Error("cell 3 not in id style")
	}
}

func TestSelectedRowKeepsCursorStyle(t *testing.T) {
	w, buf, th := testWriter(10, 1)
	w.BeginRow(0, 10, 0, true)

	w.Chars(core.ClassDate, "ab", 10, false)
	w.Chars(core.ClassID, "cd", 10, false)
	w.Space(core.ClassDefault, 6, 6)

	cursor := th.Style(core.ClassCursor)
	for x := 0; x < 10; x++ {
		if got := buf.Cell(x, 0).Style; got != cursor {
			t.Errorf("cell %d of selected row not in cursor style", x)
		}
	}
}

func TestBeginRowResetsSelection(t *testing.T) {
	w, buf, th := testWriter(10, 2)
	w.BeginRow(0, 10, 0, true)
	w.Chars(core.ClassDate, "ab", 10, false)

	w.BeginRow(1, 10, 0, false)
	w.Chars(core.ClassDate, "cd", 10, false)

	if got := buf.Cell(0, 1).Style; got != th.Style(core.ClassDate) {
		t.Error("selection leaked into the next row")
	}
	if got := w.Col(); got != 2 {
		t.Errorf("Col() = %d after BeginRow, want 2", got)
	}
}

func TestSpace(t *testing.T) {
	w, _, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	if w.Space(core.ClassDefault, 5, 3) {
		t.Error("Space reported exhaustion early")
	}
	if got := w.Col(); got != 3 {
		t.Errorf("Col() = %d, want 3", got)
	}
}

func TestSpaceClampsToMax(t *testing.T) {
	w, _, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 0, false)

	w.Space(core.ClassDefault, 4, 99)
	if got := w.Col(); got != 4 {
		t.Errorf("Col() = %d, want 4", got)
	}
}

func TestSpaceBeyondChunk(t *testing.T) {
	w, buf, _ := testWriter(50, 1)
	w.BeginRow(0, 50, 0, false)

	w.Space(core.ClassDefault, 45, 45)
	if got := w.Col(); got != 45 {
		t.Errorf("Col() = %d, want 45", got)
	}
	if got := buf.Row(0); got != strings.Repeat(" ", 50) {
		t.Errorf("Row(0) = %q, want blank", got)
	}
}

func TestMaxLen(t *testing.T) {
	w, _, _ := testWriter(10, 1)
	w.BeginRow(0, 10, 3, false)

	if got := w.MaxLen(); got != 13 {
		t.Errorf("MaxLen() = %d, want 13", got)
	}
	w.Chars(core.ClassDefault, "abcde", 13, false)
	if got := w.MaxLen(); got != 8 {
		t.Errorf("MaxLen() after 5 cells = %d, want 8", got)
	}
	if w.Exhausted() {
		t.Error("Exhausted() with budget left")
	}
}

func TestAsciiEncodingPassthrough(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	opts := config.Default()
	opts.Encoding = "ascii"
	w.SetOptions(&opts)
	w.BeginRow(0, 10, 0, false)

	w.Chars(core.ClassDefault, "plain", 10, false)
	if got := buf.Row(0); got != "plain     " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestUnknownEncodingIgnored(t *testing.T) {
	w, buf, _ := testWriter(10, 1)
	opts := config.Default()
	opts.Encoding = "klingon"
	w.SetOptions(&opts)
	w.BeginRow(0, 10, 0, false)

	w.Chars(core.ClassDefault, "héllo", 10, false)
	if got := buf.Row(0); got != "héllo     " {
		t.Errorf("Row(0) = %q", got)
	}
}
