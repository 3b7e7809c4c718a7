package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{ClassDefault, "default"},
		{ClassCursor, "cursor"},
		{ClassDelimiter, "delimiter"},
		{ClassLineNumber, "line-number"},
		{ClassGraphCommit, "graph-commit"},
		{ClassPalette0, "palette-0"},
		{ClassPalette6, "palette-6"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestClassByName(t *testing.T) {
	for c := ClassDefault; int(c) < Count(); c++ {
		got, ok := ClassByName(c.String())
		if !ok || got != c {
			t.Errorf("ClassByName(%q) = (%v, %v), want (%v, true)", c.String(), got, ok, c)
		}
	}
	if _, ok := ClassByName("no-such-class"); ok {
		t.Error("ClassByName accepted an unknown name")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{' ', 1},
		{'日', 2},
		{'\t', 0},
		{'\n', 0},
		{0x7F, 0},
		{'~', 1},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestCellContinuation(t *testing.T) {
	cont := ContinuationCell(tcell.StyleDefault)
	if !cont.IsContinuation() {
		t.Error("ContinuationCell is not a continuation")
	}
	if NewCell('x', tcell.StyleDefault).IsContinuation() {
		t.Error("narrow cell reports continuation")
	}
	if EmptyCell().IsContinuation() {
		t.Error("empty cell reports continuation")
	}
}

func TestCellEquals(t *testing.T) {
	a := NewCell('x', tcell.StyleDefault)
	b := NewCell('x', tcell.StyleDefault)
	if !a.Equals(b) {
		t.Error("identical cells not equal")
	}
	c := NewCell('y', tcell.StyleDefault)
	if a.Equals(c) {
		t.Error("different runes compare equal")
	}
	d := NewCell('x', tcell.StyleDefault.Bold(true))
	if a.Equals(d) {
		t.Error("different styles compare equal")
	}
}
