// Package text provides cell-width measurement, truncation and tab
// expansion for UTF-8 terminal text. Widths are in terminal cells,
// not bytes or code points; all primitives in the draw layer measure
// through this package so clipping and padding agree.
package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the display width of a string in terminal cells,
// ignoring tabs.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// WidthMax returns the display width of a string capped at max cells.
func WidthMax(s string, max int) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := clusterWidth(g.Str(), width, 1)
		if width+w > max {
			return max
		}
		width += w
	}
	return width
}

// NextTabStop returns the first tab stop after the given column.
func NextTabStop(col, tabSize int) int {
	if tabSize < 1 {
		tabSize = 1
	}
	return col + tabSize - col%tabSize
}

// clusterWidth returns the width of one grapheme cluster at the given
// column. Tabs expand to the next tab stop; everything else measures
// by its Unicode display width.
func clusterWidth(cluster string, col, tabSize int) int {
	if cluster == "\t" {
		return NextTabStop(col, tabSize) - col
	}
	return uniseg.StringWidth(cluster)
}

// Fit computes the prefix of s that fits a cell budget.
//
// The first skip cells are consumed without producing output (used
// for horizontal scrolling); the remainder is accumulated until the
// total width, skipped prefix included, would exceed max cells. Tabs
// are expanded to spaces in the returned string so callers can write
// it cell by cell. The returned cell count includes the skipped
// prefix, so a caller advancing a virtual cursor by cells stays
// aligned with the off-screen portion. trimmed reports whether any
// of s was left over.
//
// A cluster straddling the skip boundary is dropped but still
// counted, leaving a blank cell rather than breaking alignment.
func Fit(s string, skip, max, tabSize int) (out string, cells int, trimmed bool) {
	if max <= 0 {
		return "", 0, s != ""
	}
	limit := max

	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := clusterWidth(cluster, cells, tabSize)
		if cells+w > limit {
			return b.String(), cells, true
		}
		if cells+w > skip {
			if cluster == "\t" {
				b.WriteString(strings.Repeat(" ", w))
			} else if cells < skip {
				// Straddles the skip boundary.
				b.WriteString(strings.Repeat(" ", cells+w-skip))
			} else {
				b.WriteString(cluster)
			}
		}
		cells += w
	}
	return b.String(), cells, false
}

// Skip returns the remainder of s after dropping a prefix of the
// given display width. A cluster straddling the boundary is dropped
// entirely.
func Skip(s string, cells, tabSize int) string {
	if cells <= 0 {
		return s
	}
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if width >= cells {
			from, _ := g.Positions()
			return s[from:]
		}
		width += clusterWidth(g.Str(), width, tabSize)
	}
	return ""
}

// Expand copies s with tabs replaced by spaces, stopping once the
// expansion reaches limit bytes. It returns the expanded chunk and
// the number of source bytes consumed, so callers can continue from
// where the staging buffer filled up.
func Expand(s string, tabSize, limit int) (expanded string, consumed int) {
	var b strings.Builder
	col := 0
	for i, r := range s {
		if b.Len() >= limit {
			return b.String(), i
		}
		if r == '\t' {
			n := NextTabStop(col, tabSize) - col
			b.WriteString(strings.Repeat(" ", n))
			col += n
		} else {
			b.WriteRune(r)
			col += uniseg.StringWidth(string(r))
		}
	}
	return b.String(), len(s)
}
