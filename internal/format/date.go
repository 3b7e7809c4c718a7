// Package format converts raw row values (times, identities, sizes,
// file modes) into display strings honoring a configured style. The
// draw layer treats these as opaque text; all width decisions stay in
// the render packages.
package format

import (
	"fmt"
	"time"
)

// DateStyle selects how dates are rendered.
type DateStyle uint8

const (
	// DateNo disables the date column.
	DateNo DateStyle = iota

	// DateDefault renders "2006-01-02 15:04".
	DateDefault

	// DateShort renders "2006-01-02".
	DateShort

	// DateRelative renders an age like "3 hours ago".
	DateRelative
)

// Date column content widths per style.
const (
	DateWidth      = 16
	DateShortWidth = 10
)

// UnmarshalText parses a date style name from configuration.
func (s *DateStyle) UnmarshalText(data []byte) error {
	switch string(data) {
	case "no", "false":
		*s = DateNo
	case "default", "yes", "true":
		*s = DateDefault
	case "short":
		*s = DateShort
	case "relative":
		*s = DateRelative
	default:
		return fmt.Errorf("unknown date style %q", data)
	}
	return nil
}

// String returns the configuration name of the style.
func (s DateStyle) String() string {
	switch s {
	case DateDefault:
		return "default"
	case DateShort:
		return "short"
	case DateRelative:
		return "relative"
	default:
		return "no"
	}
}

// Width returns the content width of a date rendered in this style.
func (s DateStyle) Width() int {
	if s == DateShort {
		return DateShortWidth
	}
	return DateWidth
}

// Date formats a time for display. A zero time renders as empty so a
// row without a date shows blank padding.
func Date(t time.Time, style DateStyle) string {
	if style == DateNo || t.IsZero() {
		return ""
	}
	switch style {
	case DateShort:
		return t.Format("2006-01-02")
	case DateRelative:
		return relativeDate(t, time.Now())
	default:
		return t.Format("2006-01-02 15:04")
	}
}

// relativeDate renders the age of t relative to now.
func relativeDate(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	future := seconds < 0
	if future {
		seconds = -seconds
	}

	periods := []struct {
		unit    string
		seconds int64
	}{
		{"year", 365 * 24 * 60 * 60},
		{"month", 30 * 24 * 60 * 60},
		{"week", 7 * 24 * 60 * 60},
		{"day", 24 * 60 * 60},
		{"hour", 60 * 60},
		{"minute", 60},
	}

	for _, p := range periods {
		if seconds < p.seconds {
			continue
		}
		n := seconds / p.seconds
		unit := p.unit
		if n != 1 {
			unit += "s"
		}
		if future {
			return fmt.Sprintf("in %d %s", n, unit)
		}
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	if future {
		return fmt.Sprintf("in %d seconds", seconds)
	}
	return fmt.Sprintf("%d seconds ago", seconds)
}
