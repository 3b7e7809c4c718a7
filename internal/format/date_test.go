package format

import (
	"testing"
	"time"
)

func TestDateStyleUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    DateStyle
		wantErr bool
	}{
		{"no", DateNo, false},
		{"false", DateNo, false},
		{"default", DateDefault, false},
		{"yes", DateDefault, false},
		{"short", DateShort, false},
		{"relative", DateRelative, false},
		{"bogus", DateNo, true},
	}
	for _, tt := range tests {
		var s DateStyle
		err := s.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && s != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, s, tt.want)
		}
	}
}

func TestDateStyleWidth(t *testing.T) {
	if got := DateShort.Width(); got != DateShortWidth {
		t.Errorf("DateShort.Width() = %d, want %d", got, DateShortWidth)
	}
	if got := DateDefault.Width(); got != DateWidth {
		t.Errorf("DateDefault.Width() = %d, want %d", got, DateWidth)
	}
	if got := DateRelative.Width(); got != DateWidth {
		t.Errorf("DateRelative.Width() = %d, want %d", got, DateWidth)
	}
}

func TestDate(t *testing.T) {
	when := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name  string
		t     time.Time
		style DateStyle
		want  string
	}{
		{"default", when, DateDefault, "2024-03-15 09:30"},
		{"short", when, DateShort, "2024-03-15"},
		{"disabled", when, DateNo, ""},
		{"zero time", time.Time{}, DateDefault, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.t, tt.style); got != tt.want {
				t.Errorf("Date() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativeDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds", now.Add(-30 * time.Second), "30 seconds ago"},
		{"one minute", now.Add(-1 * time.Minute), "1 minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-48 * time.Hour), "2 days ago"},
		{"weeks", now.Add(-8 * 24 * time.Hour), "1 week ago"},
		{"months", now.Add(-70 * 24 * time.Hour), "2 months ago"},
		{"years", now.Add(-400 * 24 * time.Hour), "1 year ago"},
		{"future", now.Add(2 * time.Hour), "in 2 hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeDate(tt.t, now); got != tt.want {
				t.Errorf("relativeDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
