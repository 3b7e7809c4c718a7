package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/revgrid/internal/format"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates an option value is out of range.
	ErrInvalidValue = errors.New("invalid option value")
)

// Options is the full option set read at draw time. Field names map
// to the TOML settings file; zero values are never implied, use
// Default for the baseline.
type Options struct {
	ShowDate   format.DateStyle   `toml:"show-date"`
	ShowAuthor format.AuthorStyle `toml:"show-author"`
	ShowID     bool               `toml:"show-id"`
	ShowSize   format.SizeStyle   `toml:"show-file-size"`
	ShowName   FilenameMode       `toml:"show-filename"`
	ShowRefs   bool               `toml:"show-refs"`

	ShowLineNumbers    bool `toml:"show-line-numbers"`
	LineNumberInterval int  `toml:"line-number-interval"`

	AuthorWidth   int `toml:"author-width"`
	IDWidth       int `toml:"id-width"`
	FilenameWidth int `toml:"filename-width"`
	TitleOverflow int `toml:"title-overflow"`

	LineGraphics GraphMode `toml:"line-graphics"`
	TabSize      int       `toml:"tab-size"`

	// Encoding names the output encoding; empty means pass UTF-8
	// through unchanged.
	Encoding string `toml:"encoding"`
}

// Default returns the baseline option set.
func Default() Options {
	return Options{
		ShowDate:           format.DateDefault,
		ShowAuthor:         format.AuthorFull,
		ShowID:             false,
		ShowSize:           format.SizeDefault,
		ShowName:           FilenameAuto,
		ShowRefs:           true,
		ShowLineNumbers:    false,
		LineNumberInterval: 5,
		AuthorWidth:        0,
		IDWidth:            7,
		FilenameWidth:      0,
		TitleOverflow:      0,
		LineGraphics:       GraphLineDrawing,
		TabSize:            8,
	}
}

// validate rejects values the render layers cannot work with.
func (o *Options) validate() error {
	if o.TabSize < 1 {
		return fmt.Errorf("%w: tab-size must be at least 1", ErrInvalidValue)
	}
	if o.LineNumberInterval < 1 {
		return fmt.Errorf("%w: line-number-interval must be at least 1", ErrInvalidValue)
	}
	if o.IDWidth < 0 || o.AuthorWidth < 0 || o.FilenameWidth < 0 || o.TitleOverflow < 0 {
		return fmt.Errorf("%w: widths must not be negative", ErrInvalidValue)
	}
	if o.LineGraphics > GraphUTF8 {
		return fmt.Errorf("%w: unknown graph mode %d", ErrInvalidValue, o.LineGraphics)
	}
	return nil
}

// Store holds the live option set. Reads take a snapshot; every
// mutation bumps a generation counter that views compare against
// their last layout pass.
type Store struct {
	mu   sync.RWMutex
	opts Options
	gen  uint64
}

// NewStore creates a store seeded with the given options.
func NewStore(opts Options) *Store {
	return &Store{opts: opts, gen: 1}
}

// Snapshot returns a copy of the current options.
func (s *Store) Snapshot() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// Generation returns the current option generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Update applies fn to the options and bumps the generation. The
// update is rejected if the result fails validation.
func (s *Store) Update(fn func(*Options)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.opts
	fn(&next)
	if err := next.validate(); err != nil {
		return err
	}
	s.opts = next
	s.gen++
	return nil
}

// LoadFile reads a TOML settings file into the store. A missing file
// is not an error; the current options stand. Environment variables
// prefixed REVGRID_ overlay the file contents. The generation only
// advances when the result differs from the current options.
func (s *Store) LoadFile(path string) error {
	current := s.Snapshot()
	next := current

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to the environment overlay alone.
	case err != nil:
		return fmt.Errorf("reading settings %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &next); err != nil {
			return fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}

	applyEnv(&next)
	// Avoid a generation bump, and the relayout it forces on every
	// view, when nothing actually changed.
	if next == current {
		return nil
	}
	return s.Update(func(o *Options) { *o = next })
}

// envMapping maps environment variables onto option fields.
func applyEnv(o *Options) {
	if v, ok := os.LookupEnv("REVGRID_TAB_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			o.TabSize = n
		}
	}
	if v, ok := os.LookupEnv("REVGRID_LINE_GRAPHICS"); ok {
		_ = o.LineGraphics.UnmarshalText([]byte(v))
	}
	if v, ok := os.LookupEnv("REVGRID_ENCODING"); ok {
		o.Encoding = v
	}
	if v, ok := os.LookupEnv("REVGRID_SHOW_DATE"); ok {
		_ = o.ShowDate.UnmarshalText([]byte(v))
	}
	if v, ok := os.LookupEnv("REVGRID_SHOW_AUTHOR"); ok {
		_ = o.ShowAuthor.UnmarshalText([]byte(v))
	}
}
