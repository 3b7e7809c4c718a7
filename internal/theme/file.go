package theme

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/revgrid/internal/render/core"
)

// Load reads a JSON theme file and applies it over the default
// theme. Unknown class names are ignored so themes stay forward
// compatible.
//
// Format:
//
//	{
//	  "classes": {
//	    "date": {"fg": "#5f87af", "bg": "default", "attrs": ["bold"]}
//	  },
//	  "palette": "auto"
//	}
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("theme %s: invalid JSON", path)
	}

	t := Default()
	doc := gjson.ParseBytes(data)

	doc.Get("classes").ForEach(func(key, value gjson.Result) bool {
		class, ok := core.ClassByName(key.String())
		if !ok {
			return true
		}
		t.Set(class, parseStyle(value, t.Style(class)))
		return true
	})

	if palette := doc.Get("palette"); palette.Exists() {
		applyPalette(t, palette)
	}
	return t, nil
}

func parseStyle(value gjson.Result, base tcell.Style) tcell.Style {
	style := base
	if fg := value.Get("fg"); fg.Exists() {
		style = style.Foreground(parseColor(fg.String()))
	}
	if bg := value.Get("bg"); bg.Exists() {
		style = style.Background(parseColor(bg.String()))
	}
	for _, attr := range value.Get("attrs").Array() {
		switch attr.String() {
		case "bold":
			style = style.Bold(true)
		case "dim":
			style = style.Dim(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "reverse":
			style = style.Reverse(true)
		case "blink":
			style = style.Blink(true)
		}
	}
	return style
}

func parseColor(name string) tcell.Color {
	if name == "" || name == "default" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(name)
}

func applyPalette(t *Theme, palette gjson.Result) {
	const lanes = 7
	if palette.String() == "auto" {
		for i, color := range AutoPalette(lanes) {
			t.Set(core.ClassPalette0+core.Class(i), tcell.StyleDefault.Foreground(color))
		}
		return
	}
	for i, entry := range palette.Array() {
		if i >= lanes {
			break
		}
		t.Set(core.ClassPalette0+core.Class(i), tcell.StyleDefault.Foreground(parseColor(entry.String())))
	}
}

// Save writes the theme to a JSON theme file, recording only the
// foreground colors of named classes. Round-tripping attribute flags
// is not needed; saved themes are starting points for hand editing.
func Save(t *Theme, path string) error {
	json := "{}"
	var err error
	for c := core.ClassDefault; int(c) < core.Count(); c++ {
		name := c.String()
		if name == "none" {
			continue
		}
		fg, _, _ := t.Style(c).Decompose()
		value := "default"
		if fg != tcell.ColorDefault {
			value = fmt.Sprintf("#%06x", fg.Hex())
		}
		json, err = sjson.Set(json, "classes."+name+".fg", value)
		if err != nil {
			return fmt.Errorf("encoding theme: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(json), 0o644); err != nil {
		return fmt.Errorf("writing theme %s: %w", path, err)
	}
	return nil
}
