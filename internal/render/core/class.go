// Package core provides shared types for the render subsystem.
// This package breaks import cycles between the drawing layers and
// the backend.
package core

// Class identifies an attribute class: a named slot in the active
// theme that resolves to a terminal style. Every drawing call names
// the class of what it draws; the writer only switches terminal
// attributes when the class changes within a row.
type Class uint8

// Attribute classes. The palette entries must stay contiguous so the
// graph renderer can index them.
const (
	// ClassNone is the per-row sentinel meaning "no attribute applied
	// yet". It is never drawn.
	ClassNone Class = iota

	ClassDefault
	ClassCursor
	ClassDelimiter
	ClassOverflow
	ClassLineNumber
	ClassDate
	ClassAuthor
	ClassID
	ClassMode
	ClassFileSize
	ClassFile
	ClassDirectory

	// Ref classes, picked from a ref's kind.
	ClassRefHead
	ClassRefBranch
	ClassRefTracked
	ClassRefRemote
	ClassRefTag
	ClassRefLocalTag
	ClassRefReplace
	ClassRefStash

	// Graph classes. ClassGraphCommit marks the row's own commit
	// node; the palette entries color the surrounding branch lines.
	ClassGraphCommit
	ClassPalette0
	ClassPalette1
	ClassPalette2
	ClassPalette3
	ClassPalette4
	ClassPalette5
	ClassPalette6

	classCount
)

// Count returns the number of attribute classes, for theme tables.
func Count() int {
	return int(classCount)
}

var classNames = map[Class]string{
	ClassDefault:     "default",
	ClassCursor:      "cursor",
	ClassDelimiter:   "delimiter",
	ClassOverflow:    "overflow",
	ClassLineNumber:  "line-number",
	ClassDate:        "date",
	ClassAuthor:      "author",
	ClassID:          "id",
	ClassMode:        "mode",
	ClassFileSize:    "file-size",
	ClassFile:        "file",
	ClassDirectory:   "directory",
	ClassRefHead:     "ref-head",
	ClassRefBranch:   "ref-branch",
	ClassRefTracked:  "ref-tracked",
	ClassRefRemote:   "ref-remote",
	ClassRefTag:      "ref-tag",
	ClassRefLocalTag: "ref-local-tag",
	ClassRefReplace:  "ref-replace",
	ClassRefStash:    "ref-stash",
	ClassGraphCommit: "graph-commit",
	ClassPalette0:    "palette-0",
	ClassPalette1:    "palette-1",
	ClassPalette2:    "palette-2",
	ClassPalette3:    "palette-3",
	ClassPalette4:    "palette-4",
	ClassPalette5:    "palette-5",
	ClassPalette6:    "palette-6",
}

// String returns the theme name of the class.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "none"
}

// ClassByName returns the class with the given theme name.
func ClassByName(name string) (Class, bool) {
	for c, n := range classNames {
		if n == name {
			return c, true
		}
	}
	return ClassNone, false
}
