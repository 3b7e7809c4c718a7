// Package graph renders precomputed revision-graph topology symbols.
// The topology itself is computed by a collaborator; this package
// only maps symbols to glyphs and color classes and writes them
// through the cell writer, bypassing text clipping because glyphs
// are pre-sized.
package graph

// Shape is the topology role of one graph cell.
type Shape uint8

const (
	// ShapeBlank is an empty lane.
	ShapeBlank Shape = iota

	// ShapeBranch is a lane continuing straight through the row.
	ShapeBranch

	// ShapeCommit is the row's own commit node.
	ShapeCommit

	// ShapeMergeCommit is the row's commit node with multiple parents.
	ShapeMergeCommit

	// ShapeMerge is a lane ending by joining the commit on this row.
	ShapeMerge

	// ShapeFork is a lane starting from the commit on this row.
	ShapeFork

	// ShapeCross is a lane crossed by a horizontal merge line.
	ShapeCross
)

// Symbol is one topology cell of the revision graph for a row.
type Symbol struct {
	// Shape is the topology role.
	Shape Shape

	// Color indexes the branch color palette. Ignored for commit
	// nodes, which always use the commit color class.
	Color uint8
}

// IsCommit reports whether the symbol marks the row's own commit.
func (s Symbol) IsCommit() bool {
	return s.Shape == ShapeCommit || s.Shape == ShapeMergeCommit
}
