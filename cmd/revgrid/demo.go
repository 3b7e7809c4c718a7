package main

import (
	"time"

	"github.com/dshills/revgrid/internal/format"
	"github.com/dshills/revgrid/internal/render/graph"
	"github.com/dshills/revgrid/internal/render/view"
)

// demoSource is a fixed in-memory row source.
type demoSource struct {
	lines []*view.Line
	data  []*view.RowData
}

func (s *demoSource) Count() int {
	return len(s.lines)
}

func (s *demoSource) Line(index int) *view.Line {
	return s.lines[index]
}

func (s *demoSource) RowData(index int, ln *view.Line) (*view.RowData, bool) {
	return s.data[index], true
}

func (s *demoSource) Select(index int, ln *view.Line) {}

func newSource(data []*view.RowData) *demoSource {
	lines := make([]*view.Line, len(data))
	for i := range data {
		lines[i] = &view.Line{}
	}
	return &demoSource{lines: lines, data: data}
}

// Graph symbol shorthands for the fake history below.
func lane(shape graph.Shape, color uint8) graph.Symbol {
	return graph.Symbol{Shape: shape, Color: color}
}

// newLogSource fabricates a short two-branch history.
func newLogSource() *demoSource {
	authors := []*format.Ident{
		{Name: "Dana Calloway", Email: "dana@example.com"},
		{Name: "Piotr Nowak", Email: "piotr@example.com"},
		{Name: "Yuki Tanaka", Email: "yuki@example.com"},
	}
	base := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)

	commits := []struct {
		id     string
		author int
		age    time.Duration
		title  string
		refs   []*view.Ref
		graph  []graph.Symbol
	}{
		{
			id: "8f3a1c2e", author: 0, age: 0,
			title: "Release notes for 1.4",
			refs: []*view.Ref{
				{Name: "master", Kind: view.RefHead, Valid: true},
				{Name: "v1.4", Kind: view.RefTag, Valid: true},
			},
			graph: []graph.Symbol{lane(graph.ShapeCommit, 0)},
		},
		{
			id: "52b9e0d7", author: 1, age: 26 * time.Hour,
			title: "Merge branch 'encoding-fallback'",
			graph: []graph.Symbol{lane(graph.ShapeMergeCommit, 0), lane(graph.ShapeMerge, 1)},
		},
		{
			id: "c4d67f19", author: 2, age: 31 * time.Hour,
			title: "encoding: replace unmapped runes instead of dropping them",
			refs:  []*view.Ref{{Name: "encoding-fallback", Kind: view.RefBranch, Valid: true}},
			graph: []graph.Symbol{lane(graph.ShapeBranch, 0), lane(graph.ShapeCommit, 1)},
		},
		{
			id: "90aa41be", author: 2, age: 50 * time.Hour,
			title: "encoding: add latin-1 charmap tests",
			graph: []graph.Symbol{lane(graph.ShapeBranch, 0), lane(graph.ShapeCommit, 1)},
		},
		{
			id: "7e15c3d0", author: 0, age: 3 * 24 * time.Hour,
			title: "view: recompute layout once per option change, not per row",
			graph: []graph.Symbol{lane(graph.ShapeCommit, 0), lane(graph.ShapeBranch, 1)},
		},
		{
			id: "3b8d6f24", author: 1, age: 4 * 24 * time.Hour,
			title: "draw: keep the overflow marker inside the field budget",
			graph: []graph.Symbol{lane(graph.ShapeCommit, 0), lane(graph.ShapeFork, 1)},
		},
		{
			id: "dd02a9c8", author: 0, age: 6 * 24 * time.Hour,
			title: "Initial import",
			refs:  []*view.Ref{{Name: "archive/import", Kind: view.RefRemote, Valid: false}},
			graph: []graph.Symbol{lane(graph.ShapeCommit, 0)},
		},
	}

	data := make([]*view.RowData, len(commits))
	for i, c := range commits {
		data[i] = &view.RowData{
			ID:          c.id,
			Date:        base.Add(-c.age),
			Author:      authors[c.author],
			Refs:        c.refs,
			Graph:       c.graph,
			CommitTitle: c.title,
		}
	}
	return newSource(data)
}

// newTreeSource fabricates a tree listing with directories first.
func newTreeSource() *demoSource {
	author := &format.Ident{Name: "Dana Calloway", Email: "dana@example.com"}
	base := time.Date(2026, 8, 19, 14, 0, 0, 0, time.UTC)

	entries := []struct {
		name string
		mode uint32
		size int64
	}{
		{"docs", 0o040755, 0},
		{"internal", 0o040755, 0},
		{"go.mod", 0o100644, 612},
		{"main.go", 0o100644, 4890},
		{"settings.toml", 0o100644, 233},
		{"theme.json", 0o100644, 1504},
	}

	data := make([]*view.RowData, len(entries))
	for i, e := range entries {
		mode := e.mode
		size := e.size
		data[i] = &view.RowData{
			ID:           "8f3a1c2e",
			Date:         base.Add(-time.Duration(i) * time.Hour),
			Author:       author,
			Mode:         &mode,
			FileSize:     &size,
			FileName:     e.name,
			FileNameAuto: true,
		}
	}
	return newSource(data)
}
