package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-life/core"
)

// Grid is a dense fixed-size board of optional entity references
// Slot index = x + y*Width; a nil slot is empty space
// Clearing a slot is how an entity dies, nothing else holds it
type Grid struct {
	Width  int
	Height int
	cells  []*Entity
}

// NewGrid creates an empty grid
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]*Entity, width*height),
	}
}

// IsInside reports whether p addresses a slot
func (g *Grid) IsInside(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Get returns the occupant of p or nil
// Callers bounds-check with IsInside first; an outside point panics
func (g *Grid) Get(p core.Point) *Entity {
	return g.cells[g.index(p)]
}

// Set stores e at p, nil empties the slot
func (g *Grid) Set(p core.Point, e *Entity) {
	g.cells[g.index(p)] = e
}

func (g *Grid) index(p core.Point) int {
	if !g.IsInside(p) {
		panic(fmt.Sprintf("grid: %v outside %dx%d", p, g.Width, g.Height))
	}
	return p.X + p.Y*g.Width
}

// ForEach visits occupied slots row by row, left to right
// Each slot is read when the scan reaches it, so changes the visitor makes
// to cells further along are seen and cleared cells are skipped
func (g *Grid) ForEach(fn func(e *Entity, at core.Point)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if e := g.cells[x+y*g.Width]; e != nil {
				fn(e, core.Point{X: x, Y: y})
			}
		}
	}
}

// Count returns the number of occupied slots
func (g *Grid) Count() int {
	n := 0
	for _, e := range g.cells {
		if e != nil {
			n++
		}
	}
	return n
}

// Locate finds the slot holding e by identity
func (g *Grid) Locate(e *Entity) (core.Point, bool) {
	if e == nil {
		return core.Point{}, false
	}
	for i, c := range g.cells {
		if c == e {
			return core.Point{X: i % g.Width, Y: i / g.Width}, true
		}
	}
	return core.Point{}, false
}
