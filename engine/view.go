package engine

import "github.com/lixenwraith/vi-life/core"

// View is an entity's read-only sense of its 8 neighbours
// Built fresh per entity per turn, do not keep it past Decide
type View struct {
	world *World
	pos   core.Point
}

func newView(w *World, pos core.Point) *View {
	return &View{world: w, pos: pos}
}

// Position returns the cell the view is centred on
func (v *View) Position() core.Point {
	return v.pos
}

// Look returns the glyph in direction d
// Past the edge it is the boundary glyph, an empty cell is the empty glyph
func (v *View) Look(d core.Direction) rune {
	target := v.pos.Step(d)
	if !v.world.grid.IsInside(target) {
		return core.GlyphBoundary
	}
	if e := v.world.grid.Get(target); e != nil {
		return e.Glyph
	}
	return core.GlyphEmpty
}

// FindAll lists every direction showing glyph, in compass order
func (v *View) FindAll(glyph rune) []core.Direction {
	var found []core.Direction
	for _, d := range core.Directions {
		if v.Look(d) == glyph {
			found = append(found, d)
		}
	}
	return found
}

// Find picks one direction showing glyph uniformly at random
func (v *View) Find(glyph rune) (core.Direction, bool) {
	found := v.FindAll(glyph)
	if len(found) == 0 {
		return 0, false
	}
	return found[v.world.rng.Intn(len(found))], true
}
