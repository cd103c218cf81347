package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-life/core"
)

// Factory creates a fresh entity of one species
type Factory func(r core.Rand) *Entity

// Legend maps map glyphs to the factory for their species
// Each world holds its own; reproduction looks the parent's glyph up again
type Legend map[rune]Factory

// KindFactory returns a factory for kind k using tuning t
func KindFactory(k Kind, t Tuning) Factory {
	tp := &t
	return func(r core.Rand) *Entity {
		return tp.spawn(k, r)
	}
}

// NewLegend returns the standard glyph assignment
func NewLegend(t Tuning) Legend {
	return Legend{
		core.GlyphWall:         KindFactory(KindWall, t),
		core.GlyphPlant:        KindFactory(KindPlant, t),
		core.GlyphPlantEater:   KindFactory(KindPlantEater, t),
		core.GlyphWallFollower: KindFactory(KindWallFollower, t),
	}
}

// Spawn instantiates the species for glyph and stamps its origin glyph
// Entities from custom factories without tuning get DefaultTuning
func (l Legend) Spawn(glyph rune, r core.Rand) (*Entity, error) {
	f, ok := l[glyph]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGlyph, glyph)
	}
	e := f(r)
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilEntity, glyph)
	}
	if e.tuning == nil {
		t := DefaultTuning()
		e.tuning = &t
	}
	e.Glyph = glyph
	return e, nil
}
