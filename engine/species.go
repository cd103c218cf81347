package engine

import (
	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/parameter"
)

// Tuning holds the per-species constants behaviours read
type Tuning struct {
	PlantEnergyMin      float64
	PlantEnergySpan     float64
	PlantReproduceAbove float64
	PlantGrowBelow      float64

	PlantEaterEnergy         float64
	PlantEaterReproduceAbove float64

	WallFollowerEnergy float64

	// PreyGlyph is what plant eaters look for
	PreyGlyph rune
}

// DefaultTuning returns the classic species constants
func DefaultTuning() Tuning {
	return Tuning{
		PlantEnergyMin:           parameter.PlantEnergyMin,
		PlantEnergySpan:          parameter.PlantEnergySpan,
		PlantReproduceAbove:      parameter.PlantReproduceAbove,
		PlantGrowBelow:           parameter.PlantGrowBelow,
		PlantEaterEnergy:         parameter.PlantEaterEnergy,
		PlantEaterReproduceAbove: parameter.PlantEaterReproduceAbove,
		WallFollowerEnergy:       parameter.WallFollowerEnergy,
		PreyGlyph:                core.GlyphPlant,
	}
}

// spawn creates an entity of kind k with its starting state
func (t *Tuning) spawn(k Kind, r core.Rand) *Entity {
	e := &Entity{
		ID:     newID(r),
		Kind:   k,
		tuning: t,
	}
	switch k {
	case KindPlant:
		e.Energy = t.PlantEnergyMin + r.Float64()*t.PlantEnergySpan
	case KindPlantEater:
		e.Energy = t.PlantEaterEnergy
	case KindWallFollower:
		e.Energy = t.WallFollowerEnergy
		e.Facing = core.South
	}
	return e
}

// Decide asks the entity for its action this turn
// ok is false when the entity chooses to do nothing
func (e *Entity) Decide(v *View) (a Action, ok bool) {
	switch e.Kind {
	case KindPlant:
		return e.decidePlant(v)
	case KindPlantEater:
		return e.decidePlantEater(v)
	case KindWallFollower:
		return e.decideWallFollower(v), true
	}
	return Action{}, false
}

func (e *Entity) decidePlant(v *View) (Action, bool) {
	t := e.tuning
	if e.Energy > t.PlantReproduceAbove {
		if dir, ok := v.Find(core.GlyphEmpty); ok {
			return Reproduce(dir), true
		}
	}
	if e.Energy < t.PlantGrowBelow {
		return Grow(), true
	}
	return Action{}, false
}

func (e *Entity) decidePlantEater(v *View) (Action, bool) {
	t := e.tuning
	space, hasSpace := v.Find(core.GlyphEmpty)
	if e.Energy > t.PlantEaterReproduceAbove && hasSpace {
		return Reproduce(space), true
	}
	if plant, ok := v.Find(t.PreyGlyph); ok {
		return Eat(plant), true
	}
	if hasSpace {
		return Move(space), true
	}
	return Action{}, false
}

// decideWallFollower keeps a wall on its left hand side
// A blocked cell three steps counter-clockwise means the wall bends, so the
// follower turns into it before sweeping clockwise for the first opening
func (e *Entity) decideWallFollower(v *View) Action {
	start := e.Facing
	if v.Look(e.Facing.Rotate(-3)) != core.GlyphEmpty {
		e.Facing = e.Facing.Rotate(-2)
		start = e.Facing
	}
	for v.Look(e.Facing) != core.GlyphEmpty {
		e.Facing = e.Facing.Rotate(1)
		if e.Facing == start {
			break
		}
	}
	return Move(e.Facing)
}
