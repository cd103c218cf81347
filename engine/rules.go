package engine

import (
	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/parameter"
)

// Rules are the energy constants of the metabolic rule set
type Rules struct {
	GrowGain            float64
	MoveCost            float64
	ReproduceCostFactor float64
	IdlePenalty         float64
}

// DefaultRules returns the classic energy economy
func DefaultRules() Rules {
	return Rules{
		GrowGain:            parameter.GrowGain,
		MoveCost:            parameter.MoveCost,
		ReproduceCostFactor: parameter.ReproduceCostFactor,
		IdlePenalty:         parameter.IdlePenalty,
	}
}

// Handler validates an action for e standing at at and applies it
// Returning false leaves the grid and e untouched
type Handler func(w *World, e *Entity, at core.Point, a Action) bool

// RuleSet is the physics a world runs under
// Metabolic sets drain IdlePenalty whenever an entity fails to act
type RuleSet struct {
	Name      string
	Metabolic bool
	Rules     Rules

	handlers map[ActionType]Handler
}

// NewRuleSet creates a rule set with no handlers
func NewRuleSet(name string, metabolic bool, rules Rules) *RuleSet {
	return &RuleSet{
		Name:      name,
		Metabolic: metabolic,
		Rules:     rules,
		handlers:  make(map[ActionType]Handler),
	}
}

// Register installs or replaces the handler for t
func (rs *RuleSet) Register(t ActionType, h Handler) {
	rs.handlers[t] = h
}

// Handler returns the handler for t
func (rs *RuleSet) Handler(t ActionType) (Handler, bool) {
	h, ok := rs.handlers[t]
	return h, ok
}

// LifelikeRules returns the energy-driven rule set with all four actions
func LifelikeRules(r Rules) *RuleSet {
	rs := NewRuleSet(parameter.RulesLifelike, true, r)
	rs.Register(ActionGrow, growHandler(r))
	rs.Register(ActionMove, moveHandler(r))
	rs.Register(ActionEat, eatHandler())
	rs.Register(ActionReproduce, reproduceHandler(r))
	return rs
}

// BaseRules returns the plain rule set: free movement, nothing else, no energy
func BaseRules() *RuleSet {
	rs := NewRuleSet(parameter.RulesBase, false, Rules{})
	rs.Register(ActionMove, freeMoveHandler)
	return rs
}

// checkDestination resolves the target cell of a directional action
func checkDestination(w *World, at core.Point, a Action) (core.Point, bool) {
	if a.Dir >= core.DirectionCount {
		return core.Point{}, false
	}
	dest := at.Step(a.Dir)
	if !w.grid.IsInside(dest) {
		return core.Point{}, false
	}
	return dest, true
}

func growHandler(r Rules) Handler {
	return func(w *World, e *Entity, at core.Point, a Action) bool {
		e.Energy += r.GrowGain
		return true
	}
}

func moveHandler(r Rules) Handler {
	return func(w *World, e *Entity, at core.Point, a Action) bool {
		dest, ok := checkDestination(w, at, a)
		if !ok || e.Energy <= r.MoveCost || w.grid.Get(dest) != nil {
			return false
		}
		e.Energy -= r.MoveCost
		w.relocate(e, at, dest)
		return true
	}
}

func freeMoveHandler(w *World, e *Entity, at core.Point, a Action) bool {
	dest, ok := checkDestination(w, at, a)
	if !ok || w.grid.Get(dest) != nil {
		return false
	}
	w.relocate(e, at, dest)
	return true
}

func eatHandler() Handler {
	return func(w *World, e *Entity, at core.Point, a Action) bool {
		dest, ok := checkDestination(w, at, a)
		if !ok {
			return false
		}
		prey := w.grid.Get(dest)
		if prey == nil || !prey.Kind.HasEnergy() {
			return false
		}
		e.Energy += prey.Energy
		w.grid.Set(dest, nil)
		w.emit(Event{Type: EventAte, ID: e.ID, Glyph: e.Glyph, From: at, To: dest, Victim: prey.Glyph})
		return true
	}
}

// reproduceHandler draws the offspring before validating, so its random
// energy sets the price even when the attempt then fails
func reproduceHandler(r Rules) Handler {
	return func(w *World, e *Entity, at core.Point, a Action) bool {
		baby, err := w.legend.Spawn(e.Glyph, w.rng)
		if err != nil {
			return false
		}
		dest, ok := checkDestination(w, at, a)
		cost := r.ReproduceCostFactor * baby.Energy
		if !ok || e.Energy <= cost || w.grid.Get(dest) != nil {
			return false
		}
		e.Energy -= cost
		w.grid.Set(dest, baby)
		w.emit(Event{Type: EventBorn, ID: baby.ID, Glyph: baby.Glyph, From: at, To: dest})
		return true
	}
}
