package engine

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/status"
)

// World owns the grid and runs turns over it
// Not safe for concurrent use; ClockScheduler serialises access
type World struct {
	grid     *Grid
	legend   Legend
	rules    *RuleSet
	rng      core.Rand
	observer Observer
	turn     int64

	registry    *status.Registry
	statTurns   *atomic.Int64
	statEnergy  *status.AtomicFloat
	statEntity  *atomic.Int64
	statStarved *atomic.Int64
	statEaten   *atomic.Int64
	statMoves   *atomic.Int64
}

// Option configures a World at construction
type Option func(*World)

// WithRules selects the rule set, default is LifelikeRules(DefaultRules())
func WithRules(rs *RuleSet) Option {
	return func(w *World) { w.rules = rs }
}

// WithRand injects the random source used for views, energies and ids
func WithRand(r core.Rand) Option {
	return func(w *World) { w.rng = r }
}

// WithRegistry publishes turn metrics into reg
func WithRegistry(reg *status.Registry) Option {
	return func(w *World) { w.registry = reg }
}

// WithObserver receives every event the world emits
func WithObserver(fn Observer) Option {
	return func(w *World) { w.observer = fn }
}

// NewWorld decodes rows through legend into a fresh world
// Rows must be non-empty and of equal length; the empty glyph leaves a slot vacant
func NewWorld(rows []string, legend Legend, opts ...Option) (*World, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}

	w := &World{legend: legend}
	for _, opt := range opts {
		opt(w)
	}
	if w.rules == nil {
		w.rules = LifelikeRules(DefaultRules())
	}
	if w.rng == nil {
		w.rng = core.NewRand(0)
	}

	width := len([]rune(rows[0]))
	w.grid = NewGrid(width, len(rows))
	for y, row := range rows {
		line := []rune(row)
		if len(line) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(line), width, ErrRaggedMap)
		}
		for x, ch := range line {
			if ch == core.GlyphEmpty {
				continue
			}
			e, err := legend.Spawn(ch, w.rng)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			w.grid.Set(core.Point{X: x, Y: y}, e)
		}
	}

	w.bindMetrics()
	w.publishStats()
	log.Printf("world: %dx%d, %d entities, rules=%s", width, len(rows), w.grid.Count(), w.rules.Name)
	return w, nil
}

func (w *World) bindMetrics() {
	if w.registry == nil {
		return
	}
	w.statTurns = w.registry.Ints.Get("world.turns")
	w.statEntity = w.registry.Ints.Get("world.entities")
	w.statEnergy = w.registry.Floats.Get("energy.total")
	w.statStarved = w.registry.Ints.Get("deaths.starved")
	w.statEaten = w.registry.Ints.Get("deaths.eaten")
	w.statMoves = w.registry.Ints.Get("moves")
}

// Turn advances the simulation by one tick
// Every acting entity gets at most one action; identity is tracked so an
// entity moved ahead of the scan is not asked again when the scan reaches it
func (w *World) Turn() {
	acted := mapset.New[*Entity]()
	w.grid.ForEach(func(e *Entity, at core.Point) {
		if !e.Kind.Acts() || acted.Has(e) {
			return
		}
		acted.Put(e)
		w.letAct(e, at)
	})
	w.turn++
	w.publishStats()
}

// letAct runs one decide-resolve step for e, currently standing at at
func (w *World) letAct(e *Entity, at core.Point) {
	handled := false
	if action, ok := e.Decide(newView(w, at)); ok {
		if h, found := w.rules.Handler(action.Type); found {
			handled = h(w, e, at, action)
		}
	}
	if handled || !w.rules.Metabolic {
		return
	}

	e.Energy -= w.rules.Rules.IdlePenalty
	if e.Energy <= 0 {
		w.grid.Set(at, nil)
		w.emit(Event{Type: EventStarved, ID: e.ID, Glyph: e.Glyph, From: at, To: at})
	}
}

// relocate moves e between cells, both must be inside and dest empty
func (w *World) relocate(e *Entity, from, to core.Point) {
	w.grid.Set(from, nil)
	w.grid.Set(to, e)
	w.emit(Event{Type: EventMoved, ID: e.ID, Glyph: e.Glyph, From: from, To: to})
}

func (w *World) emit(ev Event) {
	ev.Turn = w.turn
	if w.registry != nil {
		switch ev.Type {
		case EventBorn:
			w.registry.Ints.Get("births." + string(ev.Glyph)).Add(1)
		case EventAte:
			w.statEaten.Add(1)
		case EventStarved:
			w.statStarved.Add(1)
		case EventMoved:
			w.statMoves.Add(1)
		}
	}
	if w.observer != nil {
		w.observer(ev)
	}
}

func (w *World) publishStats() {
	if w.registry == nil {
		return
	}
	w.statTurns.Store(w.turn)
	w.statEntity.Store(int64(w.grid.Count()))
	w.statEnergy.Set(w.TotalEnergy())
	pop := w.Population()
	for glyph := range w.legend {
		w.registry.Ints.Get("population." + string(glyph)).Store(int64(pop[glyph]))
	}
}

// Frame captures the current board for renderers
func (w *World) Frame() Frame {
	f := Frame{
		Turn:       w.turn,
		Width:      w.grid.Width,
		Height:     w.grid.Height,
		Rows:       w.Rows(),
		Population: w.Population(),
		Energy:     w.TotalEnergy(),
	}
	if w.registry != nil {
		f.Stats = w.registry.Snapshot()
	}
	return f
}

// Grid exposes the board for inspection
func (w *World) Grid() *Grid {
	return w.grid
}

// Legend returns the glyph table the world was built with
func (w *World) Legend() Legend {
	return w.legend
}

// Rules returns the active rule set
func (w *World) Rules() *RuleSet {
	return w.rules
}

// TurnCount returns how many turns have completed
func (w *World) TurnCount() int64 {
	return w.turn
}

// Population counts living entities per glyph, walls included
func (w *World) Population() map[rune]int {
	pop := make(map[rune]int)
	w.grid.ForEach(func(e *Entity, _ core.Point) {
		pop[e.Glyph]++
	})
	return pop
}

// TotalEnergy sums the energy of every energetic entity
func (w *World) TotalEnergy() float64 {
	total := 0.0
	w.grid.ForEach(func(e *Entity, _ core.Point) {
		if e.Kind.HasEnergy() {
			total += e.Energy
		}
	})
	return total
}

// Rows renders each grid row as a string of glyphs
func (w *World) Rows() []string {
	rows := make([]string, w.grid.Height)
	var b strings.Builder
	for y := 0; y < w.grid.Height; y++ {
		b.Reset()
		for x := 0; x < w.grid.Width; x++ {
			if e := w.grid.Get(core.Point{X: x, Y: y}); e != nil {
				b.WriteRune(e.Glyph)
			} else {
				b.WriteRune(core.GlyphEmpty)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the board, one newline-terminated line per row
func (w *World) String() string {
	var b strings.Builder
	for _, row := range w.Rows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}
