package main

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-life/config"
	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/status"
)

// resolveSeed fixes a clock seed up front so the board and the run share it
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// buildWorld assembles the world described by cfg
func buildWorld(cfg *config.Config, seed int64, reg *status.Registry, observers ...engine.Observer) (*engine.World, error) {
	legend, err := cfg.EngineLegend()
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{
		engine.WithRules(cfg.RuleSet()),
		engine.WithRand(core.NewRand(seed)),
		engine.WithRegistry(reg),
	}
	if obs := fanOut(observers); obs != nil {
		opts = append(opts, engine.WithObserver(obs))
	}

	return engine.NewWorld(cfg.BoardRows(seed), legend, opts...)
}

// fanOut merges observers, nil when there are none
func fanOut(observers []engine.Observer) engine.Observer {
	var live []engine.Observer
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(ev engine.Event) {
		for _, o := range live {
			o(ev)
		}
	}
}

// logEvent traces births and deaths, moves are too frequent to be useful
func logEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventBorn:
		log.Printf("turn %d: %c %s born at %s", ev.Turn, ev.Glyph, ev.ID, ev.To)
	case engine.EventAte:
		log.Printf("turn %d: %c %s at %s ate %c at %s", ev.Turn, ev.Glyph, ev.ID, ev.From, ev.Victim, ev.To)
	case engine.EventStarved:
		log.Printf("turn %d: %c %s starved at %s", ev.Turn, ev.Glyph, ev.ID, ev.From)
	}
}
