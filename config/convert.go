package config

import (
	"fmt"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/maze"
	"github.com/lixenwraith/vi-life/parameter"
)

// Tuning converts the species section
func (c *Config) Tuning() engine.Tuning {
	s := c.Species
	t := engine.Tuning{
		PlantEnergyMin:           s.PlantEnergyMin,
		PlantEnergySpan:          s.PlantEnergySpan,
		PlantReproduceAbove:      s.PlantReproduceAbove,
		PlantGrowBelow:           s.PlantGrowBelow,
		PlantEaterEnergy:         s.PlantEaterEnergy,
		PlantEaterReproduceAbove: s.PlantEaterReproduceAbove,
		WallFollowerEnergy:       s.WallFollowerEnergy,
		PreyGlyph:                core.GlyphPlant,
	}
	if r := []rune(s.PreyGlyph); len(r) == 1 {
		t.PreyGlyph = r[0]
	}
	return t
}

// RuleSet builds the configured rule set
func (c *Config) RuleSet() *engine.RuleSet {
	if c.Simulation.Rules == parameter.RulesBase {
		return engine.BaseRules()
	}
	return engine.LifelikeRules(engine.Rules{
		GrowGain:            c.Rules.GrowGain,
		MoveCost:            c.Rules.MoveCost,
		ReproduceCostFactor: c.Rules.ReproduceCostFactor,
		IdlePenalty:         c.Rules.IdlePenalty,
	})
}

// EngineLegend resolves the glyph -> kind table
func (c *Config) EngineLegend() (engine.Legend, error) {
	tuning := c.Tuning()
	legend := make(engine.Legend, len(c.Legend))
	for glyph, name := range c.Legend {
		r := []rune(glyph)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: legend key %q must be one character", ErrInvalid, glyph)
		}
		if r[0] == core.GlyphEmpty {
			return nil, fmt.Errorf("%w: legend cannot map the empty glyph", ErrInvalid)
		}
		kind, ok := engine.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("%w: legend %q names unknown kind %q", ErrInvalid, glyph, name)
		}
		legend[r[0]] = engine.KindFactory(kind, tuning)
	}
	return legend, nil
}

// BoardRows returns the configured rows or generates a board from seed
func (c *Config) BoardRows(seed int64) []string {
	g := c.Board.Generate
	if g == nil {
		return c.Board.Rows
	}
	return maze.Generate(maze.Config{
		Width:     g.Width,
		Height:    g.Height,
		Braiding:  g.Braiding,
		Openness:  g.Openness,
		Plants:    g.Plants,
		Eaters:    g.Eaters,
		Followers: g.Followers,
		Seed:      seed,
	})
}

// DefaultGenerate returns a generate block with parameter defaults
func DefaultGenerate() *Generate {
	return &Generate{
		Width:     parameter.GenerateWidth,
		Height:    parameter.GenerateHeight,
		Braiding:  parameter.GenerateBraiding,
		Openness:  parameter.GenerateOpenness,
		Plants:    parameter.GeneratePlantDensity,
		Eaters:    parameter.GenerateEaterDensity,
		Followers: parameter.GenerateFollowerCount,
	}
}
