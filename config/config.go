// Package config loads simulation settings from TOML on top of the defaults
// in package parameter
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
)

var ErrInvalid = errors.New("invalid config")

// Config is the root of a vi-life TOML file
type Config struct {
	Simulation Simulation        `toml:"simulation"`
	Rules      Rules             `toml:"rules"`
	Species    Species           `toml:"species"`
	Legend     map[string]string `toml:"legend"`
	Board      Board             `toml:"board"`
	Render     Render            `toml:"render"`
	Audio      Audio             `toml:"audio"`
	Spectate   Spectate          `toml:"spectate"`
	Debug      bool              `toml:"debug"`
}

type Simulation struct {
	Seed     int64    `toml:"seed"`
	Turns    int64    `toml:"turns"`
	Interval Duration `toml:"interval"`
	Rules    string   `toml:"rules"`
}

type Rules struct {
	GrowGain            float64 `toml:"grow_gain"`
	MoveCost            float64 `toml:"move_cost"`
	ReproduceCostFactor float64 `toml:"reproduce_cost_factor"`
	IdlePenalty         float64 `toml:"idle_penalty"`
}

type Species struct {
	PlantEnergyMin           float64 `toml:"plant_energy_min"`
	PlantEnergySpan          float64 `toml:"plant_energy_span"`
	PlantReproduceAbove      float64 `toml:"plant_reproduce_above"`
	PlantGrowBelow           float64 `toml:"plant_grow_below"`
	PlantEaterEnergy         float64 `toml:"plant_eater_energy"`
	PlantEaterReproduceAbove float64 `toml:"plant_eater_reproduce_above"`
	WallFollowerEnergy       float64 `toml:"wall_follower_energy"`
	PreyGlyph                string  `toml:"prey_glyph"`
}

// Board is either explicit rows or a generate block
type Board struct {
	Rows     []string  `toml:"rows"`
	Generate *Generate `toml:"generate"`
}

type Generate struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Braiding  float64 `toml:"braiding"`
	Openness  float64 `toml:"openness"`
	Plants    float64 `toml:"plant_density"`
	Eaters    float64 `toml:"eater_density"`
	Followers int     `toml:"followers"`
}

type Render struct {
	Mode string `toml:"mode"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
}

type Spectate struct {
	Addr string `toml:"addr"`
}

// Duration decodes TOML strings such as "250ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the classic valley under lifelike rules
func Default() *Config {
	return &Config{
		Simulation: Simulation{
			Interval: Duration{parameter.TurnInterval},
			Rules:    parameter.RulesLifelike,
		},
		Rules: Rules{
			GrowGain:            parameter.GrowGain,
			MoveCost:            parameter.MoveCost,
			ReproduceCostFactor: parameter.ReproduceCostFactor,
			IdlePenalty:         parameter.IdlePenalty,
		},
		Species: Species{
			PlantEnergyMin:           parameter.PlantEnergyMin,
			PlantEnergySpan:          parameter.PlantEnergySpan,
			PlantReproduceAbove:      parameter.PlantReproduceAbove,
			PlantGrowBelow:           parameter.PlantGrowBelow,
			PlantEaterEnergy:         parameter.PlantEaterEnergy,
			PlantEaterReproduceAbove: parameter.PlantEaterReproduceAbove,
			WallFollowerEnergy:       parameter.WallFollowerEnergy,
			PreyGlyph:                "*",
		},
		Legend: map[string]string{
			"#": "wall",
			"*": "plant",
			"O": "planteater",
			"~": "wallfollower",
		},
		Board: Board{
			Rows: append([]string(nil), parameter.Valley...),
		},
		Render: Render{Mode: parameter.RenderAuto},
	}
}

// Load reads path over the defaults and validates the result
// Keys the schema does not know are rejected so typos do not go unnoticed
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Simulation.Rules {
	case parameter.RulesLifelike, parameter.RulesBase:
	default:
		fail("simulation.rules %q, want %s or %s", c.Simulation.Rules, parameter.RulesLifelike, parameter.RulesBase)
	}
	if c.Simulation.Turns < 0 {
		fail("simulation.turns %d is negative", c.Simulation.Turns)
	}
	if c.Simulation.Interval.Duration < 0 {
		fail("simulation.interval %s is negative", c.Simulation.Interval)
	}

	switch c.Render.Mode {
	case parameter.RenderAuto, parameter.RenderTcell, parameter.RenderText, parameter.RenderNone:
	default:
		fail("render.mode %q", c.Render.Mode)
	}

	for name, v := range map[string]float64{
		"rules.grow_gain":             c.Rules.GrowGain,
		"rules.move_cost":             c.Rules.MoveCost,
		"rules.reproduce_cost_factor": c.Rules.ReproduceCostFactor,
		"rules.idle_penalty":          c.Rules.IdlePenalty,
		"species.plant_energy_min":    c.Species.PlantEnergyMin,
		"species.plant_energy_span":   c.Species.PlantEnergySpan,
		"species.plant_eater_energy":  c.Species.PlantEaterEnergy,
	} {
		if v < 0 {
			fail("%s %v is negative", name, v)
		}
	}
	if len([]rune(c.Species.PreyGlyph)) != 1 {
		fail("species.prey_glyph %q must be one character", c.Species.PreyGlyph)
	} else if name, ok := c.Legend[c.Species.PreyGlyph]; !ok {
		fail("species.prey_glyph %q is not in the legend", c.Species.PreyGlyph)
	} else if kind, _ := engine.ParseKind(name); kind != engine.KindPlant {
		fail("species.prey_glyph %q maps to %q, want plant", c.Species.PreyGlyph, name)
	}

	if _, err := c.EngineLegend(); err != nil {
		errs = append(errs, err)
	}

	if g := c.Board.Generate; g != nil {
		if g.Width < 5 || g.Height < 5 {
			fail("board.generate %dx%d is smaller than 5x5", g.Width, g.Height)
		}
		if g.Braiding < 0 || g.Braiding > 1 || g.Openness < 0 || g.Openness > 1 {
			fail("board.generate braiding and openness must be within [0,1]")
		}
		if g.Plants < 0 || g.Eaters < 0 || g.Plants+g.Eaters > 1 {
			fail("board.generate densities must be non-negative and sum to at most 1")
		}
	} else if len(c.Board.Rows) == 0 {
		fail("board has neither rows nor generate")
	}

	return errors.Join(errs...)
}
