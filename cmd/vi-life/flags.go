package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-life/config"
)

// cliFlags holds command-line values, only flags given explicitly override the config file
type cliFlags struct {
	configPath string
	seed       int64
	turns      int64
	interval   time.Duration
	render     string
	rules      string
	generate   string
	sound      bool
	serve      string
	debug      bool

	set map[string]bool
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("vi-life", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "TOML config file")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed, 0 picks one from the clock")
	fs.Int64Var(&f.turns, "turns", 0, "Stop after this many turns, 0 runs until quit")
	fs.DurationVar(&f.interval, "interval", 0, "Time between turns")
	fs.StringVar(&f.render, "render", "", "Output: auto, tcell, text, none")
	fs.StringVar(&f.rules, "rules", "", "Rule set: lifelike, base")
	fs.StringVar(&f.generate, "generate", "", "Generate a WxH board instead of the configured rows")
	fs.BoolVar(&f.sound, "sound", false, "Play cues for births, predation and starvation")
	fs.StringVar(&f.serve, "serve", "", "Serve spectators on this address, e.g. :8080")
	fs.BoolVar(&f.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return f, nil
}

// loadConfig reads the config file if one was given
func (f *cliFlags) loadConfig() (*config.Config, error) {
	if f.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(f.configPath)
}

// apply overrides cfg with explicit flags and revalidates
func (f *cliFlags) apply(cfg *config.Config) error {
	if f.set["seed"] {
		cfg.Simulation.Seed = f.seed
	}
	if f.set["turns"] {
		cfg.Simulation.Turns = f.turns
	}
	if f.set["interval"] {
		cfg.Simulation.Interval = config.Duration{Duration: f.interval}
	}
	if f.set["render"] {
		cfg.Render.Mode = f.render
	}
	if f.set["rules"] {
		cfg.Simulation.Rules = f.rules
	}
	if f.set["sound"] {
		cfg.Audio.Enabled = f.sound
	}
	if f.set["serve"] {
		cfg.Spectate.Addr = f.serve
	}
	if f.set["debug"] {
		cfg.Debug = f.debug
	}
	if f.set["generate"] {
		w, h, err := parseSize(f.generate)
		if err != nil {
			return err
		}
		g := cfg.Board.Generate
		if g == nil {
			g = config.DefaultGenerate()
		}
		g.Width, g.Height = w, h
		cfg.Board.Generate = g
	}
	return cfg.Validate()
}

// parseSize reads "WxH"
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: width: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: height: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return w, h, nil
}
