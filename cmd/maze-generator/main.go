package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-life/maze"
	"github.com/lixenwraith/vi-life/parameter"
)

// boardFile is the [board] table of a vi-life config
type boardFile struct {
	Board struct {
		Rows []string `toml:"rows"`
	} `toml:"board"`
}

func main() {
	cfg := maze.Config{}
	asTOML := flag.Bool("toml", false, "Print a [board] table to paste into a config file")
	flag.IntVar(&cfg.Width, "width", parameter.GenerateWidth, "Board width, rounded down to odd")
	flag.IntVar(&cfg.Height, "height", parameter.GenerateHeight, "Board height, rounded down to odd")
	flag.Float64Var(&cfg.Braiding, "braiding", parameter.GenerateBraiding, "Chance a dead end is opened [0.0 - 1.0]")
	flag.Float64Var(&cfg.Openness, "openness", parameter.GenerateOpenness, "Chance an interior wall is removed [0.0 - 1.0]")
	flag.Float64Var(&cfg.Plants, "plants", parameter.GeneratePlantDensity, "Fraction of open cells seeded with plants")
	flag.Float64Var(&cfg.Eaters, "eaters", parameter.GenerateEaterDensity, "Fraction of open cells seeded with plant eaters")
	flag.IntVar(&cfg.Followers, "followers", parameter.GenerateFollowerCount, "Number of wall followers")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed, 0 picks one from the clock")
	flag.Parse()

	if err := writeBoard(os.Stdout, maze.Generate(cfg), *asTOML); err != nil {
		fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
		os.Exit(1)
	}
}

func writeBoard(w io.Writer, rows []string, asTOML bool) error {
	if !asTOML {
		_, err := io.WriteString(w, strings.Join(rows, "\n")+"\n")
		return err
	}

	var f boardFile
	f.Board.Rows = rows
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return nil
}
