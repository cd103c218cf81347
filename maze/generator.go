// Package maze generates starting boards: a carved labyrinth of walls with
// species scattered over the open cells
package maze

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-life/core"
)

// Cell types
const (
	Wall    = true
	Passage = false
)

type Point struct {
	X, Y int
}

type Config struct {
	Width, Height int

	// Braiding: 0.0 (tree, many dead ends) to 1.0 (every dead end opened into a loop)
	Braiding float64

	// Openness is the chance each interior wall is knocked out after carving,
	// turning corridors into rooms the species can spread through
	Openness float64

	// Plants and Eaters are fractions of the open cells to populate
	Plants float64
	Eaters float64

	// Followers is an absolute count of wall followers
	Followers int

	Seed int64 // Optional (0 = Random)
}

// Generate returns the board as glyph rows, bordered by walls
// Dimensions are rounded down to odd numbers with a floor of 5
func Generate(cfg Config) []string {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
		for j := range grid[i] {
			grid[i][j] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	recursiveBacktracker(grid, Point{1, 1}, rng)
	if cfg.Braiding > 0 {
		braid(grid, cfg.Braiding, rng)
	}
	if cfg.Openness > 0 {
		erode(grid, cfg.Openness, rng)
	}

	board := make([][]rune, rows)
	for y := range grid {
		board[y] = make([]rune, cols)
		for x, wall := range grid[y] {
			if wall {
				board[y][x] = core.GlyphWall
			} else {
				board[y][x] = core.GlyphEmpty
			}
		}
	}
	populate(board, grid, cfg, rng)

	out := make([]string, rows)
	for y := range board {
		out[y] = string(board[y])
	}
	return out
}

func ensureOdd(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// recursiveBacktracker carves a spanning tree over the odd-indexed rooms
func recursiveBacktracker(grid [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []Point{start}
	grid[start.Y][start.X] = Passage

	dirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	candidates := make([]Point, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = Passage
		next := Point{curr.X + d.X, curr.Y + d.Y}
		grid[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid opens dead ends into a neighbouring corridor with the given probability
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	steps := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			exits := 0
			for _, d := range steps {
				if grid[y+d.Y][x+d.X] == Passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			walls := make([]Point, 0, 3)
			for _, d := range steps {
				wx, wy := x+d.X, y+d.Y
				nx, ny := x+2*d.X, y+2*d.Y
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if grid[wy][wx] == Wall {
					walls = append(walls, Point{wx, wy})
				}
			}
			if len(walls) > 0 {
				w := walls[rng.Intn(len(walls))]
				grid[w.Y][w.X] = Passage
			}
		}
	}
}

// erode knocks out interior walls, the border always stays solid
func erode(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			if grid[y][x] == Wall && rng.Float64() < probability {
				grid[y][x] = Passage
			}
		}
	}
}

// populate scatters species over passages, followers first so they get a spot
func populate(board [][]rune, grid [][]bool, cfg Config, rng *rand.Rand) {
	var open []Point
	for y := range grid {
		for x, wall := range grid[y] {
			if !wall {
				open = append(open, Point{x, y})
			}
		}
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	place := func(glyph rune, n int) {
		for ; n > 0 && len(open) > 0; n-- {
			p := open[0]
			open = open[1:]
			board[p.Y][p.X] = glyph
		}
	}

	total := float64(len(open))
	eaters := int(math.Round(cfg.Eaters * total))
	plants := int(math.Round(cfg.Plants * total))

	place(core.GlyphWallFollower, cfg.Followers)
	place(core.GlyphPlantEater, eaters)
	place(core.GlyphPlant, plants)
}
