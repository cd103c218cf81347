package engine

import (
	"testing"

	"github.com/lixenwraith/vi-life/core"
)

const testSeed = 7

// newTestWorld builds a seeded lifelike world or fails the test
func newTestWorld(t *testing.T, rows []string, opts ...Option) *World {
	t.Helper()
	opts = append([]Option{WithRand(core.NewRand(testSeed))}, opts...)
	w, err := NewWorld(rows, NewLegend(DefaultTuning()), opts...)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func at(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}

// mustGet returns the occupant at p or fails the test
func mustGet(t *testing.T, w *World, p core.Point) *Entity {
	t.Helper()
	e := w.Grid().Get(p)
	if e == nil {
		t.Fatalf("Expected entity at %v, found empty cell", p)
	}
	return e
}
