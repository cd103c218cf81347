package engine

import (
	"testing"

	"github.com/lixenwraith/vi-life/core"
)

func TestGridIsInside(t *testing.T) {
	g := NewGrid(4, 3)
	tests := []struct {
		p    core.Point
		want bool
	}{
		{at(0, 0), true},
		{at(3, 2), true},
		{at(4, 0), false},
		{at(0, 3), false},
		{at(-1, 1), false},
		{at(1, -1), false},
	}
	for _, tt := range tests {
		if got := g.IsInside(tt.p); got != tt.want {
			t.Errorf("IsInside(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestGridGetOutsidePanics(t *testing.T) {
	g := NewGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("Expected Get outside bounds to panic")
		}
	}()
	g.Get(at(2, 0))
}

func TestGridForEachRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	a, b, c := &Entity{Glyph: 'a'}, &Entity{Glyph: 'b'}, &Entity{Glyph: 'c'}
	g.Set(at(2, 1), c)
	g.Set(at(0, 1), b)
	g.Set(at(1, 0), a)

	var order []rune
	var points []core.Point
	g.ForEach(func(e *Entity, p core.Point) {
		order = append(order, e.Glyph)
		points = append(points, p)
	})

	if string(order) != "abc" {
		t.Errorf("Expected visit order abc, got %s", string(order))
	}
	wantPoints := []core.Point{at(1, 0), at(0, 1), at(2, 1)}
	for i, p := range wantPoints {
		if points[i] != p {
			t.Errorf("Visit %d: expected %v, got %v", i, p, points[i])
		}
	}
}

func TestGridForEachSeesVisitorMutations(t *testing.T) {
	g := NewGrid(3, 1)
	first, victim, mover := &Entity{Glyph: '1'}, &Entity{Glyph: 'v'}, &Entity{Glyph: 'm'}
	g.Set(at(0, 0), first)
	g.Set(at(1, 0), victim)

	var seen []rune
	g.ForEach(func(e *Entity, p core.Point) {
		seen = append(seen, e.Glyph)
		if e == first {
			// Remove the next cell and drop a new entity further along
			g.Set(at(1, 0), nil)
			g.Set(at(2, 0), mover)
		}
	})

	if string(seen) != "1m" {
		t.Errorf("Expected scan to skip cleared cell and reach new one, got %q", string(seen))
	}
}

func TestGridCountAndLocate(t *testing.T) {
	g := NewGrid(3, 3)
	e := &Entity{Glyph: 'x'}
	g.Set(at(2, 1), e)
	g.Set(at(0, 0), &Entity{Glyph: 'y'})

	if g.Count() != 2 {
		t.Errorf("Expected 2 occupied, got %d", g.Count())
	}
	p, ok := g.Locate(e)
	if !ok || p != at(2, 1) {
		t.Errorf("Expected Locate at (2,1), got %v ok=%v", p, ok)
	}
	if _, ok := g.Locate(&Entity{}); ok {
		t.Error("Expected Locate to miss an entity not on the grid")
	}
}
