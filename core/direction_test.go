package core

import (
	"testing"
	"time"
)

func TestDirectionRotate(t *testing.T) {
	tests := []struct {
		from Direction
		n    int
		want Direction
	}{
		{North, 1, NorthEast},
		{North, -1, NorthWest},
		{South, -3, NorthEast},
		{South, -2, East},
		{NorthWest, 1, North},
		{East, 8, East},
		{East, -8, East},
		{West, -11, SouthEast},
		{SouthWest, 17, West},
	}

	for _, tt := range tests {
		if got := tt.from.Rotate(tt.n); got != tt.want {
			t.Errorf("%s.Rotate(%d): expected %s, got %s", tt.from, tt.n, tt.want, got)
		}
	}
}

func TestDirectionOffsets(t *testing.T) {
	expected := map[string]Point{
		"n": {0, -1}, "ne": {1, -1}, "e": {1, 0}, "se": {1, 1},
		"s": {0, 1}, "sw": {-1, 1}, "w": {-1, 0}, "nw": {-1, -1},
	}

	for _, d := range Directions {
		want, ok := expected[d.String()]
		if !ok {
			t.Fatalf("Unexpected direction name %q", d.String())
		}
		if d.Offset() != want {
			t.Errorf("Direction %s: expected offset %v, got %v", d, want, d.Offset())
		}
	}
}

func TestDirectionOppositeCancels(t *testing.T) {
	origin := Point{5, 5}
	for _, d := range Directions {
		back := origin.Step(d).Step(d.Rotate(4))
		if back != origin {
			t.Errorf("Stepping %s then its opposite landed on %v", d, back)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q): expected %s, got %s (ok=%v)", d.String(), d, got, ok)
		}
	}
	if _, ok := ParseDirection("up"); ok {
		t.Error("Expected unknown name to fail")
	}
}

func TestNewRandSeeded(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("Expected equal seeds to produce equal sequences")
		}
	}
}

func TestGoRecoversPanic(t *testing.T) {
	got := make(chan any, 1)
	SetCrashHandler(func(r any) { got <- r })
	defer SetCrashHandler(nil)

	Go(func() { panic("boom") })

	select {
	case r := <-got:
		if r != "boom" {
			t.Errorf("Expected recovered value boom, got %v", r)
		}
	case <-time.After(time.Second):
		t.Fatal("Crash handler was not invoked")
	}
}
