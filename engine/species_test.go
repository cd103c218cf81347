package engine

import (
	"testing"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/parameter"
)

func TestSpawnInitialEnergy(t *testing.T) {
	tuning := DefaultTuning()
	r := core.NewRand(testSeed)
	for i := 0; i < 200; i++ {
		p := tuning.spawn(KindPlant, r)
		if p.Energy < parameter.PlantEnergyMin || p.Energy >= parameter.PlantEnergyMin+parameter.PlantEnergySpan {
			t.Fatalf("Plant energy %v outside [3,7)", p.Energy)
		}
	}
	if e := tuning.spawn(KindPlantEater, r); e.Energy != parameter.PlantEaterEnergy {
		t.Errorf("Expected eater energy %v, got %v", parameter.PlantEaterEnergy, e.Energy)
	}
	if f := tuning.spawn(KindWallFollower, r); f.Facing != core.South {
		t.Errorf("Expected follower to face south, got %s", f.Facing)
	}
	if w := tuning.spawn(KindWall, r); w.Kind.Acts() || w.Kind.HasEnergy() {
		t.Error("Expected wall to be inert")
	}
}

func TestPlantDecisions(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		energy float64
		want   ActionType
		acts   bool
	}{
		{"young plant grows", []string{"#*#"}, 5, ActionGrow, true},
		{"ripe plant seeds", []string{"#* "}, 16, ActionReproduce, true},
		{"ripe crowded plant grows", []string{"#*#"}, 16, ActionGrow, true},
		{"exactly threshold grows", []string{"#* "}, 15, ActionGrow, true},
		{"full crowded plant idles", []string{"#*#"}, 20, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.rows)
			p := mustGet(t, w, at(1, 0))
			p.Energy = tt.energy

			a, ok := p.Decide(newView(w, at(1, 0)))
			if ok != tt.acts {
				t.Fatalf("Expected acts=%v, got %v (%s)", tt.acts, ok, a)
			}
			if ok && a.Type != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, a.Type)
			}
			if a.Type == ActionReproduce && a.Dir != core.East {
				t.Errorf("Expected seed toward the only gap, got %s", a.Dir)
			}
		})
	}
}

func TestPlantEaterDecisions(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		energy float64
		want   Action
		acts   bool
	}{
		{"fat eater reproduces", []string{"#O "}, 61, Reproduce(core.East), true},
		{"fat crowded eater eats", []string{"#O*"}, 61, Eat(core.East), true},
		{"hungry eater eats", []string{" O*"}, 20, Eat(core.East), true},
		{"hungry eater wanders", []string{"#O "}, 20, Move(core.East), true},
		{"boxed eater idles", []string{"#O#"}, 20, Action{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.rows)
			e := mustGet(t, w, at(1, 0))
			e.Energy = tt.energy

			a, ok := e.Decide(newView(w, at(1, 0)))
			if ok != tt.acts {
				t.Fatalf("Expected acts=%v, got %v (%s)", tt.acts, ok, a)
			}
			if ok && a != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, a)
			}
		})
	}
}

// walkFollower runs turns and records where the follower stands after each
func walkFollower(t *testing.T, rows []string, turns int) []core.Point {
	t.Helper()
	w := newTestWorld(t, rows, WithRules(BaseRules()))
	var follower *Entity
	w.Grid().ForEach(func(e *Entity, _ core.Point) {
		if e.Kind == KindWallFollower {
			follower = e
		}
	})
	if follower == nil {
		t.Fatal("No follower on the board")
	}

	path := make([]core.Point, 0, turns)
	for i := 0; i < turns; i++ {
		w.Turn()
		p, ok := w.Grid().Locate(follower)
		if !ok {
			t.Fatalf("Follower vanished on turn %d", i)
		}
		path = append(path, p)
	}
	return path
}

func TestWallFollowerStraightCorridor(t *testing.T) {
	path := walkFollower(t, []string{
		"#######",
		"#~    #",
		"#######",
	}, 8)

	want := []core.Point{at(2, 1), at(3, 1), at(4, 1), at(5, 1), at(4, 1), at(3, 1), at(2, 1), at(1, 1)}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("Step %d: expected %v, got %v (path %v)", i, want[i], path[i], path)
		}
	}
}

func TestWallFollowerTurnsCorner(t *testing.T) {
	path := walkFollower(t, []string{
		"#####",
		"#~###",
		"# ###",
		"#   #",
		"#####",
	}, 3)

	want := []core.Point{at(1, 2), at(2, 3), at(3, 3)}
	prev := at(1, 1)
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("Step %d: expected %v, got %v (path %v)", i, want[i], path[i], path)
		}
		dx, dy := path[i].X-prev.X, path[i].Y-prev.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Errorf("Step %d jumped from %v to %v", i, prev, path[i])
		}
		prev = path[i]
	}
}

func TestWallFollowerBoxedKeepsFacing(t *testing.T) {
	w := newTestWorld(t, []string{
		"###",
		"#~#",
		"###",
	}, WithRules(BaseRules()))
	f := mustGet(t, w, at(1, 1))

	a, ok := f.Decide(newView(w, at(1, 1)))
	if !ok || a.Type != ActionMove {
		t.Fatalf("Expected a move even when boxed, got %s ok=%v", a, ok)
	}
	// Blocked behind-right turns it to east, a full sweep lands back there
	if f.Facing != core.East || a.Dir != core.East {
		t.Errorf("Expected to settle facing east, got facing %s move %s", f.Facing, a.Dir)
	}

	w.Turn()
	if w.Grid().Get(at(1, 1)) != f {
		t.Error("Expected boxed follower to stay in place")
	}
}
