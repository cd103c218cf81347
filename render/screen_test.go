package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-life/parameter"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	sc, err := NewScreenOn(sim)
	if err != nil {
		t.Fatalf("NewScreenOn failed: %v", err)
	}
	sim.SetSize(60, 10)
	t.Cleanup(sc.Close)
	return sc, sim
}

func rowText(sim tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestScreenDrawsBoardAndStatus(t *testing.T) {
	sc, sim := newTestScreen(t)

	if err := sc.Publish(testFrame(4)); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if got := rowText(sim, 1, 3); got != "#O*" {
		t.Errorf("Expected board row %q, got %q", "#O*", got)
	}

	ch, _, style, _ := sim.GetContent(1, 1)
	if ch != 'O' {
		t.Fatalf("Expected 'O' at (1,1), got %q", ch)
	}
	fgColor, _, _ := style.Decompose()
	want := tcell.NewRGBColor(parameter.ColorPlantEater[0], parameter.ColorPlantEater[1], parameter.ColorPlantEater[2])
	if fgColor != want {
		t.Errorf("Expected plant eater color %v, got %v", want, fgColor)
	}

	status := rowText(sim, 2, 60)
	if !strings.HasPrefix(status, "turn 4") {
		t.Errorf("Expected status bar below board, got %q", status)
	}
	if strings.Contains(status, "[paused]") {
		t.Error("Expected no pause marker")
	}

	sc.SetPaused(true)
	if status := rowText(sim, 2, 60); !strings.Contains(status, "[paused]") {
		t.Errorf("Expected pause marker, got %q", status)
	}
}

func TestScreenUnknownGlyphUsesFallback(t *testing.T) {
	sc, sim := newTestScreen(t)

	f := testFrame(0)
	f.Rows = []string{"@"}
	if err := sc.Publish(f); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	_, _, style, _ := sim.GetContent(0, 0)
	fgColor, _, _ := style.Decompose()
	want := tcell.NewRGBColor(parameter.ColorUnknown[0], parameter.ColorUnknown[1], parameter.ColorUnknown[2])
	if fgColor != want {
		t.Errorf("Expected fallback color %v, got %v", want, fgColor)
	}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Command
		ok   bool
	}{
		{tcell.KeyRune, 'q', CommandQuit, true},
		{tcell.KeyEscape, 0, CommandQuit, true},
		{tcell.KeyCtrlC, 0, CommandQuit, true},
		{tcell.KeyRune, ' ', CommandPause, true},
		{tcell.KeyRune, 'n', CommandStep, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyUp, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := commandFor(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("key %v rune %q: expected (%v, %v), got (%v, %v)", tt.key, tt.r, tt.want, tt.ok, got, ok)
		}
	}
}

func TestScreenKeysBecomeCommands(t *testing.T) {
	sc, sim := newTestScreen(t)

	sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	for _, want := range []Command{CommandStep, CommandQuit} {
		select {
		case got := <-sc.Commands():
			if got != want {
				t.Errorf("Expected %v, got %v", want, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Timed out waiting for %v", want)
		}
	}
}
