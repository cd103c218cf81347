package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
)

func testFrame(turn int64) engine.Frame {
	return engine.Frame{
		Turn:       turn,
		Width:      3,
		Height:     2,
		Rows:       []string{"###", "#O*"},
		Population: map[rune]int{'#': 4, 'O': 1, '*': 1},
		Energy:     23,
	}
}

func TestPlainPublish(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)

	if err := p.Publish(testFrame(3)); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	want := "turn 3  #:4  *:1  O:1  energy 23.0\n###\n#O*\n\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestLiveRewritesInPlace(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf)

	if err := l.Publish(testFrame(1)); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	first := buf.String()
	if !strings.HasPrefix(first, "###\n#O*\n") || !strings.Contains(first, "turn 1") {
		t.Errorf("Unexpected first frame %q", first)
	}
	if strings.Contains(first, "\x1b[") {
		t.Error("Expected no erase sequence before anything was drawn")
	}

	if err := l.Publish(testFrame(2)); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	second := buf.String()[len(first):]
	if !strings.Contains(second, "\x1b[") {
		t.Error("Expected the previous frame to be erased")
	}
	if !strings.Contains(second, "turn 2") {
		t.Errorf("Expected second frame, got %q", second)
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		mode string
		tty  bool
		want string
	}{
		{parameter.RenderAuto, true, parameter.RenderTcell},
		{parameter.RenderAuto, false, parameter.RenderText},
		{parameter.RenderText, true, parameter.RenderText},
		{parameter.RenderTcell, false, parameter.RenderTcell},
		{parameter.RenderNone, true, parameter.RenderNone},
	}
	for _, tt := range tests {
		if got := ResolveMode(tt.mode, tt.tty); got != tt.want {
			t.Errorf("ResolveMode(%q, %v) = %q, want %q", tt.mode, tt.tty, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("Expected a regular file not to be a terminal")
	}
	if IsTerminal(nil) {
		t.Error("Expected nil not to be a terminal")
	}
}
