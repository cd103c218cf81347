// Package render hosts the world on a terminal: a full-screen tcell view,
// an in-place text view, or plain frames for pipes and logs
package render

import (
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
)

// Sink consumes published frames
type Sink = engine.FrameSink

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ResolveMode turns the configured mode into a concrete one
// auto picks tcell on a terminal and text otherwise
func ResolveMode(mode string, tty bool) string {
	if mode != parameter.RenderAuto {
		return mode
	}
	if tty {
		return parameter.RenderTcell
	}
	return parameter.RenderText
}
