package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
)

// Command is a user request read from the keyboard
type Command uint8

const (
	CommandQuit Command = iota
	CommandPause
	CommandStep
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandPause:
		return "pause"
	case CommandStep:
		return "step"
	default:
		return "unknown"
	}
}

// Screen draws frames full-screen with tcell and turns keys into commands
type Screen struct {
	screen tcell.Screen

	mu     sync.Mutex // guards last, paused and drawing
	last   engine.Frame
	paused bool

	styles   map[rune]tcell.Style
	fallback tcell.Style
	status   tcell.Style

	commands chan Command
	finiOnce sync.Once
}

// NewScreen opens the terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render: create screen: %w", err)
	}
	return NewScreenOn(s)
}

// NewScreenOn initializes s and starts reading its events
func NewScreenOn(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("render: init screen: %w", err)
	}
	s.HideCursor()

	sc := &Screen{
		screen: s,
		styles: map[rune]tcell.Style{
			core.GlyphWall:         fg(parameter.ColorWall),
			core.GlyphPlant:        fg(parameter.ColorPlant),
			core.GlyphPlantEater:   fg(parameter.ColorPlantEater).Bold(true),
			core.GlyphWallFollower: fg(parameter.ColorWallFollower),
		},
		fallback: fg(parameter.ColorUnknown),
		status:   fg(parameter.ColorStatusFg).Background(rgb(parameter.ColorStatusBg)),
		commands: make(chan Command, 8),
	}
	core.Go(sc.pollEvents)
	return sc, nil
}

func rgb(c [3]int32) tcell.Color {
	return tcell.NewRGBColor(c[0], c[1], c[2])
}

func fg(c [3]int32) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c))
}

// Commands delivers quit, pause and step requests
// Requests are dropped while the channel is full
func (sc *Screen) Commands() <-chan Command {
	return sc.commands
}

// SetPaused marks the status bar and redraws the last frame
func (sc *Screen) SetPaused(paused bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.paused = paused
	sc.draw()
}

func (sc *Screen) Publish(f engine.Frame) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.last = f
	sc.draw()
	return nil
}

// Close restores the terminal, safe to call more than once
func (sc *Screen) Close() {
	sc.finiOnce.Do(sc.screen.Fini)
}

func (sc *Screen) styleFor(glyph rune) tcell.Style {
	if st, ok := sc.styles[glyph]; ok {
		return st
	}
	return sc.fallback
}

// draw renders the board from the top-left corner with the status bar below it
// Caller holds mu
func (sc *Screen) draw() {
	sc.screen.Clear()

	for y, row := range sc.last.Rows {
		x := 0
		for _, ch := range row {
			if ch != core.GlyphEmpty {
				sc.screen.SetContent(x, y, ch, nil, sc.styleFor(ch))
			}
			x++
		}
	}

	line := sc.last.Summary()
	if sc.paused {
		line += "  [paused]"
	}
	line += "  (space pause, n step, q quit)"

	width, _ := sc.screen.Size()
	y := len(sc.last.Rows)
	x := 0
	for _, ch := range line {
		sc.screen.SetContent(x, y, ch, nil, sc.status)
		x++
	}
	for ; x < width; x++ {
		sc.screen.SetContent(x, y, ' ', nil, sc.status)
	}

	sc.screen.Show()
}

func (sc *Screen) pollEvents() {
	for {
		ev := sc.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if cmd, ok := commandFor(ev); ok {
				select {
				case sc.commands <- cmd:
				default:
				}
			}
		case *tcell.EventResize:
			sc.screen.Sync()
			sc.mu.Lock()
			sc.draw()
			sc.mu.Unlock()
		}
	}
}

func commandFor(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit, true
		case ' ', 'p':
			return CommandPause, true
		case 'n', '.':
			return CommandStep, true
		}
	}
	return 0, false
}
