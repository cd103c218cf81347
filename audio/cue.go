// Package audio turns world events into short synthesized cues
package audio

import (
	"github.com/lixenwraith/vi-life/engine"
)

// Cue is a sound tied to a kind of event
type Cue uint8

const (
	CueBirth Cue = iota
	CuePredation
	CueStarve
)

func (c Cue) String() string {
	switch c {
	case CueBirth:
		return "birth"
	case CuePredation:
		return "predation"
	case CueStarve:
		return "starve"
	default:
		return "unknown"
	}
}

// CueFor maps an event to its cue, moves are silent
func CueFor(ev engine.Event) (Cue, bool) {
	switch ev.Type {
	case engine.EventBorn:
		return CueBirth, true
	case engine.EventAte:
		return CuePredation, true
	case engine.EventStarved:
		return CueStarve, true
	default:
		return 0, false
	}
}

// turnLimiter admits at most max cues per turn
type turnLimiter struct {
	max   int
	turn  int64
	count int
}

func (l *turnLimiter) allow(turn int64) bool {
	if turn != l.turn {
		l.turn = turn
		l.count = 0
	}
	if l.count >= l.max {
		return false
	}
	l.count++
	return true
}
