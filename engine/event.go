package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-life/core"
)

// EventType classifies what happened to an entity during a turn
type EventType uint8

const (
	EventBorn EventType = iota
	EventMoved
	EventAte
	EventStarved
)

func (t EventType) String() string {
	switch t {
	case EventBorn:
		return "born"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventStarved:
		return "starved"
	default:
		return "unknown"
	}
}

// Event reports a successful state change
// For EventBorn the entity is the offspring and From is the parent's cell
// For EventAte Victim is the eaten entity's glyph
type Event struct {
	Type   EventType
	Turn   int64
	ID     uuid.UUID
	Glyph  rune
	From   core.Point
	To     core.Point
	Victim rune
}

// Observer receives events synchronously while the turn runs
// It must not touch the world
type Observer func(Event)
