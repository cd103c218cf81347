package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-life/core"
)

// Kind is the closed set of entity species
type Kind uint8

const (
	KindWall Kind = iota
	KindPlant
	KindPlantEater
	KindWallFollower
)

var kindNames = map[Kind]string{
	KindWall:         "wall",
	KindPlant:        "plant",
	KindPlantEater:   "planteater",
	KindWallFollower: "wallfollower",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Acts reports whether the scheduler asks this kind for actions
func (k Kind) Acts() bool {
	return k != KindWall
}

// HasEnergy reports whether entities of this kind carry energy
// Only energetic entities can be eaten
func (k Kind) HasEnergy() bool {
	return k != KindWall
}

// ParseKind resolves a kind name, case-insensitive
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Entity is a grid occupant
// Identity is the pointer; ID is a stable handle for logs and events
type Entity struct {
	ID     uuid.UUID
	Kind   Kind
	Glyph  rune // origin glyph, used to render and to spawn offspring
	Energy float64
	Facing core.Direction // WallFollower only

	tuning *Tuning
}

func (e *Entity) String() string {
	if !e.Kind.HasEnergy() {
		return fmt.Sprintf("%s %q", e.Kind, e.Glyph)
	}
	return fmt.Sprintf("%s %q energy=%.2f", e.Kind, e.Glyph, e.Energy)
}

// newID draws the id from r so seeded worlds get the same ids every run
func newID(r core.Rand) uuid.UUID {
	if r != nil {
		if id, err := uuid.NewRandomFromReader(r); err == nil {
			return id
		}
	}
	return uuid.New()
}
