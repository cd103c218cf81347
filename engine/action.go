package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-life/core"
)

// ActionType names what an entity intends to do
type ActionType uint8

const (
	ActionGrow ActionType = iota
	ActionMove
	ActionEat
	ActionReproduce
)

func (t ActionType) String() string {
	switch t {
	case ActionGrow:
		return "grow"
	case ActionMove:
		return "move"
	case ActionEat:
		return "eat"
	case ActionReproduce:
		return "reproduce"
	default:
		return fmt.Sprintf("action(%d)", uint8(t))
	}
}

// Action is an unvalidated intent returned by a behaviour
// Dir is ignored by Grow
type Action struct {
	Type ActionType
	Dir  core.Direction
}

func Grow() Action                      { return Action{Type: ActionGrow} }
func Move(d core.Direction) Action      { return Action{Type: ActionMove, Dir: d} }
func Eat(d core.Direction) Action       { return Action{Type: ActionEat, Dir: d} }
func Reproduce(d core.Direction) Action { return Action{Type: ActionReproduce, Dir: d} }

func (a Action) String() string {
	if a.Type == ActionGrow {
		return a.Type.String()
	}
	return a.Type.String() + " " + a.Dir.String()
}
