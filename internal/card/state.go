package card

import (
	"fmt"
	"strings"
)

// State is one of the three canonical layouts. The order follows screen
// position from bottom to top: Minimized < Stack < Expanded.
type State int

const (
	Minimized State = iota
	Stack
	Expanded
)

// States lists every State in ascending order.
var States = []State{Minimized, Stack, Expanded}

func (s State) String() string {
	switch s {
	case Minimized:
		return "minimized"
	case Stack:
		return "stack"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// ParseState converts a name produced by String back into a State.
func ParseState(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimized":
		return Minimized, nil
	case "stack":
		return Stack, nil
	case "expanded":
		return Expanded, nil
	}
	return Minimized, fmt.Errorf("unknown card state %q", name)
}

// ScrollFlags is the transient per-gesture state of the drag bridge.
type ScrollFlags struct {
	Dragging      bool
	Transitioning bool
}
