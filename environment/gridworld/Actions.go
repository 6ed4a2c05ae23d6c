package gridworld

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidAction is returned when stepping with an action outside
	// the action table
	ErrInvalidAction = errors.New("invalid action")

	// ErrActionNotFound is returned when looking up an action name or
	// index which does not exist
	ErrActionNotFound = errors.New("action not found")
)

// Action is an index into the fixed action table of a GridWorld
//
//	Action	Name	Displacement (dx, dy)
//	  0		down	(0, -1)
//	  1		right	(1, 0)
//	  2		up		(0, 1)
//	  3		left	(-1, 0)
type Action int

const (
	Down Action = iota
	Right
	Up
	Left
)

// NumActions is the number of actions available in each state
const NumActions int = 4

var (
	moves = [NumActions]Position{
		Down:  {X: 0, Y: -1},
		Right: {X: 1, Y: 0},
		Up:    {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
	}

	actionNames = [NumActions]string{
		Down:  "down",
		Right: "right",
		Up:    "up",
		Left:  "left",
	}
)

// Valid returns whether the action is in the action table
func (a Action) Valid() bool {
	return a >= 0 && int(a) < NumActions
}

// Displacement returns the (dx, dy) displacement of the action
func (a Action) Displacement() (Position, error) {
	if !a.Valid() {
		return Position{}, fmt.Errorf("displacement: %w: %d", ErrInvalidAction,
			int(a))
	}
	return moves[a], nil
}

// Vec returns the action as a 1-dimensional action vector, which can be
// passed to GridWorld.Step
func (a Action) Vec() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(a)})
}

func (a Action) String() string {
	name, err := ActionName(a)
	if err != nil {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return name
}

// ActionName returns the name of the action with index a
func ActionName(a Action) (string, error) {
	if !a.Valid() {
		return "", fmt.Errorf("actionName: %w: index %d", ErrActionNotFound,
			int(a))
	}
	return actionNames[a], nil
}

// ActionIndex returns the index of the action called name
func ActionIndex(name string) (Action, error) {
	for i, actionName := range actionNames {
		if actionName == name {
			return Action(i), nil
		}
	}
	return -1, fmt.Errorf("actionIndex: %w: name %q", ErrActionNotFound, name)
}

// ActionNames returns the names of all actions ordered by index
func ActionNames() []string {
	names := make([]string, NumActions)
	copy(names, actionNames[:])
	return names
}

// actionFromVec converts a 1-dimensional action vector to an Action
func actionFromVec(action *mat.VecDense) (Action, error) {
	if action == nil {
		return -1, fmt.Errorf("%w: nil action", ErrInvalidAction)
	}
	if l := action.Len(); l != 1 {
		return -1, fmt.Errorf("%w: actions must be 1-dimensional, have %d",
			ErrInvalidAction, l)
	}

	value := action.AtVec(0)
	if value < 0 || value >= float64(NumActions) {
		return -1, fmt.Errorf("%w: %v \u2209 (0, 1, 2, 3)", ErrInvalidAction,
			value)
	}
	if value != math.Trunc(value) {
		return -1, fmt.Errorf("%w: %v is not an integer", ErrInvalidAction,
			value)
	}
	return Action(value), nil
}
