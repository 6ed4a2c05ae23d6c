package policy

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/environment/gridworld"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Table implements a fixed tabular policy over gridworld cells. Cells
// missing from the table take the fallback action.
type Table struct {
	actions  map[gridworld.Position]gridworld.Action
	fallback gridworld.Action
}

// NewTable returns a new Table policy. The actions map is copied.
func NewTable(actions map[gridworld.Position]gridworld.Action,
	fallback gridworld.Action) (*Table, error) {
	if !fallback.Valid() {
		return nil, fmt.Errorf("newTable: fallback: %w: %d",
			gridworld.ErrInvalidAction, int(fallback))
	}

	owned := make(map[gridworld.Position]gridworld.Action, len(actions))
	for cell, a := range actions {
		if !a.Valid() {
			return nil, fmt.Errorf("newTable: cell %v: %w: %d", cell,
				gridworld.ErrInvalidAction, int(a))
		}
		owned[cell] = a
	}

	return &Table{owned, fallback}, nil
}

// NewGreedyTable returns a Table which, on a grid with r rows and c
// columns, moves horizontally towards goal until the goal column is
// reached and then vertically towards goal. Hazards are not avoided.
func NewGreedyTable(r, c int, goal gridworld.Position) (*Table, error) {
	if !goal.In(r, c) {
		return nil, fmt.Errorf("newGreedyTable: goal %v outside of grid", goal)
	}

	actions := make(map[gridworld.Position]gridworld.Action, r*c)
	for x := 0; x < c; x++ {
		for y := 0; y < r; y++ {
			cell := gridworld.Position{X: x, Y: y}
			switch {
			case x < goal.X:
				actions[cell] = gridworld.Right
			case x > goal.X:
				actions[cell] = gridworld.Left
			case y < goal.Y:
				actions[cell] = gridworld.Up
			case y > goal.Y:
				actions[cell] = gridworld.Down
			}
		}
	}

	return NewTable(actions, gridworld.Down)
}

// Action returns the action taken in cell p
func (t *Table) Action(p gridworld.Position) gridworld.Action {
	if a, ok := t.actions[p]; ok {
		return a
	}
	return t.fallback
}

// SelectAction selects the action for the (x, y) observation of the
// TimeStep
func (t *Table) SelectAction(step ts.TimeStep) *mat.VecDense {
	p, err := gridworld.PositionFromVec(step.Observation)
	if err != nil {
		panic(fmt.Sprintf("selectAction: %v", err))
	}
	return t.Action(p).Vec()
}
