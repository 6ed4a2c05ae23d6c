// Package gridworld implements 2D gridworld environments with goal and
// hazard cells
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/environment"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	DefaultRows int = 8
	DefaultCols int = 8
)

var _ environment.RowColer = (*GridWorld)(nil)

var (
	DefaultStart = Position{X: 0, Y: 0}
	DefaultGoal  = Position{X: 7, Y: 7}
)

// GridWorld implements a gridworld environment. The agent occupies a
// single cell and moves one cell per step in one of four directions.
// Moves which would leave the grid are clamped onto the grid along each
// axis independently.
//
// Observations are (x, y) == (col, row) vectors with the origin in the
// lower-left cell. Actions are 1-dimensional vectors holding an Action
// index. Rewards and episode termination are determined by the Goal
// task.
//
// GridWorld does not track whether the current episode has ended.
// Stepping after the goal was reached without calling Reset continues
// to move the agent, and the results of doing so are unspecified.
//
// A GridWorld is not safe for concurrent use. To run episodes
// concurrently, create one GridWorld per goroutine.
type GridWorld struct {
	*Goal
	r, c        int
	start       Position
	position    Position
	discount    float64
	currentStep ts.TimeStep
}

// New creates a new gridworld with r rows, c columns, task t, and
// discount factor discount. The returned GridWorld has already been
// reset and its first TimeStep is returned.
func New(r, c int, t *Goal, discount float64) (*GridWorld, ts.TimeStep,
	error) {
	if r <= 0 || c <= 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: grid must have positive "+
			"dimensions, have (%d, %d)", r, c)
	}
	if t == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: nil task")
	}
	if !t.GoalPosition().In(r, c) {
		return nil, ts.TimeStep{}, fmt.Errorf("new: goal %v outside of grid",
			t.GoalPosition())
	}

	g := &GridWorld{Goal: t, r: r, c: c, discount: discount}

	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}
	return g, step, nil
}

// NewDefault creates a DefaultRows x DefaultCols GridWorld starting at
// DefaultStart with goal DefaultGoal and a discount of 1. If hazards is
// empty, the default hazards are generated.
func NewDefault(hazards []Position) (*GridWorld, ts.TimeStep, error) {
	s, err := NewSingleStart(DefaultStart.X, DefaultStart.Y, DefaultRows,
		DefaultCols)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newDefault: %w", err)
	}

	task, err := NewGoal(s, DefaultGoal, hazards, DefaultRows, DefaultCols)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newDefault: %w", err)
	}

	return New(DefaultRows, DefaultCols, task, 1.0)
}

// Reset moves the agent to the starting cell and returns the first
// TimeStep of a new episode
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	start, err := PositionFromVec(g.Start())
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}
	if !start.In(g.r, g.c) {
		return ts.TimeStep{}, fmt.Errorf("reset: start %v outside of grid",
			start)
	}

	g.start = start
	g.position = start

	startStep := ts.New(ts.First, 0, g.discount, g.getObservation(), 0)
	g.currentStep = startStep
	return startStep, nil
}

// Step takes one environmental step given a 1-dimensional action
// vector holding an Action index. It returns the next TimeStep, holding
// the next (x, y) cell, the reward, and the auxiliary Info, as well as
// whether the goal was reached.
//
// Invalid actions return an error wrapping ErrInvalidAction and leave
// the GridWorld unchanged.
func (g *GridWorld) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	a, err := actionFromVec(action)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	step, last := g.step(a)
	return step, last, nil
}

// StepAction is like Step but takes the Action directly
func (g *GridWorld) StepAction(a Action) (ts.TimeStep, bool, error) {
	if !a.Valid() {
		return ts.TimeStep{}, false, fmt.Errorf("stepAction: %w: %d",
			ErrInvalidAction, int(a))
	}

	step, last := g.step(a)
	return step, last, nil
}

func (g *GridWorld) step(a Action) (ts.TimeStep, bool) {
	state := g.currentStep.Observation

	// Move, clamping each axis onto the grid
	g.position = g.position.Add(moves[a]).Clip(g.r, g.c)
	nextState := g.getObservation()

	reward := g.GetReward(state, a.Vec(), nextState)
	nextStep := ts.New(ts.Mid, reward, g.discount, nextState,
		g.currentStep.Number+1)

	// Check if this transition is to the goal
	last := g.End(&nextStep)

	g.currentStep = nextStep
	return nextStep, last
}

// CurrentTimeStep returns the most recent TimeStep of the GridWorld
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// Position returns the cell the agent currently occupies
func (g *GridWorld) Position() Position {
	return g.position
}

// StartPosition returns the cell the current episode started in
func (g *GridWorld) StartPosition() Position {
	return g.start
}

// MinimumSteps returns the Manhattan distance between the start and goal
// cells. Hazards are not routed around, so this is a lower bound on the
// number of steps an optimal policy needs.
func (g *GridWorld) MinimumSteps() int {
	return g.start.Manhattan(g.GoalPosition())
}

// ActionIndex returns the index of the action called name
func (g *GridWorld) ActionIndex(name string) (Action, error) {
	return ActionIndex(name)
}

// ActionName returns the name of the action with index a
func (g *GridWorld) ActionName(a Action) (string, error) {
	return ActionName(a)
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Rows returns the number of rows in the GridWorld
func (g *GridWorld) Rows() int {
	return g.r
}

// Cols returns the number of columns in the GridWorld
func (g *GridWorld) Cols() int {
	return g.c
}

// At checks the value at position (i, j) == (row, col) in the gridworld.
// A value of 1.0 indicates that the agent is at position (i, j).
func (g *GridWorld) At(i, j int) float64 {
	if g.position == (Position{X: j, Y: i}) {
		return 1.0
	}
	return 0.0
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(Down)})
	upperBound := mat.NewVecDense(1, []float64{float64(NumActions - 1)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (g *GridWorld) ObservationSpec() environment.Spec {
	bounds := []r1.Interval{
		{Min: 0, Max: float64(g.c - 1)},
		{Min: 0, Max: float64(g.r - 1)},
	}

	return environment.NewIntervalSpec(bounds, environment.Observation,
		environment.Discrete)
}

// DiscountSpec returns the discounting specification of the environment
func (g *GridWorld) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{g.discount})
	upperBound := mat.NewVecDense(1, []float64{g.discount})

	return environment.NewSpec(shape, environment.Discount, lowerBound,
		upperBound, environment.Continuous)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |  Goal: %v  |  Hazards: %v  |  " +
		"Bounds: (%d, %d)"

	return fmt.Sprintf(str, g.position, g.GoalPosition(), g.HazardPositions(),
		g.r, g.c)
}

func (g *GridWorld) getObservation() *mat.VecDense {
	return g.position.Vec()
}
