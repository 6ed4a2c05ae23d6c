// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes should be ended
type Ender interface {
	// End checks whether a TimeStep ends the episode. If so, End sets
	// the StepType of the TimeStep to timestep.Last and returns true.
	End(*ts.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	Starter
	Ender

	// GetReward returns the reward for taking action in state and
	// transitioning to nextState
	GetReward(state, action, nextState mat.Vector) float64
	AtGoal(state mat.Matrix) bool

	// Min and Max bound the rewards the Task can return
	Min() float64
	Max() float64
	RewardSpec() Spec
}

// Environment implements a simualted environment, which includes a Task to
// complete
type Environment interface {
	Task
	Reset() (ts.TimeStep, error)
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)
	CurrentTimeStep() ts.TimeStep
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// RowColer is an Environment laid out on a grid of rows and columns
type RowColer interface {
	Environment
	Rows() int
	Cols() int
}
