// Package agent defines the interface of action-selecting agents which
// can be evaluated in an environment
package agent

import (
	"github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. A Policy is given the
// most recent TimeStep of an environment and returns the action to take
// in that environment as a vector conforming to the environment's
// action Spec.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}

