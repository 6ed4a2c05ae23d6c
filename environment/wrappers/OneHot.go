// Package wrappers implements environment wrappers which change the
// observations of an embedded environment
package wrappers

import (
	"fmt"

	env "github.com/samuelfneumann/gridenv/environment"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// OneHot converts the (x, y) == (col, row) observations of an
// environment.RowColer to one-hot encodings of the cell. Cell (x, y)
// is encoded with a 1.0 at index y*cols + x.
type OneHot struct {
	env.RowColer

	currentTimeStep ts.TimeStep
}

// NewOneHot returns a new OneHot environment wrapper along with the
// one-hot encoded current TimeStep of the wrapped environment
func NewOneHot(e env.RowColer) (*OneHot, ts.TimeStep, error) {
	o := &OneHot{RowColer: e}

	step := e.CurrentTimeStep()
	newObs, err := o.getObs(step.Observation)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newOneHot: could not "+
			"calculate observation: %v", err)
	}
	step.Observation = newObs
	o.currentTimeStep = step

	return o, step, nil
}

// Reset resets the environment to some starting state
func (o *OneHot) Reset() (ts.TimeStep, error) {
	step, err := o.RowColer.Reset()
	if err != nil {
		return ts.TimeStep{}, err
	}

	newObs, err := o.getObs(step.Observation)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not calculate "+
			"observation: %v", err)
	}

	step.Observation = newObs
	o.currentTimeStep = step

	return step, nil
}

// Step takes one environmental step given some action
func (o *OneHot) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	step, last, err := o.RowColer.Step(action)
	if err != nil {
		return ts.TimeStep{}, false, err
	}

	newObs, err := o.getObs(step.Observation)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not calculate "+
			"observation: %v", err)
	}

	step.Observation = newObs
	o.currentTimeStep = step

	return step, last, nil
}

// CurrentTimeStep returns the current time step in the environment
func (o *OneHot) CurrentTimeStep() ts.TimeStep {
	return o.currentTimeStep
}

// getObs returns the one-hot version of an (x, y) vector
func (o *OneHot) getObs(obs *mat.VecDense) (*mat.VecDense, error) {
	if obs == nil || obs.Len() != 2 {
		return nil, fmt.Errorf("getObs: observation is not an (x, y) vector")
	}

	x, y := int(obs.AtVec(0)), int(obs.AtVec(1))
	if x < 0 || x >= o.Cols() || y < 0 || y >= o.Rows() {
		return nil, fmt.Errorf("getObs: (%d, %d) outside of grid", x, y)
	}

	newObs := mat.NewVecDense(o.Rows()*o.Cols(), nil)
	newObs.SetVec(y*o.Cols()+x, 1.0)

	return newObs, nil
}

// ObservationSpec returns the observation specification of the
// environment
func (o *OneHot) ObservationSpec() env.Spec {
	features := o.Rows() * o.Cols()
	shape := mat.NewVecDense(features, nil)
	low := mat.NewVecDense(features, nil)

	highData := make([]float64, features)
	for i := range highData {
		highData[i] = 1.0
	}
	high := mat.NewVecDense(features, highData)

	return env.NewSpec(shape, env.Observation, low, high, env.Discrete)
}

// String returns the string representation of the environment
func (o *OneHot) String() string {
	return fmt.Sprintf("OneHot: %v", o.RowColer)
}
