// Package policy implements fixed (non-learning) policies for discrete
// action gridworlds
package policy

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/environment"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random implements a policy which selects actions uniformly at random
// from a 1-dimensional discrete action Spec
type Random struct {
	dist     distuv.Categorical
	minValue float64
	seed     uint64
}

// NewRandom returns a new Random policy for the action Spec
// actionSpec. Two Random policies with the same seed select the same
// sequence of actions.
func NewRandom(seed uint64, actionSpec environment.Spec) (*Random, error) {
	if actionSpec.Type != environment.Action {
		return nil, fmt.Errorf("newRandom: spec type must be %v but got %v",
			environment.Action, actionSpec.Type)
	}
	if actionSpec.Cardinality != environment.Discrete {
		return nil, fmt.Errorf("newRandom: actions must be discrete")
	}
	if actionSpec.LowerBound.Len() != 1 {
		return nil, fmt.Errorf("newRandom: actions must be 1-dimensional")
	}

	minValue := actionSpec.LowerBound.AtVec(0)
	numActions := int(actionSpec.UpperBound.AtVec(0)-minValue) + 1
	if numActions <= 0 {
		return nil, fmt.Errorf("newRandom: no actions in [%v, %v]", minValue,
			actionSpec.UpperBound.AtVec(0))
	}

	probs := make([]float64, numActions)
	for i := range probs {
		probs[i] = 1.0 / float64(numActions)
	}
	source := rand.NewSource(seed)

	return &Random{
		dist:     distuv.NewCategorical(probs, source),
		minValue: minValue,
		seed:     seed,
	}, nil
}

// SelectAction selects an action uniformly at random. The TimeStep is
// ignored.
func (r *Random) SelectAction(_ ts.TimeStep) *mat.VecDense {
	return mat.NewVecDense(1, []float64{r.minValue + r.dist.Rand()})
}

// Seed returns the seed of the policy
func (r *Random) Seed() uint64 {
	return r.seed
}
