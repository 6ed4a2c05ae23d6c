package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. Dimension i is
// sampled from (0, 1, 2, ... bounds[i]-1).
//
// All dimensions share a single source which is owned by the
// CategoricalStarter, so two CategoricalStarters built with the same
// bounds and seed return identical sequences of samples.
type CategoricalStarter struct {
	seed uint64
	rand []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int, seed uint64) (*CategoricalStarter,
	error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no bounds given")
	}
	source := rand.NewSource(seed)

	dists := make([]distuv.Categorical, len(bounds))
	for i := range dists {
		if bounds[i] <= 0 {
			return nil, fmt.Errorf("newCategoricalStarter: bounds[%d] = %d "+
				"must be positive", i, bounds[i])
		}

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		dists[i] = distuv.NewCategorical(weights, source)
	}

	return &CategoricalStarter{seed, dists}, nil
}

// Start returns a starting state vector. Dimensions are sampled in
// order.
func (c *CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, len(c.rand))
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(len(start), start)
}

// Seed returns the seed the CategoricalStarter was created with
func (c *CategoricalStarter) Seed() uint64 {
	return c.seed
}
