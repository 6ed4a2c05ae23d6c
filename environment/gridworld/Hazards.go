package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/environment"
)

// GenerateHazards returns n hazard cells sampled with a fresh source
// seeded with seed. For each hazard the x coordinate is drawn first and
// the y coordinate second, and both are drawn uniformly from [0, r).
//
// Note that x is drawn from the row range, not the column range. On
// grids with more rows than columns some hazards may lie outside the
// grid, where they are never reached.
func GenerateHazards(n, r int, seed uint64) ([]Position, error) {
	if n < 0 {
		return nil, fmt.Errorf("generateHazards: cannot generate %d hazards",
			n)
	}

	sampler, err := environment.NewCategoricalStarter([]int{r, r}, seed)
	if err != nil {
		return nil, fmt.Errorf("generateHazards: %w", err)
	}

	hazards := make([]Position, n)
	for i := range hazards {
		cell, err := PositionFromVec(sampler.Start())
		if err != nil {
			return nil, fmt.Errorf("generateHazards: %w", err)
		}
		hazards[i] = cell
	}
	return hazards, nil
}
