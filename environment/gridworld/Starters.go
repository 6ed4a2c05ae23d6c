package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/environment"
	"gonum.org/v1/gonum/mat"
)

// SingleStart is an environment.Starter which always starts episodes
// in the same cell
type SingleStart struct {
	start Position
}

// NewSingleStart returns a Starter which starts all episodes at cell
// (x, y) of a GridWorld with r rows and c columns
func NewSingleStart(x, y, r, c int) (environment.Starter, error) {
	start := Position{X: x, Y: y}
	if !start.In(r, c) {
		return nil, fmt.Errorf("newSingleStart: start %v outside of grid "+
			"with %d rows and %d cols", start, r, c)
	}

	return &SingleStart{start}, nil
}

// Start returns the starting cell as an (x, y) vector
func (s *SingleStart) Start() *mat.VecDense {
	return s.start.Vec()
}
