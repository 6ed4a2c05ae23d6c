package gridworld

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gridenv/utils/intutils"
	"gonum.org/v1/gonum/mat"
)

// Position is an (x, y) == (col, row) cell of a GridWorld. The origin
// is the lower-left cell.
type Position struct {
	X, Y int
}

// In returns whether p lies on a grid with r rows and c columns
func (p Position) In(r, c int) bool {
	return p.X >= 0 && p.X < c && p.Y >= 0 && p.Y < r
}

// Add returns the cell p displaced by d
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Clip clamps each axis of p independently onto a grid with r rows and c
// columns
func (p Position) Clip(r, c int) Position {
	return Position{
		X: intutils.Clip(p.X, 0, c-1),
		Y: intutils.Clip(p.Y, 0, r-1),
	}
}

// Manhattan returns the L1 distance between p and q
func (p Position) Manhattan(q Position) int {
	return intutils.Abs(p.X-q.X) + intutils.Abs(p.Y-q.Y)
}

// Vec returns p as an (x, y) vector
func (p Position) Vec() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(p.X), float64(p.Y)})
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// PositionFromVec converts an (x, y) observation vector to a Position
func PositionFromVec(v mat.Vector) (Position, error) {
	if v == nil || v.Len() != 2 {
		return Position{}, fmt.Errorf("PositionFromVec: states must be " +
			"(x, y) vectors")
	}

	x, y := v.AtVec(0), v.AtVec(1)
	if x != math.Trunc(x) || y != math.Trunc(y) {
		return Position{}, fmt.Errorf("PositionFromVec: (%v, %v) is not "+
			"a cell", x, y)
	}
	return Position{X: int(x), Y: int(y)}, nil
}
