package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/environment"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	GoalReward     float64 = 100
	HazardReward   float64 = -100
	TimeStepReward float64 = -1

	DefaultNumHazards int    = 5
	DefaultHazardSeed uint64 = 100
)

// Goal represents the task of reaching a goal cell in a GridWorld while
// avoiding hazard cells.
//
// Reaching the goal ends the episode with reward GoalReward. Landing on
// a hazard gives reward HazardReward but does not end the episode. All
// other transitions give reward TimeStepReward. A cell which is both
// the goal and a hazard behaves as the goal.
type Goal struct {
	environment.Starter
	goal     Position
	hazards  []Position
	isHazard map[Position]bool
	r, c     int // total rows and columns in environment

	goalReward     float64
	hazardReward   float64
	timeStepReward float64
}

// NewGoal creates and returns a new Goal task for a GridWorld with r
// rows and c columns.
//
// If hazards is empty, DefaultNumHazards hazards are generated with
// GenerateHazards using DefaultHazardSeed, so that all Goals created
// without hazards share the same hazard cells. Use NewHazardFreeGoal
// for a task without hazards. The hazards slice is copied.
func NewGoal(s environment.Starter, goal Position, hazards []Position, r,
	c int) (*Goal, error) {
	if len(hazards) == 0 && r > 0 {
		var err error
		hazards, err = GenerateHazards(DefaultNumHazards, r, DefaultHazardSeed)
		if err != nil {
			return nil, fmt.Errorf("newGoal: could not generate hazards: %w",
				err)
		}
	}

	task, err := newGoal(s, goal, hazards, r, c)
	if err != nil {
		return nil, fmt.Errorf("newGoal: %w", err)
	}
	return task, nil
}

// NewHazardFreeGoal creates and returns a new Goal task without any
// hazard cells for a GridWorld with r rows and c columns
func NewHazardFreeGoal(s environment.Starter, goal Position, r,
	c int) (*Goal, error) {
	task, err := newGoal(s, goal, nil, r, c)
	if err != nil {
		return nil, fmt.Errorf("newHazardFreeGoal: %w", err)
	}
	return task, nil
}

func newGoal(s environment.Starter, goal Position, hazards []Position, r,
	c int) (*Goal, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("grid must have positive dimensions, "+
			"have (%d, %d)", r, c)
	}
	if !goal.In(r, c) {
		return nil, fmt.Errorf("goal %v outside of grid with %d rows and %d "+
			"cols", goal, r, c)
	}

	owned := make([]Position, len(hazards))
	copy(owned, hazards)

	isHazard := make(map[Position]bool, len(owned))
	for _, hazard := range owned {
		isHazard[hazard] = true
	}

	return &Goal{
		Starter:        s,
		goal:           goal,
		hazards:        owned,
		isHazard:       isHazard,
		r:              r,
		c:              c,
		goalReward:     GoalReward,
		hazardReward:   HazardReward,
		timeStepReward: TimeStepReward,
	}, nil
}

// GoalPosition returns the goal cell
func (g *Goal) GoalPosition() Position {
	return g.goal
}

// HazardPositions returns a copy of the hazard cells in the order they
// were given or generated
func (g *Goal) HazardPositions() []Position {
	hazards := make([]Position, len(g.hazards))
	copy(hazards, g.hazards)
	return hazards
}

// IsHazard returns whether cell p is a hazard
func (g *Goal) IsHazard(p Position) bool {
	return g.isHazard[p]
}

// GetReward returns the reward for transitioning to nextState. The goal
// is checked before hazards.
func (g *Goal) GetReward(_, _, nextState mat.Vector) float64 {
	next, err := PositionFromVec(nextState)
	if err != nil {
		panic(fmt.Sprintf("getReward: %v", err))
	}

	if next == g.goal {
		return g.goalReward
	} else if g.isHazard[next] {
		return g.hazardReward
	}
	return g.timeStepReward
}

// AtGoal returns whether the (x, y) state is the goal cell
func (g *Goal) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != 2 || cols != 1 {
		return false
	}
	return int(state.At(0, 0)) == g.goal.X && int(state.At(1, 0)) == g.goal.Y
}

// End ends the episode if the TimeStep's observation is the goal cell.
// Hazards never end an episode.
func (g *Goal) End(t *ts.TimeStep) bool {
	if g.AtGoal(t.Observation) {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return false
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	rewards := []float64{g.timeStepReward, g.hazardReward, g.goalReward}
	return floats.Min(rewards)
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	rewards := []float64{g.timeStepReward, g.hazardReward, g.goalReward}
	return floats.Max(rewards)
}

// RewardSpec returns the reward specification of the Task
func (g *Goal) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{g.Min()})
	upperBound := mat.NewVecDense(1, []float64{g.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Discrete)
}

// String returns the Goal as a string
func (g *Goal) String() string {
	return fmt.Sprintf("Goal: %v  |  Hazards: %v", g.goal, g.hazards)
}
