// Package envconfig provides configuration structs for configuring
// gridworld environments with default parameters. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/gridenv/environment/gridworld"
	ts "github.com/samuelfneumann/gridenv/timestep"
)

// Config implements a specific configuration of a gridworld
// environment.
//
// If Hazards is non-empty, those cells are used as the hazards.
// Otherwise NumHazards hazards are generated using HazardSeed, and a
// NumHazards of 0 creates a gridworld without hazards.
// EpisodeCutoff is not used by the environment itself, experiments use
// it to end episodes which have not reached the goal, where 0 means
// episodes are never cut off.
type Config struct {
	Rows          int
	Cols          int
	StartX        int
	StartY        int
	GoalX         int
	GoalY         int
	Hazards       [][2]int `json:",omitempty"`
	NumHazards    int
	HazardSeed    uint64
	Discount      float64
	EpisodeCutoff uint
}

// Default returns the Config of the default 8x8 gridworld
func Default() Config {
	return Config{
		Rows:          gridworld.DefaultRows,
		Cols:          gridworld.DefaultCols,
		StartX:        gridworld.DefaultStart.X,
		StartY:        gridworld.DefaultStart.Y,
		GoalX:         gridworld.DefaultGoal.X,
		GoalY:         gridworld.DefaultGoal.Y,
		NumHazards:    gridworld.DefaultNumHazards,
		HazardSeed:    gridworld.DefaultHazardSeed,
		Discount:      1.0,
		EpisodeCutoff: 0,
	}
}

// Load reads a JSON Config from filename. Fields missing from the file
// keep their default values.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %v", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load: %v", err)
	}
	return c, nil
}

// Save writes the Config as JSON to filename
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not encode config: %v", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}

// Validate checks that the Config describes a legal gridworld
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("validate: grid must have positive dimensions, "+
			"have (%d, %d)", c.Rows, c.Cols)
	}
	if !c.Start().In(c.Rows, c.Cols) {
		return fmt.Errorf("validate: start %v outside of grid", c.Start())
	}
	if !c.Goal().In(c.Rows, c.Cols) {
		return fmt.Errorf("validate: goal %v outside of grid", c.Goal())
	}
	if c.NumHazards < 0 {
		return fmt.Errorf("validate: negative number of hazards %d",
			c.NumHazards)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v ∉ [0, 1]", c.Discount)
	}
	return nil
}

// Start returns the starting cell
func (c Config) Start() gridworld.Position {
	return gridworld.Position{X: c.StartX, Y: c.StartY}
}

// Goal returns the goal cell
func (c Config) Goal() gridworld.Position {
	return gridworld.Position{X: c.GoalX, Y: c.GoalY}
}

// HazardPositions returns the hazard cells described by the Config
func (c Config) HazardPositions() ([]gridworld.Position, error) {
	if len(c.Hazards) > 0 {
		hazards := make([]gridworld.Position, len(c.Hazards))
		for i, h := range c.Hazards {
			hazards[i] = gridworld.Position{X: h[0], Y: h[1]}
		}
		return hazards, nil
	}

	hazards, err := gridworld.GenerateHazards(c.NumHazards, c.Rows,
		c.HazardSeed)
	if err != nil {
		return nil, fmt.Errorf("hazardPositions: %v", err)
	}
	return hazards, nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create() (*gridworld.GridWorld, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	s, err := gridworld.NewSingleStart(c.StartX, c.StartY, c.Rows, c.Cols)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	hazards, err := c.HazardPositions()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	var task *gridworld.Goal
	if len(hazards) == 0 {
		task, err = gridworld.NewHazardFreeGoal(s, c.Goal(), c.Rows, c.Cols)
	} else {
		task, err = gridworld.NewGoal(s, c.Goal(), hazards, c.Rows, c.Cols)
	}
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: could not create "+
			"task: %v", err)
	}

	return gridworld.New(c.Rows, c.Cols, task, c.Discount)
}
