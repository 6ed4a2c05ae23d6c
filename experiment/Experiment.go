// Package experiment implements functionality for evaluating policies
// in gridworld environments
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/agent/policy"
	"github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/environment/envconfig"
	"github.com/samuelfneumann/gridenv/environment/wrappers"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
)

// Experiment outlines structs that can run experiments. Experiments
// send each environment TimeStep to their Trackers, which cache the
// data they track in RAM until Save() is called. The Run() method runs
// episodes until the total step limit is reached, and RunEpisode() runs
// a single episode.
type Experiment interface {
	// Run runs episodes until the step limit is reached
	Run() error

	// RunEpisode runs a single episode and returns whether the step
	// limit has been reached
	RunEpisode() (bool, error)

	// Register adds a new Tracker to the (possibly already running)
	// experiment
	Register(t trackers.Tracker)

	// Save saves all tracked data to disk
	Save() error
}

// Config represents a configuration of an experiment which evaluates a
// uniform random policy
type Config struct {
	MaxSteps uint
	EnvConf  envconfig.Config

	// OneHot runs the policy on one-hot encoded observations. Trackers
	// then track the TimeSteps of the unwrapped gridworld.
	OneHot bool `json:",omitempty"`
}

// CreateExp creates the environment described by the Config and returns
// an Online experiment which runs a random policy seeded with seed in
// that environment. Episodes are cut off after EnvConf.EpisodeCutoff
// steps if it is nonzero. If OneHot is set, the environment is wrapped
// by wrappers.OneHot and each Tracker is registered with the unwrapped
// gridworld.
func (c Config) CreateExp(seed uint64, t ...trackers.Tracker) (*Online,
	error) {
	env, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %v",
			err)
	}

	var e environment.Environment = env
	tracked := t
	if c.OneHot {
		if e, _, err = wrappers.NewOneHot(env); err != nil {
			return nil, fmt.Errorf("createExp: could not wrap environment: %v",
				err)
		}

		tracked = make([]trackers.Tracker, len(t))
		for i := range t {
			tracked[i] = trackers.Register(t[i], env)
		}
	}

	p, err := policy.NewRandom(seed, e.ActionSpec())
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create policy: %v", err)
	}

	cutoff := environment.NewStepLimit(int(c.EnvConf.EpisodeCutoff))
	return NewOnline(e, p, c.MaxSteps, cutoff, tracked...), nil
}
