package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gridenv/agent"
	env "github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
	ts "github.com/samuelfneumann/gridenv/timestep"
)

var _ Experiment = (*Online)(nil)

// Online is an Experiment that runs a policy online in an environment.
// No learning takes place.
type Online struct {
	env.Environment
	agent.Policy
	maxSteps     uint
	currentSteps uint
	cutoff       env.Ender
	trackers     []trackers.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The steps parameter determines how
// many timesteps the experiment is run for in total. The cutoff Ender,
// which may be nil, is consulted after each environment step to end
// episodes early, for example with an env.StepLimit. The t parameter
// determines what data is tracked.
func NewOnline(e env.Environment, p agent.Policy, steps uint,
	cutoff env.Ender, t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Policy:      p,
		maxSteps:    steps,
		cutoff:      cutoff,
		trackers:    t,
	}
}

// Register registers a Tracker with the Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment and returns
// whether the total step limit has been reached. Once the limit has
// been reached, RunEpisode does nothing.
func (o *Online) RunEpisode() (bool, error) {
	if o.currentSteps >= o.maxSteps {
		return true, nil
	}

	step, err := o.Environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.track(step)

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		action := o.Policy.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: could not step: %w", err)
		}

		if o.cutoff != nil {
			o.cutoff.End(&step)
		}
		o.track(step)
	}

	return o.currentSteps >= o.maxSteps, nil
}

// Run runs episodes until the total step limit is reached
func (o *Online) Run() error {
	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	return nil
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
