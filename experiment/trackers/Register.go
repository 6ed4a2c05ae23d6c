package trackers

import (
	"github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/timestep"
)

// registeredTracker registers an Environment with some Tracker so
// that the Tracker tracks data from the registered Environment only.
//
// The Track() method of a registeredTracker calls the embedded
// Tracker's Track() method with the most recent TimeStep of the
// registered Environment in place of its argument. This is useful when an
// experiment runs on an Environment wrapper, such as
// wrappers.OneHot, but data from the wrapped Environment should be
// tracked.
type registeredTracker struct {
	Tracker
	env environment.Environment
}

// Register returns a Tracker which tracks the TimeSteps of env in
// place of those it is given.
//
// Note: the underlying concrete type of the registered Tracker is
// lost when registering an Environment with a Tracker.
func Register(t Tracker, env environment.Environment) Tracker {
	return &registeredTracker{t, env}
}

// Track calls Track() on the embedded Tracker using the most recent
// TimeStep from the registered Environment. If t ends its episode but
// the registered Environment's TimeStep does not, as when an
// experiment cuts off an episode, the episode end of t is carried over.
func (r *registeredTracker) Track(t timestep.TimeStep) {
	step := r.env.CurrentTimeStep()
	if t.Last() && !step.Last() {
		step.StepType = timestep.Last
		step.SetEnd(t.EndType())
	}
	r.Tracker.Track(step)
}
