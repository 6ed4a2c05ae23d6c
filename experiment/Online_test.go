package experiment

import (
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridenv/agent/policy"
	"github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/environment/envconfig"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
	ts "github.com/samuelfneumann/gridenv/timestep"
)

func TestOnlineGreedyTable(t *testing.T) {
	g, _, err := hazardFree()
	if err != nil {
		t.Fatal(err)
	}
	table, err := policy.NewGreedyTable(g.Rows(), g.Cols(), g.GoalPosition())
	if err != nil {
		t.Fatal(err)
	}

	returns := trackers.NewReturn("")
	lengths := trackers.NewEpisodeLength("")
	exp := NewOnline(g, table, 100, nil, returns)
	exp.Register(lengths)

	for i := 0; i < 3; i++ {
		done, err := exp.RunEpisode()
		if err != nil {
			t.Fatal(err)
		}
		if done {
			t.Fatalf("episode %d: step limit reached early", i)
		}
	}

	steps := g.MinimumSteps()
	wantReturn := float64(-(steps - 1)) + gridworld.GoalReward
	for i, ret := range returns.Returns() {
		if ret != wantReturn {
			t.Errorf("episode %d: want return %v, have %v", i, wantReturn, ret)
		}
	}
	for i, length := range lengths.Lengths() {
		if length != steps {
			t.Errorf("episode %d: want length %d, have %d", i, steps, length)
		}
	}
	if exp.Steps() != uint(3*steps) {
		t.Errorf("want %d steps, have %d", 3*steps, exp.Steps())
	}
}

func TestOnlineCutoff(t *testing.T) {
	g, _, err := gridworld.NewDefault(nil)
	if err != nil {
		t.Fatal(err)
	}
	// Always moving down from the start never reaches the goal
	table, err := policy.NewTable(nil, gridworld.Down)
	if err != nil {
		t.Fatal(err)
	}

	lengths := trackers.NewEpisodeLength("")
	exp := NewOnline(g, table, 25, environment.NewStepLimit(10), lengths)
	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}

	// 25 steps make two cut off episodes of 10 and one unfinished episode
	got := lengths.Lengths()
	if len(got) != 2 || got[0] != 10 || got[1] != 10 {
		t.Errorf("want lengths [10 10], have %v", got)
	}
	if exp.Steps() != 25 {
		t.Errorf("want 25 steps, have %d", exp.Steps())
	}
}

func TestOnlineRunEpisodeAfterStepLimit(t *testing.T) {
	g, _, err := gridworld.NewDefault(nil)
	if err != nil {
		t.Fatal(err)
	}
	table, err := policy.NewTable(nil, gridworld.Down)
	if err != nil {
		t.Fatal(err)
	}

	// The step limit is reached partway through the first episode
	returns := trackers.NewReturn("")
	exp := NewOnline(g, table, 5, nil, returns)

	for i := 0; i < 3; i++ {
		done, err := exp.RunEpisode()
		if err != nil {
			t.Fatalf("episode %d: %v", i, err)
		}
		if !done {
			t.Fatalf("episode %d: want step limit reached", i)
		}
	}
	if exp.Steps() != 5 {
		t.Errorf("want 5 steps, have %d", exp.Steps())
	}
	if n := len(returns.Returns()); n != 0 {
		t.Errorf("want no finished episodes, have %d", n)
	}
}

type recorder struct {
	steps []ts.TimeStep
}

func (r *recorder) Track(t ts.TimeStep) { r.steps = append(r.steps, t) }
func (r *recorder) Save() error         { return nil }

func TestOnlineTimeoutEndType(t *testing.T) {
	g, _, err := gridworld.NewDefault(nil)
	if err != nil {
		t.Fatal(err)
	}
	table, err := policy.NewTable(nil, gridworld.Left)
	if err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	exp := NewOnline(g, table, 5, environment.NewStepLimit(5), rec)
	if _, err := exp.RunEpisode(); err != nil {
		t.Fatal(err)
	}

	last := rec.steps[len(rec.steps)-1]
	if !last.Last() || last.EndType() != ts.Timeout {
		t.Errorf("want last timestep ending by timeout, have %v", last)
	}
	if len(rec.steps) != 6 {
		t.Errorf("want 6 tracked timesteps, have %d", len(rec.steps))
	}
}

func TestConfigCreateExp(t *testing.T) {
	dir := t.TempDir()
	returnsFile := filepath.Join(dir, "returns.bin")

	conf := Config{MaxSteps: 500, EnvConf: envconfig.Default()}
	conf.EnvConf.EpisodeCutoff = 50

	returns := trackers.NewReturn(returnsFile)
	exp, err := conf.CreateExp(3, returns)
	if err != nil {
		t.Fatal(err)
	}
	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}
	if err := exp.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := trackers.LoadData(returnsFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) == 0 {
		t.Fatal("want at least one finished episode")
	}
	for i, ret := range loaded {
		if ret > gridworld.GoalReward {
			t.Errorf("episode %d: return %v larger than goal reward", i, ret)
		}
	}

	conf.EnvConf.Rows = 0
	if _, err := conf.CreateExp(3); err == nil {
		t.Error("want error for invalid environment config")
	}
}

// hazardFree returns the default gridworld without hazards
func hazardFree() (*gridworld.GridWorld, ts.TimeStep, error) {
	c := envconfig.Default()
	c.NumHazards = 0
	return c.Create()
}

func TestConfigCreateExpOneHot(t *testing.T) {
	conf := Config{MaxSteps: 300, EnvConf: envconfig.Default(), OneHot: true}
	conf.EnvConf.EpisodeCutoff = 20

	rec := &recorder{}
	lengths := trackers.NewEpisodeLength("")
	exp, err := conf.CreateExp(5, rec, lengths)
	if err != nil {
		t.Fatal(err)
	}

	features := conf.EnvConf.Rows * conf.EnvConf.Cols
	if n := exp.ObservationSpec().Shape.Len(); n != features {
		t.Errorf("want %d observation features, have %d", features, n)
	}

	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}

	// Trackers see the (x, y) observations of the unwrapped gridworld
	for i, step := range rec.steps {
		if n := step.Observation.Len(); n != 2 {
			t.Fatalf("timestep %d: want (x, y) observation, have length %d",
				i, n)
		}
	}

	got := lengths.Lengths()
	if len(got) == 0 {
		t.Fatal("want at least one finished episode")
	}
	for i, length := range got {
		if length > 20 {
			t.Errorf("episode %d: length %d exceeds cutoff", i, length)
		}
	}
}
