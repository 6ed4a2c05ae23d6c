package envconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridenv/environment/gridworld"
)

func TestDefaultCreate(t *testing.T) {
	g, step, err := Default().Create()
	if err != nil {
		t.Fatal(err)
	}

	if !step.First() || g.Position() != gridworld.DefaultStart {
		t.Errorf("create: environment should start at %v",
			gridworld.DefaultStart)
	}
	if g.MinimumSteps() != 14 {
		t.Errorf("want 14 minimum steps, have %d", g.MinimumSteps())
	}

	// The default Config generates the same hazards as the default
	// gridworld
	d, _, err := gridworld.NewDefault(nil)
	if err != nil {
		t.Fatal(err)
	}
	want, have := d.HazardPositions(), g.HazardPositions()
	if len(want) != len(have) {
		t.Fatalf("want %d hazards, have %d", len(want), len(have))
	}
	for i := range want {
		if want[i] != have[i] {
			t.Errorf("hazard %d: want %v, have %v", i, want[i], have[i])
		}
	}
}

func TestExplicitHazards(t *testing.T) {
	c := Default()
	c.Hazards = [][2]int{{1, 0}, {2, 2}}

	g, _, err := c.Create()
	if err != nil {
		t.Fatal(err)
	}

	hazards := g.HazardPositions()
	if len(hazards) != 2 || hazards[0] != (gridworld.Position{X: 1, Y: 0}) ||
		hazards[1] != (gridworld.Position{X: 2, Y: 2}) {
		t.Errorf("unexpected hazards %v", hazards)
	}
}

func TestNoHazards(t *testing.T) {
	c := Default()
	c.NumHazards = 0

	g, _, err := c.Create()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.HazardPositions()); n != 0 {
		t.Errorf("want no hazards, have %d", n)
	}
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "env.json")

	c := Default()
	c.Rows, c.Cols = 5, 6
	c.GoalX, c.GoalY = 5, 4
	c.Discount = 0.9
	c.EpisodeCutoff = 100
	c.Hazards = [][2]int{{3, 3}}

	if err := c.Save(filename); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Rows != 5 || loaded.Cols != 6 || loaded.Goal() != c.Goal() ||
		loaded.Discount != 0.9 || loaded.EpisodeCutoff != 100 ||
		len(loaded.Hazards) != 1 || loaded.Hazards[0] != [2]int{3, 3} {
		t.Errorf("want %+v, have %+v", c, loaded)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "env.json")
	if err := os.WriteFile(filename, []byte(`{"Discount": 0.5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Discount = 0.5
	if c.Rows != want.Rows || c.Cols != want.Cols || c.Goal() != want.Goal() ||
		c.NumHazards != want.NumHazards || c.HazardSeed != want.HazardSeed ||
		c.Discount != 0.5 {
		t.Errorf("want %+v, have %+v", want, c)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"ZeroRows":      func(c *Config) { c.Rows = 0 },
		"StartOutside":  func(c *Config) { c.StartX = 8 },
		"GoalOutside":   func(c *Config) { c.GoalY = -1 },
		"NegHazards":    func(c *Config) { c.NumHazards = -2 },
		"LargeDiscount": func(c *Config) { c.Discount = 1.5 },
	}

	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			modify(&c)
			if err := c.Validate(); err == nil {
				t.Error("want validation error")
			}
			if _, _, err := c.Create(); err == nil {
				t.Error("want creation error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("want error for missing file")
	}
}
