package environment

import (
	"testing"

	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestCategoricalStarterReproducible(t *testing.T) {
	bounds := []int{8, 3}

	s1, err := NewCategoricalStarter(bounds, 100)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewCategoricalStarter(bounds, 100)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		v1, v2 := s1.Start(), s2.Start()
		if !mat.Equal(v1, v2) {
			t.Fatalf("sample %d: %v != %v", i, mat.Formatted(v1.T()),
				mat.Formatted(v2.T()))
		}
		for j, bound := range bounds {
			if x := v1.AtVec(j); x < 0 || x >= float64(bound) {
				t.Errorf("sample %d: dimension %d value %v outside [0, %d)",
					i, j, x, bound)
			}
		}
	}
}

func TestCategoricalStarterErrors(t *testing.T) {
	if _, err := NewCategoricalStarter(nil, 1); err == nil {
		t.Error("want error for no bounds")
	}
	if _, err := NewCategoricalStarter([]int{3, 0}, 1); err == nil {
		t.Error("want error for non-positive bound")
	}
}

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	step := ts.New(ts.Mid, -1, 1, mat.NewVecDense(1, nil), 2)
	if limit.End(&step) || step.Last() {
		t.Error("step 2 should not end the episode")
	}

	step = ts.New(ts.Mid, -1, 1, mat.NewVecDense(1, nil), 3)
	if !limit.End(&step) || !step.Last() {
		t.Error("step 3 should end the episode")
	}
	if step.EndType() != ts.Timeout {
		t.Errorf("want end type %v, have %v", ts.Timeout, step.EndType())
	}

	// A terminal step keeps its end type
	step = ts.New(ts.Last, 100, 1, mat.NewVecDense(1, nil), 5)
	step.SetEnd(ts.TerminalStateReached)
	if !limit.End(&step) || step.EndType() != ts.TerminalStateReached {
		t.Error("terminal steps should keep their end type")
	}

	never := NewStepLimit(0)
	step = ts.New(ts.Mid, -1, 1, mat.NewVecDense(1, nil), 1_000_000)
	if never.End(&step) {
		t.Error("a limit of 0 should never end an episode")
	}
}

func TestIntervalSpec(t *testing.T) {
	bounds := []r1.Interval{{Min: 0, Max: 7}, {Min: 0, Max: 3}}
	spec := NewIntervalSpec(bounds, Observation, Discrete)

	if spec.Type != Observation || spec.Cardinality != Discrete {
		t.Errorf("unexpected spec type %v or cardinality %v", spec.Type,
			spec.Cardinality)
	}
	for i, b := range spec.Intervals() {
		if b != bounds[i] {
			t.Errorf("interval %d: want %v, have %v", i, bounds[i], b)
		}
	}

	tests := []struct {
		v    []float64
		want bool
	}{
		{[]float64{0, 0}, true},
		{[]float64{7, 3}, true},
		{[]float64{8, 3}, false},
		{[]float64{0, -1}, false},
	}
	for _, test := range tests {
		v := mat.NewVecDense(len(test.v), test.v)
		if have := spec.Contains(v); have != test.want {
			t.Errorf("contains(%v): want %v, have %v", test.v, test.want, have)
		}
	}
	if spec.Contains(mat.NewVecDense(1, []float64{0})) {
		t.Error("contains: vectors of the wrong length should not be contained")
	}
}

func TestNewSpecPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newSpec: want panic for mismatched bounds")
		}
	}()

	NewSpec(mat.NewVecDense(2, nil), Action, mat.NewVecDense(1, nil),
		mat.NewVecDense(2, nil), Discrete)
}
