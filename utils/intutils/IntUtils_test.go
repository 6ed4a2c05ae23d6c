package intutils

import "testing"

func TestMinMax(t *testing.T) {
	values := []int{3, -2, 7, 0}

	if min := Min(values...); min != -2 {
		t.Errorf("min: want -2, have %d", min)
	}
	if max := Max(values...); max != 7 {
		t.Errorf("max: want 7, have %d", max)
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want int
	}{
		{-1, 0, 7, 0},
		{0, 0, 7, 0},
		{4, 0, 7, 4},
		{7, 0, 7, 7},
		{8, 0, 7, 7},
	}

	for _, test := range tests {
		if have := Clip(test.value, test.min, test.max); have != test.want {
			t.Errorf("clip(%d, %d, %d): want %d, have %d", test.value,
				test.min, test.max, test.want, have)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("abs: incorrect absolute value")
	}
}
