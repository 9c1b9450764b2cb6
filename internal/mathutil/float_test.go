package mathutil

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside range", 1.5, 1.5},
		{"full turn", Tau, 0},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"two and a half turns", 5 * math.Pi, math.Pi},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAngle(tc.in)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if got < 0 || got >= Tau {
				t.Errorf("NormalizeAngle(%v) = %v outside [0, 2π)", tc.in, got)
			}
		})
	}
}

func TestFrac(t *testing.T) {
	if got := Frac(3.25); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Frac(3.25) = %v, want 0.25", got)
	}
	if got := Frac(-0.25); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Frac(-0.25) = %v, want 0.75", got)
	}
	if got := Frac(2); got != 0 {
		t.Errorf("Frac(2) = %v, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-0.5, 0, 1) != 0 || Clamp(1.5, 0, 1) != 1 || Clamp(0.25, 0, 1) != 0.25 {
		t.Errorf("Clamp returned unexpected values")
	}
}
