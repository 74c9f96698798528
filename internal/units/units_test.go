package units

import (
	"math"
	"testing"
)

func TestDegreesRadiansRoundTrip(t *testing.T) {
	for _, deg := range []float64{-180, -90, -15, 0, 5, 45, 90, 360} {
		if got := Degrees(Radians(deg)); math.Abs(got-deg) > 1e-12 {
			t.Errorf("Degrees(Radians(%v)) = %v", deg, got)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi + 0.1, -math.Pi + 0.1},
		{-math.Pi - 0.1, math.Pi - 0.1},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !math.IsNaN(WrapAngle(math.NaN())) {
		t.Error("WrapAngle(NaN) should be NaN")
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0.5, 0.3, 0.2},
		{0.3, 0.5, -0.2},
		{math.Pi - 0.1, -math.Pi + 0.1, -0.2},
		{-math.Pi + 0.1, math.Pi - 0.1, 0.2},
	}
	for _, tt := range tests {
		if got := AngleDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngleDiff(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSpeedConversions(t *testing.T) {
	if got := MpsToKnots(10); math.Abs(got-19.4384449244) > 1e-6 {
		t.Errorf("MpsToKnots(10) = %v", got)
	}
	if got := KnotsToMps(MpsToKnots(7.3)); math.Abs(got-7.3) > 1e-12 {
		t.Errorf("round trip = %v", got)
	}
}
