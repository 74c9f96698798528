package windfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectWind synthesises the radial speed a beam would measure for a given
// horizontal wind vector.
func projectWind(vx, vy, pitch, roll, azm, zn float64) float64 {
	cx, cy, _ := losCoefficients(pitch, roll, azm, zn)
	return cx*vx + cy*vy
}

func TestPlanarWind_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		vx, vy      float64
		pitch, roll float64
	}{
		{"head wind, level", 8, 0, 0, 0},
		{"cross wind, level", 0, 5, 0, 0},
		{"oblique wind, pitched", 7, 2, 0.05, 0},
		{"oblique wind, rolled", 7, 2, 0, -0.03},
		{"oblique wind, pitched and rolled", -4, 11, 0.08, 0.06},
	}

	const (
		azmA, azmB = 0.1, 1.2
		znA, znB   = 0.4, 0.5
	)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rwsA := projectWind(tt.vx, tt.vy, tt.pitch, tt.roll, azmA, znA)
			rwsB := projectWind(tt.vx, tt.vy, tt.pitch, tt.roll, azmB, znB)

			x, y := planarWind(rwsA, rwsB, tt.pitch, tt.roll, azmA, azmB, znA, znB)
			assert.InDelta(t, tt.vx, x, 1e-9)
			assert.InDelta(t, tt.vy, y, 1e-9)

			// The solution must reproduce both measurements when re-projected.
			assert.InDelta(t, rwsA, projectWind(x, y, tt.pitch, tt.roll, azmA, znA), 1e-9)
			assert.InDelta(t, rwsB, projectWind(x, y, tt.pitch, tt.roll, azmB, znB), 1e-9)
		})
	}
}

func TestPlanarWind_DegenerateGeometry(t *testing.T) {
	t.Parallel()

	// Coincident beams leave the 2x2 system singular. IEEE division takes
	// over: no panic, no error, just non-finite output.
	x, y := planarWind(3, 4, 0, 0, 0.4, 0.4, 0.3, 0.3)
	assert.False(t, isFinite(x))
	assert.False(t, isFinite(y))
}

func TestPlanarWindMotion_ZeroMotionMatchesStatic(t *testing.T) {
	t.Parallel()

	const (
		azmA, azmB = 0.1, 1.2
		znA, znB   = 0.4, 0.5
	)
	rotation := EulerAngles{Pitch: 0.05, Roll: -0.03}

	rwsA := projectWind(7, 2, rotation.Pitch, rotation.Roll, azmA, znA)
	rwsB := projectWind(7, 2, rotation.Pitch, rotation.Roll, azmB, znB)

	sx, sy := planarWind(rwsA, rwsB, rotation.Pitch, rotation.Roll, azmA, azmB, znA, znB)
	mx, my := planarWindMotion(rwsA, rwsB, rotation, azmA, azmB, znA, znB, Vec3{}, Vec3{})

	assert.InDelta(t, sx, mx, 1e-12)
	assert.InDelta(t, sy, my, 1e-12)
}

func TestPlanarWindMotion_RoundTrip(t *testing.T) {
	t.Parallel()

	const (
		azmA, azmB = 0.1, 1.2
		znA, znB   = 0.4, 0.5
		vx, vy     = 7.0, 2.0
	)
	rotation := EulerAngles{Pitch: 0.05, Roll: -0.03}
	iA := Vec3{X: 0.4, Y: -0.2, Z: 0.9}
	iB := Vec3{X: -0.1, Y: 0.3, Z: 0.5}

	// Each beam sees the wind relative to its own moving sample volume.
	synth := func(azm, zn float64, i Vec3) float64 {
		cx, cy, cz := losCoefficients(rotation.Pitch, rotation.Roll, azm, zn)
		return cx*(vx-i.X) + cy*(vy-i.Y) - cz*i.Z
	}
	rwsA := synth(azmA, znA, iA)
	rwsB := synth(azmB, znB, iB)

	x, y := planarWindMotion(rwsA, rwsB, rotation, azmA, azmB, znA, znB, iA, iB)
	require.InDelta(t, vx, x, 1e-9)
	require.InDelta(t, vy, y, 1e-9)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
