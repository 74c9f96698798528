package windfield

import "math"

// Vec3 is a point or vector in the lidar body frame (X forward, Y right,
// Z up, left-handed).
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// EulerAngles holds platform attitude or angular rates in radians (or
// radians per second).
type EulerAngles struct {
	Pitch float64
	Roll  float64
	Yaw   float64
}

// Sample is one beam measurement at one instant. Time is a monotonically
// increasing timestamp in nanoseconds. LOS identifies which of the four
// beams produced the measurement (0-3). RWS is the radial wind speed: the
// wind vector projected onto the beam axis. Status is nonzero for a good
// measurement.
//
// Translation, Velocity and AngularVelocity are only meaningful under
// ModelMotion; they stay zero for static reconstructions.
type Sample struct {
	Time            int64
	LOS             int
	RWS             float64
	Translation     Vec3 // surge (X) and heave (Z) dislocation
	Rotation        EulerAngles
	Velocity        Vec3 // surge, sway, heave velocities
	AngularVelocity EulerAngles
	Status          int
}

// PlaneDesc describes the reconstructed wind in one horizontal plane,
// spanned by a beam pair. Status is 1 iff both contributing beams were
// valid; when it is 0 every numeric field is NaN. Status tracks input
// validity only: degenerate beam geometry can leave Status at 1 while
// Spd and Dir are NaN or infinite.
type PlaneDesc struct {
	Status float64
	Spd    float64
	Dir    float64 // radians, principal range via atan2
	X      float64
	Y      float64
	Hgt    float64 // mean sample height of the two beams
}

// WindfieldDesc is one reconstructed output row: the wind descriptions of
// the upper and lower planes plus the shear and veer between them. Shear
// and Veer are NaN unless both planes are valid.
type WindfieldDesc struct {
	Time  int64
	Shear float64
	Veer  float64
	Upper PlaneDesc
	Lower PlaneDesc
}

// nanPlane is a placeholder for a plane that could not be reconstructed.
// The status argument distinguishes "beams were invalid" (0) from "window
// was rejected outright" (NaN, strict-order policy).
func nanPlane(status float64) PlaneDesc {
	nan := math.NaN()
	return PlaneDesc{
		Status: status,
		Spd:    nan,
		Dir:    nan,
		X:      nan,
		Y:      nan,
		Hgt:    nan,
	}
}

// nanWindfield is an all-NaN output row carrying only its timestamp. The
// strict-order policy emits these for rejected windows to keep row
// alignment with the input.
func nanWindfield(time int64) WindfieldDesc {
	nan := math.NaN()
	return WindfieldDesc{
		Time:  time,
		Shear: nan,
		Veer:  nan,
		Upper: nanPlane(nan),
		Lower: nanPlane(nan),
	}
}
