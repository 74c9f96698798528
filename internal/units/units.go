// Package units holds the unit and angle conversions shared across the
// toolbox.
package units

import "math"

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// WrapAngle normalizes an angle to the principal range (-pi, pi].
// Implemented as atan2(sin a, cos a) so NaN propagates.
func WrapAngle(a float64) float64 {
	return math.Atan2(math.Sin(a), math.Cos(a))
}

// AngleDiff returns the wrapped difference a-b in (-pi, pi]. Subtracting
// raw angles breaks near the +-pi boundary; always diff through this.
func AngleDiff(a, b float64) float64 {
	return WrapAngle(a - b)
}

// MpsToKnots converts meters per second to knots.
func MpsToKnots(mps float64) float64 { return mps * 3600 / 1852 }

// KnotsToMps converts knots to meters per second.
func KnotsToMps(kn float64) float64 { return kn * 1852 / 3600 }
