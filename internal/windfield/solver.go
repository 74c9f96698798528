package windfield

import "math"

// losCoefficients returns the projection of the rotated line-of-sight
// vector RL = Ry(pitch)·Rx(roll)·L onto the body axes. A measured radial
// wind speed is the dot product of RL with the wind vector, so with
// vertical wind assumed zero each beam contributes one linear equation
//
//	rws = cx*Vx + cy*Vy
//
// in the horizontal wind components. cz only matters when an inertial
// correction is folded in (motion-compensated model).
func losCoefficients(pitch, roll, azm, zn float64) (cx, cy, cz float64) {
	sinP, cosP := math.Sincos(pitch)
	sinR, cosR := math.Sincos(roll)
	sinA, cosA := math.Sincos(azm)
	sinZ, cosZ := math.Sincos(zn)

	cx = cosP*cosZ + cosA*sinP*sinR*sinZ - cosR*sinP*sinZ*sinA
	cy = cosR*cosA*sinZ + sinR*sinZ*sinA
	cz = cosZ*sinP - cosP*cosA*sinR*sinZ + cosP*cosR*sinZ*sinA
	return cx, cy, cz
}

// planarWind solves the two-beam linear system for the horizontal wind
// vector, static beam model:
//
//	rws_a = a0*Vx + a1*Vy
//	rws_b = b0*Vx + b1*Vy
//
//	Vx = (a1*rws_b - b1*rws_a) / (a1*b0 - b1*a0)
//	Vy = (rws_a - a0*Vx) / a1
//
// Degenerate geometry (coincident beams) makes the denominator zero and
// yields IEEE Inf/NaN; downstream treats those as unusable, so there is no
// explicit guard.
func planarWind(rwsA, rwsB, pitch, roll, azmA, azmB, znA, znB float64) (x, y float64) {
	a0, a1, _ := losCoefficients(pitch, roll, azmA, znA)
	b0, b1, _ := losCoefficients(pitch, roll, azmB, znB)

	x = (a1*rwsB - b1*rwsA) / (a1*b0 - b1*a0)
	y = (rwsA - a0*x) / a1
	return x, y
}

// planarWindMotion solves the same system with per-beam inertial reference
// frame corrections iA and iB. Each beam measures the wind relative to its
// own moving sample volume:
//
//	rws_a = a0*(Vx - Ix_a) + a1*(Vy - Iy_a) - a2*Iz_a
//	rws_b = b0*(Vx - Ix_b) + b1*(Vy - Iy_b) - b2*Iz_b
//
// solved in closed form for (Vx, Vy).
func planarWindMotion(rwsA, rwsB float64, rotation EulerAngles, azmA, azmB, znA, znB float64, iA, iB Vec3) (x, y float64) {
	a0, a1, a2 := losCoefficients(rotation.Pitch, rotation.Roll, azmA, znA)
	b0, b1, b2 := losCoefficients(rotation.Pitch, rotation.Roll, azmB, znB)

	x = (a0*b1*iA.X - a1*b0*iB.X + a1*b1*(iA.Y-iB.Y) -
		a1*b2*iB.Z + a2*b1*iA.Z - a1*rwsB + b1*rwsA) /
		(a0*b1 - a1*b0)
	y = (rwsA-a0*(x-iA.X)+a2*iA.Z)/a1 + iA.Y
	return x, y
}
