package windfield

import "math"

// SampleHeight returns the height of a beam's sample volume for the static
// beam model. The beam travels dist/cos(zn) along its own axis; the
// vertical component of that slant range follows from rotating the beam
// unit vector by the platform pitch and roll.
//
//	scale = sin(zn)*cos(pitch)*sin(azm-roll) + cos(zn)*sin(pitch)
//
// is the collapsed form of the full rotation Ry(pitch)·Rx(roll) applied to
// the line-of-sight vector and projected onto Z.
func SampleHeight(hubHgt, lidarHgt, dist, pitch, roll, azm, zn float64) float64 {
	scale := math.Sin(zn)*math.Cos(pitch)*math.Sin(azm-roll) + math.Cos(zn)*math.Sin(pitch)
	return hubHgt + lidarHgt + (dist/math.Cos(zn))*scale
}

// SamplePosition returns the 3D position of a beam's sample volume for the
// motion-compensated beam model. The beam unit vector
//
//	L = (cos zn, sin zn * cos azm, sin zn * sin azm)
//
// is rotated by Ry(pitch)·Rx(roll), scaled by the slant range dist/cos(zn),
// and offset by the lever arm of the lidar mounting height and the platform
// surge and heave dislocations.
func SamplePosition(lidarHgt, dist, heave, surge, pitch, roll, azm, zn float64) Vec3 {
	sinP, cosP := math.Sincos(pitch)
	sinR, cosR := math.Sincos(roll)
	sinA, cosA := math.Sincos(azm)
	sinZ, cosZ := math.Sincos(zn)
	d := dist / cosZ
	return Vec3{
		X: cosP*d*cosZ + sinP*sinZ*d*(sinR*cosA-cosR*sinA) - sinP*cosR*lidarHgt + surge,
		Y: sinZ*d*(cosR*cosA+sinR*sinA) + sinR*lidarHgt,
		Z: sinP*d*cosZ + cosP*sinZ*d*(cosR*sinA-sinR*cosA) + cosP*cosR*lidarHgt + heave,
	}
}

// InertialVelocity returns the apparent velocity at position p on a rigid
// platform moving with linear velocity v and angular velocity w, using the
// small-angle body-frame cross terms. The result is subtracted from the
// wind vector before projection onto a beam, compensating for
// platform-induced apparent motion.
func InertialVelocity(v Vec3, w EulerAngles, p Vec3) Vec3 {
	return Vec3{
		X: v.X + (w.Yaw*p.Y - w.Pitch*p.Z),
		Y: v.Y + (w.Roll*p.Z - w.Yaw*p.X),
		Z: v.Z + (w.Pitch*p.X - w.Roll*p.Y),
	}
}
