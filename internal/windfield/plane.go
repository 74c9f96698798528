package windfield

import "math"

// planeDesc reconstructs the wind in the horizontal plane spanned by beams
// a and b. If either beam is invalid the plane is all-NaN with status 0 and
// no computation is performed.
//
// Pitch and roll are averaged between the two beams for the solver. Under
// ModelMotion the sample position and inertial correction are computed per
// beam, from that beam's own attitude and motion channels, not averaged.
func planeDesc(model BeamModel, a, b Sample, p Params, azmA, azmB, znA, znB float64) PlaneDesc {
	if a.Status == 0 || b.Status == 0 {
		return nanPlane(0)
	}

	rotation := EulerAngles{
		Pitch: (a.Rotation.Pitch + b.Rotation.Pitch) / 2,
		Roll:  (a.Rotation.Roll + b.Rotation.Roll) / 2,
	}

	var x, y, hgt float64
	switch model {
	case ModelMotion:
		posA := SamplePosition(p.LidarHeight, p.Distance,
			a.Translation.Z, a.Translation.X,
			a.Rotation.Pitch, a.Rotation.Roll, azmA, znA)
		posB := SamplePosition(p.LidarHeight, p.Distance,
			b.Translation.Z, b.Translation.X,
			b.Rotation.Pitch, b.Rotation.Roll, azmB, znB)

		iA := InertialVelocity(a.Velocity, a.AngularVelocity, posA)
		iB := InertialVelocity(b.Velocity, b.AngularVelocity, posB)

		x, y = planarWindMotion(a.RWS, b.RWS, rotation, azmA, azmB, znA, znB, iA, iB)
		hgt = (posA.Z + posB.Z) / 2
	default:
		hgtA := SampleHeight(p.HubHeight, p.LidarHeight, p.Distance,
			a.Rotation.Pitch, a.Rotation.Roll, azmA, znA)
		hgtB := SampleHeight(p.HubHeight, p.LidarHeight, p.Distance,
			b.Rotation.Pitch, b.Rotation.Roll, azmB, znB)

		x, y = planarWind(a.RWS, b.RWS, rotation.Pitch, rotation.Roll, azmA, azmB, znA, znB)
		hgt = (hgtA + hgtB) / 2
	}

	return PlaneDesc{
		Status: 1,
		Spd:    math.Hypot(x, y),
		Dir:    math.Atan2(y, x),
		X:      x,
		Y:      y,
		Hgt:    hgt,
	}
}
