package windfield

import (
	"math"

	"github.com/equinor/camille/internal/units"
)

// Shear returns the shear coefficient of the wind profile power law fitted
// through two planes:
//
//	spd(h) = spd_ref * (h / h_ref)^shear
//
// Equal speeds give zero shear; equal heights give NaN by IEEE division.
func Shear(spdUpr, spdLwr, hgtUpr, hgtLwr float64) float64 {
	return math.Log(spdUpr/spdLwr) / math.Log(hgtUpr/hgtLwr)
}

// Veer returns the vertical gradient of wind direction in radians per unit
// height. The direction difference is wrapped to (-pi, pi] before dividing.
func Veer(dirUpr, dirLwr, hgtUpr, hgtLwr float64) float64 {
	return units.AngleDiff(dirUpr, dirLwr) / (hgtUpr - hgtLwr)
}

// ExtrapolateSpeed extrapolates a wind speed measured at refHgt to hgt
// using the wind profile power law.
func ExtrapolateSpeed(hgt, shear, refSpeed, refHgt float64) float64 {
	return refSpeed * math.Pow(hgt/refHgt, shear)
}

// ExtrapolateDirection extrapolates a wind direction measured at refHgt to
// hgt using the linear veer law, wrapped to the principal range.
func ExtrapolateDirection(hgt, veer, refDir, refHgt float64) float64 {
	return units.WrapAngle(refDir + veer*(hgt-refHgt))
}

// assembleWindfield combines a beam-cycle window (slots ordered by los id)
// into one output row: upper plane from beams 0 and 1, lower plane from
// beams 2 and 3, shear and veer between them. Shear and veer stay NaN
// unless both planes are valid; the row itself is emitted regardless.
func assembleWindfield(time int64, window *[4]Sample, p Params) WindfieldDesc {
	upper := planeDesc(p.Model, window[0], window[1], p,
		p.Azimuths[0], p.Azimuths[1], p.Zeniths[0], p.Zeniths[1])
	lower := planeDesc(p.Model, window[2], window[3], p,
		p.Azimuths[2], p.Azimuths[3], p.Zeniths[2], p.Zeniths[3])

	desc := WindfieldDesc{
		Time:  time,
		Shear: math.NaN(),
		Veer:  math.NaN(),
		Upper: upper,
		Lower: lower,
	}
	if upper.Status == 1 && lower.Status == 1 {
		desc.Shear = Shear(upper.Spd, lower.Spd, upper.Hgt, lower.Hgt)
		desc.Veer = Veer(upper.Dir, lower.Dir, upper.Hgt, lower.Hgt)
	}
	return desc
}
