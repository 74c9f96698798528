package windfield

import (
	"math"
	"time"

	"github.com/equinor/camille/internal/units"
)

// BeamModel selects how beam geometry and radial speeds are interpreted.
type BeamModel int

const (
	// ModelStatic assumes a fixed mounting at a known hub height with no
	// platform motion correction.
	ModelStatic BeamModel = iota

	// ModelMotion corrects sample positions and radial speeds for platform
	// translation, rotation and their time derivatives.
	ModelMotion
)

// WindowPolicy selects how 4-sample windows are validated.
type WindowPolicy int

const (
	// PolicyReorder accepts a window iff its four los ids are exactly
	// {0,1,2,3} in any order, slots samples by los id, and skips rejected
	// windows entirely. Rows where neither plane validates are dropped.
	PolicyReorder WindowPolicy = iota

	// PolicyStrict requires raw order 0,1,2,3, all-good status flags and a
	// bounded timestamp span. Every input index produces exactly one output
	// row; rejected windows yield all-NaN rows, preserving alignment with
	// the input.
	PolicyStrict
)

// Params holds the fixed reconstruction geometry and engine configuration.
//
// Azimuths and Zeniths are indexed by los id: slots {0,1} form the upper
// beam pair, slots {2,3} the lower pair. HubHeight participates in beam
// heights only under ModelStatic; ModelMotion measures heights relative to
// the platform via LidarHeight and the heave channel.
type Params struct {
	Distance    float64 // measurement distance along the horizontal, meters
	HubHeight   float64 // nacelle hub height, meters
	LidarHeight float64 // lidar mounting height, meters

	// Calibration offsets added to every sample's pitch and roll, radians.
	PitchOffset float64
	RollOffset  float64

	Azimuths [4]float64 // per-beam line-of-sight azimuth, radians
	Zeniths  [4]float64 // per-beam line-of-sight zenith, radians

	Model  BeamModel
	Policy WindowPolicy

	// MaxWindowSpan bounds max(time)-min(time) within a window under
	// PolicyStrict. Zero means the 5 second default.
	MaxWindowSpan time.Duration
}

const defaultMaxWindowSpan = 5 * time.Second

func (p Params) maxWindowSpanNanos() int64 {
	if p.MaxWindowSpan <= 0 {
		return int64(defaultMaxWindowSpan)
	}
	return int64(p.MaxWindowSpan)
}

// Wind Iris four-beam optics: two beams look up at 5 degrees, two down at
// -5, with telescope angles of +-15 degrees. Zenith and azimuth follow from
// the spherical decomposition of each line of sight.
var (
	beamElevations = [4]float64{units.Radians(5), units.Radians(5), units.Radians(-5), units.Radians(-5)}
	beamTelescopes = [4]float64{units.Radians(-15), units.Radians(15), units.Radians(-15), units.Radians(15)}
)

// DefaultAzimuths returns the per-beam azimuths of the standard four-beam
// optics, indexed by los id.
func DefaultAzimuths() [4]float64 {
	var azm [4]float64
	for i := range azm {
		azm[i] = math.Atan2(math.Sin(beamElevations[i]), math.Tan(beamTelescopes[i]))
	}
	return azm
}

// DefaultZeniths returns the per-beam zeniths of the standard four-beam
// optics, indexed by los id.
func DefaultZeniths() [4]float64 {
	var zn [4]float64
	for i := range zn {
		zn[i] = math.Acos(math.Cos(beamElevations[i]) * math.Cos(beamTelescopes[i]))
	}
	return zn
}

// DefaultParams returns the reconstruction parameters of the reference
// installation: standard four-beam optics on a 98.6 m hub with the lidar
// mounted 4.5 m above it, and the surveyed pitch and roll calibration
// offsets.
func DefaultParams() Params {
	return Params{
		HubHeight:     98.6,
		LidarHeight:   4.5,
		PitchOffset:   units.Radians(-2.0),
		RollOffset:    units.Radians(0.4),
		Azimuths:      DefaultAzimuths(),
		Zeniths:       DefaultZeniths(),
		Model:         ModelStatic,
		Policy:        PolicyStrict,
		MaxWindowSpan: defaultMaxWindowSpan,
	}
}
