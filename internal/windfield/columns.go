package windfield

import (
	"errors"
	"fmt"
)

// Columns is the flat, column-oriented input to the engine: one element per
// raw beam sample across all slices. Time, LOS, RWS, Pitch, Roll and Status
// are always required. The motion channels (Heave through YawVelocity) are
// required under ModelMotion and ignored when nil under ModelStatic.
type Columns struct {
	Time   []int64
	LOS    []int
	RWS    []float64
	Pitch  []float64
	Roll   []float64
	Status []int

	Heave          []float64
	Surge          []float64
	SurgeVelocity  []float64
	SwayVelocity   []float64
	HeaveVelocity  []float64
	PitchVelocity  []float64
	RollVelocity   []float64
	YawVelocity    []float64
}

// ErrColumnLength reports input columns of differing lengths.
var ErrColumnLength = errors.New("lengths of all columns must be the same")

// motionChannels lists the columns that are required under ModelMotion and
// optional (but still length-checked when present) under ModelStatic.
func (c *Columns) motionChannels() map[string][]float64 {
	return map[string][]float64{
		"heave":          c.Heave,
		"surge":          c.Surge,
		"surge_velocity": c.SurgeVelocity,
		"sway_velocity":  c.SwayVelocity,
		"heave_velocity": c.HeaveVelocity,
		"pitch_velocity": c.PitchVelocity,
		"roll_velocity":  c.RollVelocity,
		"yaw_velocity":   c.YawVelocity,
	}
}

// validate checks the structural preconditions before any processing:
// every required column present and of the same length as time.
func (c *Columns) validate(model BeamModel) error {
	n := len(c.Time)

	check := func(name string, length int, present bool) error {
		if !present {
			return fmt.Errorf("column %s is missing: %w", name, ErrColumnLength)
		}
		if length != n {
			return fmt.Errorf("column %s has length %d, time has %d: %w",
				name, length, n, ErrColumnLength)
		}
		return nil
	}

	if err := check("los_id", len(c.LOS), c.LOS != nil); err != nil {
		return err
	}
	if err := check("status", len(c.Status), c.Status != nil); err != nil {
		return err
	}
	for name, col := range map[string][]float64{
		"rws": c.RWS, "pitch": c.Pitch, "roll": c.Roll,
	} {
		if err := check(name, len(col), col != nil); err != nil {
			return err
		}
	}

	for name, col := range c.motionChannels() {
		required := model == ModelMotion
		if col == nil && !required {
			continue
		}
		if err := check(name, len(col), col != nil); err != nil {
			return err
		}
	}
	return nil
}

func at(col []float64, i int) float64 {
	if col == nil {
		return 0
	}
	return col[i]
}

// samples converts the columns into per-beam sample records, applying the
// pitch and roll calibration offsets.
func (c *Columns) samples(p Params) []Sample {
	out := make([]Sample, len(c.Time))
	for i := range c.Time {
		out[i] = Sample{
			Time: c.Time[i],
			LOS:  c.LOS[i],
			RWS:  c.RWS[i],
			Translation: Vec3{
				X: at(c.Surge, i),
				Z: at(c.Heave, i),
			},
			Rotation: EulerAngles{
				Pitch: c.Pitch[i] + p.PitchOffset,
				Roll:  c.Roll[i] + p.RollOffset,
			},
			Velocity: Vec3{
				X: at(c.SurgeVelocity, i),
				Y: at(c.SwayVelocity, i),
				Z: at(c.HeaveVelocity, i),
			},
			AngularVelocity: EulerAngles{
				Pitch: at(c.PitchVelocity, i),
				Roll:  at(c.RollVelocity, i),
				Yaw:   at(c.YawVelocity, i),
			},
			Status: c.Status[i],
		}
	}
	return out
}
