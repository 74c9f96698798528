// Package config loads reconstruction configuration from JSON files.
//
// All fields are pointer-typed so partial configs are safe: omitted fields
// keep the built-in defaults of the reference installation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/equinor/camille/internal/units"
	"github.com/equinor/camille/internal/windfield"
)

// Config is the JSON schema for a reconstruction run. Angles are given in
// degrees on the wire and converted to radians when applied.
type Config struct {
	Distance    *float64 `json:"distance,omitempty"`
	HubHeight   *float64 `json:"hub_height,omitempty"`
	LidarHeight *float64 `json:"lidar_height,omitempty"`

	PitchOffsetDeg *float64 `json:"pitch_offset_deg,omitempty"`
	RollOffsetDeg  *float64 `json:"roll_offset_deg,omitempty"`

	// Per-beam line-of-sight angles, indexed by los id.
	AzimuthsDeg *[4]float64 `json:"azimuths_deg,omitempty"`
	ZenithsDeg  *[4]float64 `json:"zeniths_deg,omitempty"`

	// "static" or "motion".
	Model *string `json:"model,omitempty"`

	// "reorder" or "strict".
	Policy *string `json:"policy,omitempty"`

	// Duration string like "5s".
	MaxWindowSpan *string `json:"max_window_span,omitempty"`
}

const maxConfigFileSize = 1 * 1024 * 1024

// Load reads a Config from a JSON file. The path must have a .json
// extension and the file must be under 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &c, nil
}

// Params merges the config over windfield.DefaultParams and returns the
// resulting reconstruction parameters.
func (c *Config) Params() (windfield.Params, error) {
	p := windfield.DefaultParams()
	if c == nil {
		return p, nil
	}

	if c.Distance != nil {
		p.Distance = *c.Distance
	}
	if c.HubHeight != nil {
		p.HubHeight = *c.HubHeight
	}
	if c.LidarHeight != nil {
		p.LidarHeight = *c.LidarHeight
	}
	if c.PitchOffsetDeg != nil {
		p.PitchOffset = units.Radians(*c.PitchOffsetDeg)
	}
	if c.RollOffsetDeg != nil {
		p.RollOffset = units.Radians(*c.RollOffsetDeg)
	}
	if c.AzimuthsDeg != nil {
		for i, deg := range c.AzimuthsDeg {
			p.Azimuths[i] = units.Radians(deg)
		}
	}
	if c.ZenithsDeg != nil {
		for i, deg := range c.ZenithsDeg {
			p.Zeniths[i] = units.Radians(deg)
		}
	}

	if c.Model != nil {
		switch *c.Model {
		case "static":
			p.Model = windfield.ModelStatic
		case "motion":
			p.Model = windfield.ModelMotion
		default:
			return p, fmt.Errorf("unknown beam model %q", *c.Model)
		}
	}
	if c.Policy != nil {
		switch *c.Policy {
		case "reorder":
			p.Policy = windfield.PolicyReorder
		case "strict":
			p.Policy = windfield.PolicyStrict
		default:
			return p, fmt.Errorf("unknown window policy %q", *c.Policy)
		}
	}
	if c.MaxWindowSpan != nil {
		d, err := time.ParseDuration(*c.MaxWindowSpan)
		if err != nil {
			return p, fmt.Errorf("invalid max_window_span: %w", err)
		}
		p.MaxWindowSpan = d
	}
	return p, nil
}
