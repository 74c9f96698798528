package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equinor/camille/internal/windfield"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "lidar.json", `{
			"distance": 80,
			"hub_height": 110.0,
			"model": "motion",
			"policy": "reorder",
			"max_window_span": "2s"
		}`)
		c, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, c.Distance)
		assert.Equal(t, 80.0, *c.Distance)
		assert.Nil(t, c.LidarHeight)
	})

	t.Run("rejects non-json extension", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "lidar.yaml", `{}`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "lidar.json", `{`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}

func TestParams(t *testing.T) {
	t.Parallel()

	t.Run("nil config keeps defaults", func(t *testing.T) {
		t.Parallel()
		var c *Config
		p, err := c.Params()
		require.NoError(t, err)
		assert.Equal(t, windfield.DefaultParams(), p)
	})

	t.Run("partial override", func(t *testing.T) {
		t.Parallel()
		dist := 80.0
		model := "motion"
		span := "2s"
		c := &Config{Distance: &dist, Model: &model, MaxWindowSpan: &span}

		p, err := c.Params()
		require.NoError(t, err)
		assert.Equal(t, 80.0, p.Distance)
		assert.Equal(t, windfield.ModelMotion, p.Model)
		assert.Equal(t, 2*time.Second, p.MaxWindowSpan)

		// Untouched fields keep their defaults.
		def := windfield.DefaultParams()
		assert.Equal(t, def.HubHeight, p.HubHeight)
		assert.Equal(t, def.Azimuths, p.Azimuths)
	})

	t.Run("degree fields convert to radians", func(t *testing.T) {
		t.Parallel()
		pitch := -2.0
		azm := [4]float64{-15, 15, -15, 15}
		c := &Config{PitchOffsetDeg: &pitch, AzimuthsDeg: &azm}

		p, err := c.Params()
		require.NoError(t, err)
		assert.InDelta(t, -2*math.Pi/180, p.PitchOffset, 1e-12)
		assert.InDelta(t, 15*math.Pi/180, p.Azimuths[1], 1e-12)
	})

	t.Run("unknown enum values error", func(t *testing.T) {
		t.Parallel()
		bad := "wobbly"
		_, err := (&Config{Model: &bad}).Params()
		assert.Error(t, err)
		_, err = (&Config{Policy: &bad}).Params()
		assert.Error(t, err)
	})

	t.Run("invalid duration errors", func(t *testing.T) {
		t.Parallel()
		bad := "five seconds"
		_, err := (&Config{MaxWindowSpan: &bad}).Params()
		assert.Error(t, err)
	})
}
