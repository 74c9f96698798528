package winddb

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equinor/camille/internal/windfield"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "camille.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return db
}

func sampleColumns() windfield.Columns {
	c := windfield.Columns{
		Time:   []int64{0, 1e9, 2e9, 3e9},
		LOS:    []int{0, 1, 2, 3},
		RWS:    []float64{1, 1, 1, 1},
		Pitch:  []float64{0, 0, 0, 0},
		Roll:   []float64{0, 0, 0, 0},
		Status: []int{1, 1, 1, 1},
	}
	return c
}

func TestSampleRoundTrip(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	c := sampleColumns()
	c.Heave = []float64{0.1, 0.2, 0.3, 0.4}
	require.NoError(t, db.InsertSamples(c))

	got, err := db.LoadSamples()
	require.NoError(t, err)
	assert.Equal(t, c.Time, got.Time)
	assert.Equal(t, c.LOS, got.LOS)
	assert.Equal(t, c.RWS, got.RWS)
	assert.Equal(t, c.Status, got.Status)
	assert.Equal(t, c.Heave, got.Heave)

	// Channels omitted on insert come back as zeros, not nil.
	require.Len(t, got.Surge, 4)
	assert.Equal(t, 0.0, got.Surge[0])
}

func TestLoadSamplesOrdering(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	c := sampleColumns()
	c.Time = []int64{3e9, 1e9, 2e9, 0}
	require.NoError(t, db.InsertSamples(c))

	got, err := db.LoadSamples()
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1e9, 2e9, 3e9}, got.Time)
}

func TestTableRoundTrip(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	// Reconstruct a real table so the stored rows include NaN gradients.
	p := windfield.DefaultParams()
	p.Distance = 100
	p.HubHeight = 50
	p.LidarHeight = 0
	p.PitchOffset = 0
	p.RollOffset = 0
	p.Azimuths = [4]float64{0, math.Pi / 2, 0, math.Pi / 2}
	p.Zeniths = [4]float64{math.Pi / 4, math.Pi / 4, math.Pi / 4, math.Pi / 4}
	p.Policy = windfield.PolicyReorder
	p.MaxWindowSpan = 5 * time.Second

	table, err := windfield.Reconstruct(sampleColumns(), p)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	runID, err := db.InsertRun("round trip test")
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	require.NoError(t, db.InsertTable(runID, table))

	got, err := db.LoadTable(runID)
	require.NoError(t, err)
	require.Equal(t, table.Len(), got.Len())

	assert.Equal(t, table.Time, got.Time)
	assert.InDelta(t, table.SpeedUpr[0], got.SpeedUpr[0], 1e-12)
	assert.InDelta(t, table.HeightLwr[0], got.HeightLwr[0], 1e-12)

	// NaN survives the NULL round trip.
	assert.True(t, math.IsNaN(got.Shear[0]))
	assert.True(t, math.IsNaN(got.Veer[0]))
}

func TestRunsAreIsolated(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	p := windfield.DefaultParams()
	p.Distance = 100
	p.Policy = windfield.PolicyReorder
	table, err := windfield.Reconstruct(sampleColumns(), p)
	require.NoError(t, err)

	runA, err := db.InsertRun("run a")
	require.NoError(t, err)
	runB, err := db.InsertRun("run b")
	require.NoError(t, err)
	require.NotEqual(t, runA, runB)

	require.NoError(t, db.InsertTable(runA, table))

	gotA, err := db.LoadTable(runA)
	require.NoError(t, err)
	gotB, err := db.LoadTable(runB)
	require.NoError(t, err)

	assert.Equal(t, table.Len(), gotA.Len())
	assert.Equal(t, 0, gotB.Len())
}
