// Package winddb persists raw beam samples and reconstructed windfield
// tables in SQLite.
//
// Reconstruction runs are identified by UUID so several parameter sets can
// be stored against the same sample set. NaN values are stored as NULL and
// surface as NaN again on load.
package winddb

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/equinor/camille/internal/windfield"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	time BIGINT NOT NULL,
	los_id INTEGER NOT NULL,
	rws DOUBLE NOT NULL,
	pitch DOUBLE NOT NULL,
	roll DOUBLE NOT NULL,
	status INTEGER NOT NULL,
	heave DOUBLE NOT NULL DEFAULT 0,
	surge DOUBLE NOT NULL DEFAULT 0,
	surge_velocity DOUBLE NOT NULL DEFAULT 0,
	sway_velocity DOUBLE NOT NULL DEFAULT 0,
	heave_velocity DOUBLE NOT NULL DEFAULT 0,
	pitch_velocity DOUBLE NOT NULL DEFAULT 0,
	roll_velocity DOUBLE NOT NULL DEFAULT 0,
	yaw_velocity DOUBLE NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS samples_time ON samples(time);

CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	description TEXT
);

CREATE TABLE IF NOT EXISTS windfield (
	run_id TEXT NOT NULL,
	time BIGINT NOT NULL,
	shear DOUBLE,
	veer DOUBLE,
	status_upr DOUBLE,
	status_lwr DOUBLE,
	speed_upr DOUBLE,
	speed_lwr DOUBLE,
	dir_upr DOUBLE,
	dir_lwr DOUBLE,
	x_upr DOUBLE,
	y_upr DOUBLE,
	x_lwr DOUBLE,
	y_lwr DOUBLE,
	height_upr DOUBLE,
	height_lwr DOUBLE,
	FOREIGN KEY(run_id) REFERENCES runs(run_id)
);
CREATE INDEX IF NOT EXISTS windfield_run ON windfield(run_id, time);
`

// DB wraps the toolbox SQLite database.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &DB{db}, nil
}

// InsertSamples stores raw beam samples. Motion channels default to zero
// when the corresponding column slice is nil.
func (db *DB) InsertSamples(c windfield.Columns) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO samples (
		time, los_id, rws, pitch, roll, status,
		heave, surge, surge_velocity, sway_velocity, heave_velocity,
		pitch_velocity, roll_velocity, yaw_velocity
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	get := func(col []float64, i int) float64 {
		if col == nil {
			return 0
		}
		return col[i]
	}
	for i := range c.Time {
		_, err := stmt.Exec(
			c.Time[i], c.LOS[i], c.RWS[i], c.Pitch[i], c.Roll[i], c.Status[i],
			get(c.Heave, i), get(c.Surge, i),
			get(c.SurgeVelocity, i), get(c.SwayVelocity, i), get(c.HeaveVelocity, i),
			get(c.PitchVelocity, i), get(c.RollVelocity, i), get(c.YawVelocity, i),
		)
		if err != nil {
			return fmt.Errorf("failed to insert sample %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadSamples returns all stored samples ordered by time, as engine input
// columns with every channel populated.
func (db *DB) LoadSamples() (windfield.Columns, error) {
	var c windfield.Columns
	rows, err := db.Query(`SELECT
		time, los_id, rws, pitch, roll, status,
		heave, surge, surge_velocity, sway_velocity, heave_velocity,
		pitch_velocity, roll_velocity, yaw_velocity
	FROM samples ORDER BY time, rowid`)
	if err != nil {
		return c, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t        int64
			los, sts int
			f        [12]float64
		)
		err := rows.Scan(&t, &los, &f[0], &f[1], &f[2], &sts,
			&f[3], &f[4], &f[5], &f[6], &f[7], &f[8], &f[9], &f[10])
		if err != nil {
			return c, fmt.Errorf("failed to scan sample: %w", err)
		}
		c.Time = append(c.Time, t)
		c.LOS = append(c.LOS, los)
		c.RWS = append(c.RWS, f[0])
		c.Pitch = append(c.Pitch, f[1])
		c.Roll = append(c.Roll, f[2])
		c.Status = append(c.Status, sts)
		c.Heave = append(c.Heave, f[3])
		c.Surge = append(c.Surge, f[4])
		c.SurgeVelocity = append(c.SurgeVelocity, f[5])
		c.SwayVelocity = append(c.SwayVelocity, f[6])
		c.HeaveVelocity = append(c.HeaveVelocity, f[7])
		c.PitchVelocity = append(c.PitchVelocity, f[8])
		c.RollVelocity = append(c.RollVelocity, f[9])
		c.YawVelocity = append(c.YawVelocity, f[10])
	}
	return c, rows.Err()
}

// InsertRun records a reconstruction run and returns its UUID.
func (db *DB) InsertRun(description string) (string, error) {
	runID := uuid.New().String()
	_, err := db.Exec(`INSERT INTO runs (run_id, description) VALUES (?, ?)`,
		runID, description)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

// nullable maps NaN and infinities to NULL for storage.
func nullable(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// InsertTable stores a reconstructed windfield table under a run.
func (db *DB) InsertTable(runID string, t *windfield.Table) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO windfield (
		run_id, time, shear, veer, status_upr, status_lwr,
		speed_upr, speed_lwr, dir_upr, dir_lwr,
		x_upr, y_upr, x_lwr, y_lwr, height_upr, height_lwr
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < t.Len(); i++ {
		_, err := stmt.Exec(runID, t.Time[i],
			nullable(t.Shear[i]), nullable(t.Veer[i]),
			nullable(t.StatusUpr[i]), nullable(t.StatusLwr[i]),
			nullable(t.SpeedUpr[i]), nullable(t.SpeedLwr[i]),
			nullable(t.DirUpr[i]), nullable(t.DirLwr[i]),
			nullable(t.XUpr[i]), nullable(t.YUpr[i]),
			nullable(t.XLwr[i]), nullable(t.YLwr[i]),
			nullable(t.HeightUpr[i]), nullable(t.HeightLwr[i]))
		if err != nil {
			return fmt.Errorf("failed to insert windfield row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// value maps stored NULLs back to NaN.
func value(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// LoadTable returns the windfield table of a run, ordered by time.
func (db *DB) LoadTable(runID string) (*windfield.Table, error) {
	rows, err := db.Query(`SELECT
		time, shear, veer, status_upr, status_lwr,
		speed_upr, speed_lwr, dir_upr, dir_lwr,
		x_upr, y_upr, x_lwr, y_lwr, height_upr, height_lwr
	FROM windfield WHERE run_id = ? ORDER BY time, rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query windfield: %w", err)
	}
	defer rows.Close()

	t := &windfield.Table{}
	for rows.Next() {
		var (
			tm int64
			f  [14]sql.NullFloat64
		)
		err := rows.Scan(&tm, &f[0], &f[1], &f[2], &f[3], &f[4], &f[5], &f[6],
			&f[7], &f[8], &f[9], &f[10], &f[11], &f[12], &f[13])
		if err != nil {
			return nil, fmt.Errorf("failed to scan windfield row: %w", err)
		}
		t.Time = append(t.Time, tm)
		t.Shear = append(t.Shear, value(f[0]))
		t.Veer = append(t.Veer, value(f[1]))
		t.StatusUpr = append(t.StatusUpr, value(f[2]))
		t.StatusLwr = append(t.StatusLwr, value(f[3]))
		t.SpeedUpr = append(t.SpeedUpr, value(f[4]))
		t.SpeedLwr = append(t.SpeedLwr, value(f[5]))
		t.DirUpr = append(t.DirUpr, value(f[6]))
		t.DirLwr = append(t.DirLwr, value(f[7]))
		t.XUpr = append(t.XUpr, value(f[8]))
		t.YUpr = append(t.YUpr, value(f[9]))
		t.XLwr = append(t.XLwr, value(f[10]))
		t.YLwr = append(t.YLwr, value(f[11]))
		t.HeightUpr = append(t.HeightUpr, value(f[12]))
		t.HeightLwr = append(t.HeightLwr, value(f[13]))
	}
	return t, rows.Err()
}
