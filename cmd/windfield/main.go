// Command windfield reconstructs horizontal wind speed, direction, shear
// and veer from raw four-beam lidar samples stored in a SQLite database.
//
// Typical usage:
//
//	windfield -db lidar.db -import samples.csv
//	windfield -db lidar.db -config lidar.json -report out/windfield.html -plots out/
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/equinor/camille/internal/config"
	"github.com/equinor/camille/internal/monitoring"
	"github.com/equinor/camille/internal/report"
	"github.com/equinor/camille/internal/winddb"
	"github.com/equinor/camille/internal/windfield"
	"github.com/equinor/camille/internal/windstats"
)

var (
	dbPath      = flag.String("db", "lidar.db", "SQLite database holding beam samples and results")
	configPath  = flag.String("config", "", "JSON reconstruction config (optional)")
	importPath  = flag.String("import", "", "CSV file of beam samples to import, then exit")
	description = flag.String("description", "", "Free-form description stored with the run")
	plotsDir    = flag.String("plots", "", "Directory for PNG plots (optional)")
	reportPath  = flag.String("report", "", "Path for the HTML report (optional)")
)

// importSamples parses a beam-sample CSV. The header must start with
// time,los_id,rws,pitch,roll,status; the eight motion channels (heave,
// surge, surge_velocity, sway_velocity, heave_velocity, pitch_velocity,
// roll_velocity, yaw_velocity) are optional but all-or-nothing.
func importSamples(r io.Reader) (windfield.Columns, error) {
	var c windfield.Columns

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return c, fmt.Errorf("failed to read CSV header: %w", err)
	}

	staticHeader := []string{"time", "los_id", "rws", "pitch", "roll", "status"}
	switch len(header) {
	case len(staticHeader), len(staticHeader) + 8:
	default:
		return c, fmt.Errorf("expected %d or %d columns, got %d",
			len(staticHeader), len(staticHeader)+8, len(header))
	}
	for i, name := range staticHeader {
		if header[i] != name {
			return c, fmt.Errorf("column %d must be %q, got %q", i, name, header[i])
		}
	}
	motion := len(header) == len(staticHeader)+8

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return c, fmt.Errorf("line %d: %w", line, err)
		}

		fields := make([]float64, len(rec))
		for i, s := range rec {
			fields[i], err = strconv.ParseFloat(s, 64)
			if err != nil {
				return c, fmt.Errorf("line %d column %s: %w", line, header[i], err)
			}
		}

		c.Time = append(c.Time, int64(fields[0]))
		c.LOS = append(c.LOS, int(fields[1]))
		c.RWS = append(c.RWS, fields[2])
		c.Pitch = append(c.Pitch, fields[3])
		c.Roll = append(c.Roll, fields[4])
		c.Status = append(c.Status, int(fields[5]))
		if motion {
			c.Heave = append(c.Heave, fields[6])
			c.Surge = append(c.Surge, fields[7])
			c.SurgeVelocity = append(c.SurgeVelocity, fields[8])
			c.SwayVelocity = append(c.SwayVelocity, fields[9])
			c.HeaveVelocity = append(c.HeaveVelocity, fields[10])
			c.PitchVelocity = append(c.PitchVelocity, fields[11])
			c.RollVelocity = append(c.RollVelocity, fields[12])
			c.YawVelocity = append(c.YawVelocity, fields[13])
		}
	}
	return c, nil
}

func runImport(db *winddb.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cols, err := importSamples(f)
	if err != nil {
		return err
	}
	if err := db.InsertSamples(cols); err != nil {
		return err
	}
	monitoring.Logf("imported %d samples from %s", len(cols.Time), path)
	return nil
}

func runReconstruction(db *winddb.DB, params windfield.Params) error {
	if params.Distance <= 0 {
		return fmt.Errorf("measurement distance must be set in the config (got %g)", params.Distance)
	}

	cols, err := db.LoadSamples()
	if err != nil {
		return err
	}
	if len(cols.Time) == 0 {
		return fmt.Errorf("no samples in %s", *dbPath)
	}

	table, err := windfield.Reconstruct(cols, params)
	if err != nil {
		return err
	}

	runID, err := db.InsertRun(*description)
	if err != nil {
		return err
	}
	if err := db.InsertTable(runID, table); err != nil {
		return err
	}

	speeds := windstats.Summarize(table.SpeedUpr)
	monitoring.Logf("run %s: %d samples -> %d rows (%d with upper wind, mean %.2f m/s)",
		runID, len(cols.Time), table.Len(), speeds.Count, speeds.Mean)

	if *plotsDir != "" {
		files, err := report.SavePlots(table, *plotsDir)
		if err != nil {
			return err
		}
		monitoring.Logf("wrote %d plots to %s", len(files), *plotsDir)
	}
	if *reportPath != "" {
		if err := report.WriteHTML(table, *reportPath); err != nil {
			return err
		}
		monitoring.Logf("wrote report to %s", *reportPath)
	}
	return nil
}

func main() {
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("database path is required")
	}

	db, err := winddb.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if *importPath != "" {
		if err := runImport(db, *importPath); err != nil {
			log.Fatalf("import failed: %v", err)
		}
		return
	}

	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	params, err := cfg.Params()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := runReconstruction(db, params); err != nil {
		log.Fatalf("reconstruction failed: %v", err)
	}
}
