// Package telemetry records run trajectories and the effective configuration
// to an output directory for post-analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/pursuit/config"
)

// TickRecord is one row of the trajectory log.
type TickRecord struct {
	Tick          int     `csv:"tick"`
	Time          float64 `csv:"time"`
	PreyX         float64 `csv:"prey_x"`
	PreyY         float64 `csv:"prey_y"`
	PreyHeading   float64 `csv:"prey_heading"`
	PreySpeed     float64 `csv:"prey_speed"`
	PreyTurnRate  float64 `csv:"prey_turn_rate"`
	PreyEscaping  bool    `csv:"prey_escaping"`
	PredX         float64 `csv:"pred_x"`
	PredY         float64 `csv:"pred_y"`
	PredHeading   float64 `csv:"pred_heading"`
	PredSpeed     float64 `csv:"pred_speed"`
	PredTurnRate  float64 `csv:"pred_turn_rate"`
	PredTargeting bool    `csv:"pred_targeting"`
	PredStriking  bool    `csv:"pred_striking"`
	SuctionRadius float64 `csv:"suction_radius"`
	Distance      float64 `csv:"distance"`
	Captured      bool    `csv:"captured"`
}

// Recorder handles structured run output with CSV logging.
type Recorder struct {
	dir            string
	trajectoryFile *os.File

	// Track if headers have been written
	headerWritten bool
}

// NewRecorder creates a recorder writing into dir. Returns nil if dir is
// empty (output disabled); a nil Recorder is safe to use.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, "trajectory.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trajectory.csv: %w", err)
	}
	return &Recorder{dir: dir, trajectoryFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML next to the logs.
func (r *Recorder) WriteConfig(cfg *config.Config) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, "config.yaml"))
}

// WriteTick appends one trajectory row, emitting the header on first use.
func (r *Recorder) WriteTick(rec TickRecord) error {
	if r == nil {
		return nil
	}

	records := []TickRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.trajectoryFile); err != nil {
			return fmt.Errorf("writing trajectory: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.trajectoryFile); err != nil {
		return fmt.Errorf("writing trajectory: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.trajectoryFile.Close()
}
