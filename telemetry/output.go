package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/advent/config"
)

// OutputManager writes session logs as CSV.
type OutputManager struct {
	dir             string
	transitionsFile *os.File
	framesFile      *os.File

	// Track if headers have been written
	transitionsHeaderWritten bool
	framesHeaderWritten      bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "transitions.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating transitions.csv: %w", err)
	}
	om.transitionsFile = f

	f, err = os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		om.transitionsFile.Close()
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.framesFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTransition appends a record to transitions.csv.
func (om *OutputManager) WriteTransition(r TransitionRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.transitionsFile, []TransitionRecord{r}, &om.transitionsHeaderWritten); err != nil {
		return fmt.Errorf("writing transition: %w", err)
	}
	return nil
}

// WriteFrames appends a frame statistics record to frames.csv.
func (om *OutputManager) WriteFrames(stats PerfStats, frame uint64, state string) error {
	if om == nil {
		return nil
	}
	records := []PerfStatsCSV{stats.ToCSV(frame, state)}
	if err := writeRecords(om.framesFile, records, &om.framesHeaderWritten); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// writeRecords writes the header on first use only.
func writeRecords(f *os.File, records any, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files. Closing twice is a no-op.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []**os.File{&om.transitionsFile, &om.framesFile} {
		if *f == nil {
			continue
		}
		if err := (*f).Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		*f = nil
	}
	return firstErr
}
