package config

import (
	"fmt"
	"os"

	"github.com/korjavin/botan/pkg/timetable"
	"gopkg.in/yaml.v3"
)

// BellFile is the YAML form of an institution's bell schedule
type BellFile struct {
	Slots  timetable.BellSchedule `yaml:"slots"`
	Breaks []timetable.BreakRule  `yaml:"breaks"`
}

// LoadBellSchedule reads a bell schedule from a YAML file.
// A file without a breaks key gets no breaks.
func LoadBellSchedule(path string) (*BellFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bell schedule: %w", err)
	}

	var bells BellFile
	if err := yaml.Unmarshal(data, &bells); err != nil {
		return nil, fmt.Errorf("failed to parse bell schedule %s: %w", path, err)
	}

	if err := bells.Slots.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bell schedule %s: %w", path, err)
	}

	for i, b := range bells.Breaks {
		if b.Text == "" {
			return nil, fmt.Errorf("invalid bell schedule %s: break %d has no text", path, i)
		}
		if b.After >= b.Before {
			return nil, fmt.Errorf("invalid bell schedule %s: break %d must go from an earlier slot to a later one", path, i)
		}
	}

	return &bells, nil
}
