package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the workload generator configuration.
// Loaded from YAML via LoadWorkloadSpec(path) or taken from a built-in scenario.
type WorkloadSpec struct {
	NumJobs        int     `yaml:"num_jobs" json:"num_jobs"`
	ArrivalPattern string  `yaml:"arrival_pattern" json:"arrival_pattern"` // bursty | poisson | mix | stress
	CookTimeDist   string  `yaml:"cook_time_dist" json:"cook_time_dist"`   // uniform | expon_tail | mix
	Seed           int64   `yaml:"seed" json:"seed"`
	PrepTime       float64 `yaml:"prep_time,omitempty" json:"prep_time,omitempty"` // constant prep delay for every job
}

// Valid value registries.
var (
	validArrivalPatterns = map[string]bool{
		"bursty": true, "poisson": true, "mix": true, "stress": true,
	}
	validCookTimeDists = map[string]bool{
		"uniform": true, "expon_tail": true, "mix": true,
	}
)

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if s.NumJobs < 0 {
		return fmt.Errorf("num_jobs must be non-negative, got %d", s.NumJobs)
	}
	if !validArrivalPatterns[s.ArrivalPattern] {
		return fmt.Errorf("unknown arrival_pattern %q; valid: bursty, poisson, mix, stress", s.ArrivalPattern)
	}
	if !validCookTimeDists[s.CookTimeDist] {
		return fmt.Errorf("unknown cook_time_dist %q; valid: uniform, expon_tail, mix", s.CookTimeDist)
	}
	if math.IsNaN(s.PrepTime) || math.IsInf(s.PrepTime, 0) || s.PrepTime < 0 {
		return fmt.Errorf("prep_time must be a finite non-negative number, got %f", s.PrepTime)
	}
	return nil
}
