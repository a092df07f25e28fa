package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/stovesim/stovesim/sim/workload"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version    string              `yaml:"version"`
	NumWorkers int                 `yaml:"num_workers"`
	Scenarios  []workload.Scenario `yaml:"scenarios"`
	Variants   []workload.Variant  `yaml:"variants"`
}

// builtinConfig mirrors the shipped defaults.yaml.
func builtinConfig() Config {
	return Config{
		Version:    "1",
		NumWorkers: 4,
		Scenarios:  workload.BuiltinScenarios(),
		Variants:   workload.BuiltinVariants(),
	}
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("defaults file %s: %w", path, err)
	}
	return cfg, nil
}

// resolveDefaultsConfig loads path, falling back to the built-in presets
// when the file does not exist. Any other read or parse failure is an error.
func resolveDefaultsConfig(path string) (Config, error) {
	cfg, err := loadDefaultsConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("defaults file %q not found; using built-in scenarios", path)
		return builtinConfig(), nil
	}
	return cfg, err
}

func (c Config) validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("no scenarios defined")
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("no variants defined")
	}
	names := make(map[string]bool, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if s.Name == "" || names[s.Name] {
			return fmt.Errorf("scenario names must be unique and non-empty, got %q", s.Name)
		}
		names[s.Name] = true
		if err := s.Spec.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	names = make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if v.Name == "" || names[v.Name] {
			return fmt.Errorf("variant names must be unique and non-empty, got %q", v.Name)
		}
		names[v.Name] = true
		if err := v.RunConfig(1).Validate(); err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
	}
	return nil
}
