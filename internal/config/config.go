// Package config holds the YAML run configuration of the mincut CLI.
//
// A file looks like:
//
//	trials: 200
//	concurrent: true
//	seed: 42
//	max_workers: 8
//	confidence: 0.99
//	log_level: debug
//	graph:
//	  file: graph.txt
//	  edges:
//	    - "a -- b"
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultTrials   = 100
	DefaultLogLevel = "info"
)

// ErrInvalidConfig indicates values that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Graph names where the graph comes from. Edges are added after File is loaded.
type Graph struct {
	File  string   `yaml:"file,omitempty"`
	Edges []string `yaml:"edges,omitempty"`
}

// Config is one run configuration.
type Config struct {
	// Trials is the sequential trial count or the worker count. 0 means
	// derive it from Confidence.
	Trials int `yaml:"trials"`

	Concurrent bool `yaml:"concurrent"`

	// Seed fixes the run when non-nil.
	Seed *uint64 `yaml:"seed,omitempty"`

	MaxWorkers int     `yaml:"max_workers"`
	Confidence float64 `yaml:"confidence,omitempty"`
	LogLevel   string  `yaml:"log_level"`
	Graph      Graph   `yaml:"graph"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Trials:   DefaultTrials,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads path over Default(). Keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports values no run can use.
func (c Config) Validate() error {
	switch {
	case c.Trials < 0:
		return fmt.Errorf("%w: trials must be >= 0, got %d", ErrInvalidConfig, c.Trials)
	case c.MaxWorkers < 0:
		return fmt.Errorf("%w: max_workers must be >= 0, got %d", ErrInvalidConfig, c.MaxWorkers)
	case c.Confidence < 0 || c.Confidence >= 1:
		return fmt.Errorf("%w: confidence must be in [0,1), got %v", ErrInvalidConfig, c.Confidence)
	case c.Trials == 0 && c.Confidence == 0:
		return fmt.Errorf("%w: trials is 0 and no confidence is set", ErrInvalidConfig)
	}

	return nil
}

// Write saves c to path as YAML.
func Write(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
