// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the typereduce command.
//
// Example file:
//
//	algorithm: eiasc
//	epsilon: 1e-7
//	max-iterations: 0
//	workers: 4
//	log-level: info
//	ekm:
//	  left-seed-divisor: 2.4
//	  right-seed-divisor: 1.7
package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/typereduction/reduce"
	"github.com/op/go-logging"
	"gopkg.in/yaml.v3"
)

var log = logging.MustGetLogger("config")

const (
	DefaultAlgorithm = "eiasc"
	DefaultLogLevel  = "WARNING"
)

// EKMConfig holds the EKM starting switch points.
type EKMConfig struct {
	LeftSeedDivisor  float64 `yaml:"left-seed-divisor"`
	RightSeedDivisor float64 `yaml:"right-seed-divisor"`
}

// Config is the on-disk configuration. Zero values are replaced by defaults in Validate.
type Config struct {
	Algorithm     string    `yaml:"algorithm"`
	Epsilon       float64   `yaml:"epsilon"`
	MaxIterations int       `yaml:"max-iterations"`
	Workers       int       `yaml:"workers"`
	LogLevel      string    `yaml:"log-level"`
	EKM           EKMConfig `yaml:"ekm"`
}

// Default returns a validated configuration with every default filled in.
func Default() *Config {
	c := &Config{}
	// Validate cannot fail on the zero Config: every field it checks is
	// replaced by a default that reduce.Options.Validate accepts.
	_ = c.Validate()

	return c
}

// Validate fills zero fields with defaults and rejects values no reducer accepts.
// Epsilon 0 is replaced by reduce.DefaultEpsilon; exact comparison is only
// reachable through reduce.Options directly.
func (c *Config) Validate() error {
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	if _, err := reduce.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.Epsilon == 0 {
		c.Epsilon = reduce.DefaultEpsilon
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.EKM.LeftSeedDivisor == 0 {
		c.EKM.LeftSeedDivisor = reduce.DefaultLeftSeedDivisor
	}
	if c.EKM.RightSeedDivisor == 0 {
		c.EKM.RightSeedDivisor = reduce.DefaultRightSeedDivisor
	}
	return c.Options().Validate()
}

// ParsedAlgorithm returns the algorithm selector.
func (c *Config) ParsedAlgorithm() (reduce.Algorithm, error) {
	return reduce.ParseAlgorithm(c.Algorithm)
}

// Options converts the numeric settings into reducer options.
func (c *Config) Options() reduce.Options {
	return reduce.Options{
		Epsilon:          c.Epsilon,
		MaxIterations:    c.MaxIterations,
		LeftSeedDivisor:  c.EKM.LeftSeedDivisor,
		RightSeedDivisor: c.EKM.RightSeedDivisor,
	}
}

// Load reads and validates the file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := &Config{}
	if err = yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	log.Infof("loaded config %s: %+v", path, *c)

	return c, nil
}
