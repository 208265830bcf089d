// Package config holds the settings of the demo driver.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config is filled in from the command line by opts.
type Config struct {
	Buckets    int    `opts:"help=number of hash table buckets"`
	Iterations int    `opts:"help=number of random keys inserted into the hash table"`
	MaxFeature int    `opts:"help=exclusive upper bound of each random key feature"`
	Seed       int64  `opts:"help=random seed (0 picks one from the clock)"`
	LogLevel   string `opts:"help=log level (trace|debug|info|warn|error)"`
	NoColor    bool   `opts:"help=disable colored output"`
}

// Default returns the configuration the driver runs with when no
// flags are given.
func Default() Config {
	return Config{
		Buckets:    100,
		Iterations: 10000,
		MaxFeature: 10000,
		LogLevel:   "info",
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Buckets <= 0 {
		return errors.Errorf("buckets: must be positive, got %d", c.Buckets)
	}
	if c.Iterations < 0 {
		return errors.Errorf("iterations: must not be negative, got %d", c.Iterations)
	}
	if c.MaxFeature <= 0 {
		return errors.Errorf("max-feature: must be positive, got %d", c.MaxFeature)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log-level")
	}
	return nil
}

// ResolveSeed returns Seed, or a clock based seed when Seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
