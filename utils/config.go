package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxParallelism      int           `json:"max_parallelism"`
	Seed                uint64        `json:"seed"`
	RandomDensity       float64       `json:"random_density"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	InjectionCount      int           `json:"injection_count"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		MaxParallelism:      0, // runtime.NumCPU()
		Seed:                42,
		RandomDensity:       0.3,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		InjectionCount:      3,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the engine or the game loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d is smaller than 3x3", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density %v outside [0,1]", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate %v is negative", c.FrameRate)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.Wrap(ErrInvalidConfig, "counts must not be negative")
	}
	return nil
}
