package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-form/model"
)

const (
	SeedingDraw    = "draw"
	SeedingDensity = "density"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	CellSize       int           `json:"cell_size"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Seed           int64         `json:"seed"`
	Seeding        string        `json:"seeding"`
	RandomDensity  float64       `json:"random_density"`
	ClearScreen    bool          `json:"clear_screen"`
}

// DefaultConfig returns the 30x20 board, fifty generations at 200ms each
func DefaultConfig() Config {
	return Config{
		Width:          30,
		Height:         20,
		CellSize:       20,
		FrameRate:      200 * time.Millisecond,
		MaxGenerations: 50,
		Seeding:        SeedingDraw,
		RandomDensity:  0.25, // only used by the density seeding
		ClearScreen:    true,
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

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell_size must be positive, got %d", c.CellSize)
	case c.MaxGenerations <= 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must be positive, got %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %s", c.FrameRate)
	case c.Seeding != SeedingDraw && c.Seeding != SeedingDensity:
		return errors.Wrapf(ErrInvalidConfig, "unknown seeding %q", c.Seeding)
	case c.Seeding == SeedingDensity && (c.RandomDensity < 0 || c.RandomDensity > 1):
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	return nil
}

// ResolvedSeed returns the configured seed, or a time based one when unset
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Seeder builds the initial-state policy named by Seeding
func (c Config) Seeder(seed int64) model.Seeder {
	if c.Seeding == SeedingDensity {
		return model.NewDensitySeeder(seed, c.RandomDensity)
	}
	return model.NewDrawSeeder(seed)
}
