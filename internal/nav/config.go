package nav

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/officenav/internal/floor"
)

// DefaultFloor is the bundled floor used when no file is configured.
const DefaultFloor = "ground_floor"

// Config holds navigator options.
type Config struct {
	// FloorFile is a JSON or YAML floor to load instead of a bundled one.
	FloorFile string
	// FloorName selects a bundled floor when FloorFile is empty.
	FloorName string
	// MetersPerPixel overrides the floor's scale when positive.
	MetersPerPixel float64
	// GridCache is how many occupancy grids to memoize. Zero disables it.
	GridCache int
	// Compact lists fewer landmarks per step, for small displays.
	Compact bool
	// Doorways routes between section entrances instead of centres.
	Doorways bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		FloorName: DefaultFloor,
		GridCache: 8,
		Doorways:  true,
	}
}

// ConfigFromEnv reads OFFICENAV_* variables on top of DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("OFFICENAV_FLOOR_FILE"); v != "" {
		cfg.FloorFile = v
	}
	if v := os.Getenv("OFFICENAV_FLOOR"); v != "" {
		cfg.FloorName = v
	}
	if v := os.Getenv("OFFICENAV_METERS_PER_PIXEL"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid OFFICENAV_METERS_PER_PIXEL %q: %w", v, err)
		}
		cfg.MetersPerPixel = f
	}
	if v := os.Getenv("OFFICENAV_GRID_CACHE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid OFFICENAV_GRID_CACHE %q: %w", v, err)
		}
		cfg.GridCache = n
	}
	if v := os.Getenv("OFFICENAV_COMPACT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid OFFICENAV_COMPACT %q: %w", v, err)
		}
		cfg.Compact = b
	}
	if v := os.Getenv("OFFICENAV_DOORWAYS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid OFFICENAV_DOORWAYS %q: %w", v, err)
		}
		cfg.Doorways = b
	}
	return cfg, nil
}

// LoadFloor loads the configured floor.
func (c Config) LoadFloor() (*floor.Floor, error) {
	if c.FloorFile != "" {
		return floor.LoadFile(c.FloorFile)
	}
	name := c.FloorName
	if name == "" {
		name = DefaultFloor
	}
	return floor.Load(name)
}
