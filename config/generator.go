package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Generator defaults
const (
	DefaultWidth              = 64
	DefaultHeight             = 36
	DefaultMaxRoomSize        = 11
	DefaultRoomAttempts       = 600
	DefaultWindingChance      = 50
	DefaultConnectivityChance = 10

	// MinRoomSize is the smallest room edge the placer will produce
	MinRoomSize = 3

	// maxRegionIDs bounds the id counter: each odd interior cell can start
	// at most one region and ids are stored as uint16.
	maxRegionIDs = 1<<16 - 1
)

// ErrInvalidConfig is returned (wrapped) for any rejected generator setting
var ErrInvalidConfig = errors.New("invalid generator config")

// GeneratorConfig holds every tunable of a dungeon generation run
type GeneratorConfig struct {
	Width              int   `toml:"width"`
	Height             int   `toml:"height"`
	MaxRoomSize        int   `toml:"max_room_size"`
	RoomAttempts       int   `toml:"room_attempts"`
	WindingChance      int   `toml:"winding_chance"`      // 0-100, higher gives twistier corridors
	ConnectivityChance int   `toml:"connectivity_chance"` // 0-100, chance to keep a redundant connector as a loop
	Seed               int64 `toml:"seed"`                // 0 means pick one from the clock
}

// DefaultGeneratorConfig returns the stock 64x36 configuration
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		MaxRoomSize:        DefaultMaxRoomSize,
		RoomAttempts:       DefaultRoomAttempts,
		WindingChance:      DefaultWindingChance,
		ConnectivityChance: DefaultConnectivityChance,
	}
}

// LoadGeneratorConfig reads a TOML file on top of the defaults.
// Keys missing from the file keep their default value; unknown keys are rejected.
func LoadGeneratorConfig(path string) (GeneratorConfig, error) {
	cfg := DefaultGeneratorConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Decode(string(data)); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML text onto c
func (c *GeneratorConfig) Decode(text string) error {
	md, err := toml.Decode(text, c)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return nil
}

// Normalize rounds dimensions down to even values, makes the room size odd
// and clamps the chances into 0..100.
func (c *GeneratorConfig) Normalize() {
	c.Width = evenFloor(c.Width)
	c.Height = evenFloor(c.Height)
	if c.MaxRoomSize%2 == 0 {
		c.MaxRoomSize--
	}
	c.MaxRoomSize = max(c.MaxRoomSize, 0)
	c.RoomAttempts = max(c.RoomAttempts, 0)
	c.WindingChance = clampChance(c.WindingChance)
	c.ConnectivityChance = clampChance(c.ConnectivityChance)
}

// Validate checks for settings the generator cannot honor
func (c GeneratorConfig) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("dimensions %dx%d must not be negative", c.Width, c.Height))
	}
	if c.MaxRoomSize < 0 {
		errs = append(errs, fmt.Errorf("max_room_size %d must not be negative", c.MaxRoomSize))
	}
	if c.RoomAttempts < 0 {
		errs = append(errs, fmt.Errorf("room_attempts %d must not be negative", c.RoomAttempts))
	}
	if c.WindingChance < 0 || c.WindingChance > 100 {
		errs = append(errs, fmt.Errorf("winding_chance %d outside 0..100", c.WindingChance))
	}
	if c.ConnectivityChance < 0 || c.ConnectivityChance > 100 {
		errs = append(errs, fmt.Errorf("connectivity_chance %d outside 0..100", c.ConnectivityChance))
	}
	if c.OddCells() >= maxRegionIDs {
		errs = append(errs, fmt.Errorf("%dx%d has too many cells for 16-bit region ids", c.Width, c.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// OddCells returns how many odd-coordinate interior cells the grid has,
// which is the upper bound on regions a run can create.
func (c GeneratorConfig) OddCells() int {
	if c.Width < 3 || c.Height < 3 {
		return 0
	}
	return ((c.Width - 1) / 2) * ((c.Height - 1) / 2)
}

func evenFloor(n int) int {
	if n < 0 {
		return 0
	}
	return n - n%2
}

func clampChance(n int) int {
	return min(max(n, 0), 100)
}
