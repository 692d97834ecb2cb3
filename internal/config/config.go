// Package config provides YAML-based configuration loading for the game,
// with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"

	blockscore "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Tick rate bounds accepted by Validate.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// BlocksConfig contains all configuration for the Falling Blocks game.
type BlocksConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Mini   BoardConfig  `yaml:"mini"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig sets the size of the well.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// TimingConfig defines gravity and simulation speed.
type TimingConfig struct {
	DropIntervalMs int `yaml:"drop_interval_ms"` // Gravity: one soft drop per interval
	TickRate       int `yaml:"tick_rate"`        // Simulation ticks per second
}

// DropEveryTicks converts the drop interval into simulation ticks.
// Never returns less than 1.
func (t TimingConfig) DropEveryTicks() int {
	if t.TickRate <= 0 {
		return 1
	}
	ticks := (t.DropIntervalMs*t.TickRate + 500) / 1000
	return max(1, ticks)
}

// Validate rejects values the engine or the platform cannot run with.
func (c BlocksConfig) Validate() error {
	if err := c.Board.validate("board"); err != nil {
		return err
	}
	if err := c.Mini.validate("mini"); err != nil {
		return err
	}
	if c.Timing.DropIntervalMs <= 0 {
		return fmt.Errorf("%w: timing.drop_interval_ms must be positive, got %d",
			ErrInvalidConfig, c.Timing.DropIntervalMs)
	}
	if c.Timing.TickRate < MinTickRate || c.Timing.TickRate > MaxTickRate {
		return fmt.Errorf("%w: timing.tick_rate must be in [%d, %d], got %d",
			ErrInvalidConfig, MinTickRate, MaxTickRate, c.Timing.TickRate)
	}
	return nil
}

func (b BoardConfig) validate(section string) error {
	if b.Rows < blockscore.MinRows {
		return fmt.Errorf("%w: %s.rows must be at least %d, got %d",
			ErrInvalidConfig, section, blockscore.MinRows, b.Rows)
	}
	if b.Columns < blockscore.MinColumns {
		return fmt.Errorf("%w: %s.columns must be at least %d, got %d",
			ErrInvalidConfig, section, blockscore.MinColumns, b.Columns)
	}
	return nil
}
