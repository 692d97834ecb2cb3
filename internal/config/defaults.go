package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the hardcoded Falling Blocks configuration.
// It matches defaults/blocks.yaml.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Rows:    20,
			Columns: 10,
		},
		Mini: BoardConfig{
			Rows:    14,
			Columns: 8,
		},
		Timing: TimingConfig{
			DropIntervalMs: 800,
			TickRate:       60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
