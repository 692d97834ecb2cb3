package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvRows           = "BLOCKS_ROWS"
	EnvColumns        = "BLOCKS_COLUMNS"
	EnvDropIntervalMs = "BLOCKS_DROP_INTERVAL_MS"
)

// LoadBlocks loads the game configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default.
// Values missing from a file keep their defaults. Environment overrides are
// applied last and the result is validated.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or broken optional files fall through to the next source.
	for _, path := range []string{userConfigPath("blocks.yaml"), filepath.Join("configs", "blocks.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed := DefaultBlocksConfig()
		if err := yaml.Unmarshal(data, &parsed); err == nil {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlocksYAML, &cfg); err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}

// ApplyEnv overrides cfg with integer values found through lookup.
// Pass os.LookupEnv for the process environment.
func ApplyEnv(cfg *BlocksConfig, lookup func(string) (string, bool)) error {
	overrides := []struct {
		name string
		dst  *int
	}{
		{EnvRows, &cfg.Board.Rows},
		{EnvColumns, &cfg.Board.Columns},
		{EnvDropIntervalMs, &cfg.Timing.DropIntervalMs},
	}

	for _, o := range overrides {
		raw, ok := lookup(o.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, o.name, raw)
		}
		*o.dst = v
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// EnvLookup returns a lookup function over variables read from a .env file,
// without touching the process environment.
func EnvLookup(path string) (func(string) (string, bool), error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}, nil
}
