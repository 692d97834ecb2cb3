// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks                   - Start the board picker menu
//	blocks menu              - Same as above
//	blocks play [board]      - Play a board directly (default: blocks)
//	blocks list              - List available boards
//	blocks config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-file <path>    - Write logs to a file (the terminal belongs to the game)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	logger  = log.New(io.Discard)
	gameCfg = config.DefaultBlocksConfig()
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Falling Blocks - a line-clearing puzzle in your terminal",
	Long: `Falling Blocks drops pieces into a well. Fill a row to clear it;
clearing several rows with one piece scores more.

Available commands:
  menu     - Interactive board picker (default)
  play     - Play a board directly
  list     - Show all available boards
  config   - Print the effective configuration

Examples:
  blocks
  blocks play blocks_mini
  blocks play --seed 42 --log-file blocks.log --log-level debug
  BLOCKS_COLUMNS=12 blocks play`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env and the YAML config, then wires the logger and the
// config into the game package.
func setup(_ *cobra.Command, _ []string) error {
	l, err := newLogger()
	if err != nil {
		return err
	}
	logger = l

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}
	gameCfg = cfg

	blocks.SetConfig(cfg)
	blocks.SetLogger(logger)

	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Columns),
		"mini", fmt.Sprintf("%dx%d", cfg.Mini.Rows, cfg.Mini.Columns),
		"drop_interval_ms", cfg.Timing.DropIntervalMs,
		"tick_rate", cfg.Timing.TickRate)
	return nil
}

// newLogger builds the process logger. Without --log-file output is
// discarded, since the game owns the terminal.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           level,
	}), nil
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	tickRate := gameCfg.Timing.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}
