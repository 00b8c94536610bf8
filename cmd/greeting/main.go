// greeting is a terminal greeting card: a typed-out message, sections that
// appear as you scroll, and a button that opens a surprise with confetti.
//
// Usage:
//
//	greeting                 - Show the card (same as "greeting show")
//	greeting show            - Show the card
//	greeting message         - Print the full message without animation
//	greeting config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible confetti
//	--config <path>       - Use a custom card configuration
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-greeting/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "greeting",
	Short: "A greeting card for your terminal",
	Long: `greeting shows a small card in your terminal: a message that types
itself out, sections that fade in as you scroll, and a button with a
surprise behind it.

Available commands:
  show     - Show the card (default)
  message  - Print the full message
  config   - Print the effective configuration

Examples:
  greeting
  greeting --config ./card.yaml
  greeting show --seed 42
  greeting config > ~/.greeting/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShow,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom card config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the card configuration from the --config flag and
// the standard lookup paths.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file. Without a log file
// everything is discarded so nothing draws over the card. The returned
// closer must be called on exit.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "greeting",
		Level:           level,
	})
	return logger, f, nil
}
