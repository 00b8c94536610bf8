package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/platform/tui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the greeting card",
	Long: `Show the greeting card full screen.

Controls:
  Up/Down, PgUp/PgDn, wheel  - Scroll
  Enter/Space, click         - Press the button
  S                          - Skip the typing
  Ctrl+S                     - Save a screenshot
  ?                          - Toggle help
  Q/Ctrl+C                   - Quit

Examples:
  greeting show
  greeting show --fps 30
  greeting show --config ./card.yaml --log-file greeting.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Log file close on exit

	// Get terminal size before the first WindowSizeMsg arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting", "width", width, "height", height, "fps", flagFPS)
	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("run card: %w", err)
	}
	return nil
}
