package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-greeting/internal/page"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Print the full message",
	Long: `Print the card's message at once, without the typing animation.

Examples:
  greeting message
  greeting message --config ./card.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), page.FullMessage(cfg.Content))
		return nil
	},
}
