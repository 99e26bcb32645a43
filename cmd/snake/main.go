// snake is a toroidal Snake game drawn into a pixel framebuffer.
//
// Usage:
//
//	snake                    - Play with the configured backend
//	snake play               - Same as above
//	snake backends           - List available backends
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Frames per second (default from config: 8)
//	--seed <value>      - RNG seed for reproducible games (0 = time based)
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/pixel-snake/internal/platform/term"
	_ "github.com/vovakirdan/pixel-snake/internal/platform/tui"
	_ "github.com/vovakirdan/pixel-snake/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// execute runs the command line; a non-nil error means exit status 1.
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a wrap-around board",
	Long: `Snake is the classic game on a board whose edges wrap around.
Eat food to grow; running into your own body ends the game.

Available commands:
  play      - Play the game (default)
  backends  - Show all available backends
  config    - Print the effective configuration

Examples:
  snake
  snake play --backend window
  snake --fps 12 --seed 42
  snake play --width 30 --height 15
  snake config > ~/.snake/config.yaml`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
