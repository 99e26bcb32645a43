package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/loop"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

var (
	flagBackend  string
	flagWidth    int
	flagHeight   int
	flagCellSize int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game with the configured backend.

Controls:
  Arrows/WASD/hjkl - Turn
  Q/Esc            - Quit
  Ctrl+C           - Quit (terminal backends)

The game ends when the snake runs into itself, or when the board is so full
that no food can be placed. The final frame stays on screen until you quit.

Examples:
  snake play
  snake play --backend term
  snake play --backend window --cell-size 32
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagBackend, "backend", "b", "", "Backend to play on (see 'snake backends')")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	cmd.Flags().IntVar(&flagCellSize, "cell-size", 0, "Window pixels per cell (0 = from config)")
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	if flagSeed != 0 {
		cfg.Timing.Seed = flagSeed
	}
	if flagBackend != "" {
		cfg.Display.Backend = flagBackend
	}
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if flagCellSize > 0 {
		cfg.Display.CellSize = flagCellSize
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !registry.Exists(cfg.Display.Backend) {
		return fmt.Errorf("unknown backend %q, run 'snake backends' to see available backends", cfg.Display.Backend)
	}
	backend, err := registry.Create(cfg.Display.Backend)
	if err != nil {
		return err
	}

	sim, err := cfg.Simulation(core.RGB888, backend.Terminal())
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(backend.Terminal())
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loopCfg := loop.Config{
		Sim:   sim,
		FPS:   cfg.Timing.FPS,
		Seed:  cfg.Timing.Seed,
		Title: cfg.Display.Title,
	}

	logger.Info("starting game",
		"backend", backend.Name(),
		"board", fmt.Sprintf("%dx%d", sim.Width, sim.Height),
		"cell", sim.CellSize,
		"fps", loopCfg.FPS,
	)

	if err := backend.Run(ctx, loopCfg, logger); err != nil {
		if registry.IsInitError(err) {
			logger.Error("initialization failed", "backend", backend.Name(), "error", err)
		} else {
			logger.Error("game stopped", "error", err)
		}
		return err
	}

	logger.Info("game closed")
	return nil
}
