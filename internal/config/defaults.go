package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  20,
			Height: 20,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
		},
		Food: FoodConfig{
			Count:       1,
			MaxAttempts: 4096,
		},
		Timing: TimingConfig{
			FPS:  8,
			Seed: 0,
		},
		Display: DisplayConfig{
			Title:            "Snake",
			Backend:          "tui",
			CellSize:         25,
			TerminalCellSize: 2,
		},
		Palette: PaletteConfig{
			BoardLight:    "#aad751",
			BoardDark:     "#a2d149",
			BodyPrimary:   "#4674e9",
			BodySecondary: "#3b5fc0",
			Food:          "#e7471d",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
